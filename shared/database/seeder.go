package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"vendorcheck-backend/shared/database/models"
)

// SeedDatabase seeds the database with demo suppliers, users and reviews.
// Safe to run repeatedly: it skips anything already present.
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	suppliersCreated, err := seedSuppliers()
	if err != nil {
		return err
	}

	usersCreated, err := seedUsers()
	if err != nil {
		return err
	}

	reviewsCreated, err := seedReviews()
	if err != nil {
		return err
	}

	if suppliersCreated > 0 || usersCreated > 0 || reviewsCreated > 0 {
		log.Printf("✅ Database seeding completed (%d suppliers, %d users, %d reviews created)",
			suppliersCreated, usersCreated, reviewsCreated)
	} else {
		log.Println("✅ Database seed data is up to date")
	}

	return nil
}

var seedSupplierData = []struct {
	Domain  string
	Name    string
	Country string
}{
	{"acme-logistics.com", "Acme Logistics", "Germany"},
	{"northwind-supply.com", "Northwind Supply", "Netherlands"},
	{"globex-components.io", "Globex Components", "United States"},
	{"initech-materials.co.uk", "Initech Materials", "United Kingdom"},
}

func seedSuppliers() (int, error) {
	created := 0
	for _, s := range seedSupplierData {
		var count int64
		if err := DB.Model(&models.Supplier{}).Where("domain = ?", s.Domain).Count(&count).Error; err != nil {
			return created, fmt.Errorf("failed to check supplier %s: %w", s.Domain, err)
		}
		if count > 0 {
			continue
		}

		if _, err := FindOrCreateSupplier(DB, s.Domain, s.Name, s.Country); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

var seedUserData = []struct {
	Email     string
	FirstName string
	LastName  string
	Domain    string
}{
	{"jane.doe@acme-logistics.com", "Jane", "Doe", "acme-logistics.com"},
	{"piet.jansen@northwind-supply.com", "Piet", "Jansen", "northwind-supply.com"},
	{"sam.lee@globex-components.io", "Sam", "Lee", "globex-components.io"},
}

func seedUsers() (int, error) {
	created := 0
	for _, u := range seedUserData {
		var count int64
		if err := DB.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return created, fmt.Errorf("failed to check user %s: %w", u.Email, err)
		}
		if count > 0 {
			continue
		}

		var supplier models.Supplier
		if err := DB.Where("domain = ?", u.Domain).First(&supplier).Error; err != nil {
			return created, fmt.Errorf("failed to find supplier for %s: %w", u.Email, err)
		}

		user := models.User{
			Email:         u.Email,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			Status:        "ACTIVE",
			EmailVerified: true,
			SupplierID:    &supplier.ID,
		}
		if err := DB.Create(&user).Error; err != nil {
			return created, fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		created++
	}
	return created, nil
}

func seedReviews() (int, error) {
	var count int64
	if err := DB.Model(&models.Review{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var reviewer models.User
	if err := DB.Where("email = ?", seedUserData[0].Email).First(&reviewer).Error; err != nil {
		return 0, fmt.Errorf("failed to find seed reviewer: %w", err)
	}
	if reviewer.SupplierID == nil {
		return 0, fmt.Errorf("seed reviewer %s has no supplier", reviewer.Email)
	}

	var target models.Supplier
	if err := DB.Where("domain = ?", "northwind-supply.com").First(&target).Error; err != nil {
		return 0, fmt.Errorf("failed to find seed review target: %w", err)
	}

	token, err := uuid.NewV7()
	if err != nil {
		return 0, fmt.Errorf("failed to generate review token: %w", err)
	}

	review := models.Review{
		Token:              token,
		UserID:             reviewer.ID,
		ReviewerSupplierID: *reviewer.SupplierID,
		ReviewedSupplierID: target.ID,
		DealDate:           time.Now().AddDate(0, -3, 0),
		Cost:               7,
		Accuracy:           8,
		Compliance:         9,
		Communication:      8,
		Quality:            9,
		Support:            7,
		Timeliness:         8,
		DealAgain:          true,
		Published:          true,
		Comment:            "Reliable partner, minor delays around the holidays.",
	}
	if err := DB.Create(&review).Error; err != nil {
		return 0, fmt.Errorf("failed to create seed review: %w", err)
	}

	return 1, nil
}
