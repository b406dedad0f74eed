package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vendorcheck-backend/shared/database/models"
	"vendorcheck-backend/shared/utils/slug"
)

// FindOrCreateSupplier returns the supplier owning the canonical domain,
// creating the row on first sight. Callers pass an already-normalized
// domain; name may be empty, in which case the domain itself names the
// supplier. Run inside the caller's transaction when paired with other
// writes.
func FindOrCreateSupplier(tx *gorm.DB, canonicalDomain, name, country string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := tx.Where("domain = ?", canonicalDomain).First(&supplier).Error
	if err == nil {
		return &supplier, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to look up supplier by domain: %w", err)
	}

	if name == "" {
		name = canonicalDomain
	}

	uniqueSlug, err := resolveSlug(tx, name, canonicalDomain)
	if err != nil {
		return nil, err
	}

	supplier = models.Supplier{
		Domain:  canonicalDomain,
		Name:    name,
		Slug:    uniqueSlug,
		Country: country,
	}

	if err := tx.Create(&supplier).Error; err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	return &supplier, nil
}

// resolveSlug derives the supplier slug and resolves collisions with a
// numeric suffix: acme, acme-2, acme-3, ...
func resolveSlug(tx *gorm.DB, name, fallback string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = slug.Make(fallback)
	}
	if base == "" {
		return "", fmt.Errorf("cannot derive slug from %q", name)
	}

	var taken []string
	if err := tx.Model(&models.Supplier{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &taken).Error; err != nil {
		return "", fmt.Errorf("failed to check slug availability: %w", err)
	}

	inUse := make(map[string]bool, len(taken))
	for _, s := range taken {
		inUse[s] = true
	}

	if !inUse[base] {
		return base, nil
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !inUse[candidate] {
			return candidate, nil
		}
	}
}

// GetSupplierBySlug fetches a supplier by its URL slug.
func GetSupplierBySlug(db *gorm.DB, s string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := db.Where("slug = ?", strings.ToLower(strings.TrimSpace(s))).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}
