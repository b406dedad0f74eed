package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a business entity identified by its canonical domain. Supplier
// rows are created lazily: by the first registrant from a domain, or by the
// first review naming a new vendor domain.
type Supplier struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Domain      string    `json:"domain" gorm:"size:255;uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Slug        string    `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Country     string    `json:"country" gorm:"size:100"`
	Description string    `json:"description" gorm:"type:text"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
