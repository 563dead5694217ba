package models

import (
	"strings"

	"gorm.io/gorm"
)

// UserProfile holds per-user settings. All other resources reference their
// owning user by ID, authentication itself is out of scope for the backend.
type UserProfile struct {
	DefaultModel
	DefaultCurrency string `gorm:"default:USD"`
}

func (u *UserProfile) BeforeSave(_ *gorm.DB) error {
	u.DefaultCurrency = strings.ToUpper(strings.TrimSpace(u.DefaultCurrency))

	if u.DefaultCurrency == "" {
		u.DefaultCurrency = DefaultCurrency
	}

	if !validCurrency(u.DefaultCurrency) {
		return ErrCurrencyInvalid
	}

	return nil
}
