package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups transactions of one type, e.g. "Food" or "Bonus".
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_type_name,priority:1"`
	User   UserProfile
	Name   string          `gorm:"uniqueIndex:category_user_type_name,priority:3"`
	Type   TransactionType `gorm:"uniqueIndex:category_user_type_name,priority:2"`
	Icon   string          // an emoji, e.g. 🍽️
	Color  string          // a hex color, e.g. #FF5733
	Custom bool            // user-created as opposed to one of the defaults
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkIntegrity(tx, *toSave)
}

func (c *Category) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Category)

	if tx.Statement.Changed("UserID") {
		err := c.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the user the category belongs to exists.
func (c *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&UserProfile{}, toSave.UserID).Error
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if !c.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}
