package models

import (
	"strings"

	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies a transaction as money spent or money received.
//
// swagger:enum TransactionType
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Valid reports whether the transaction type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a confirmed expense or income record.
//
// The unique index on (RecurringTemplateID, Date) guarantees that a recurring
// template materializes at most one transaction per calendar date, even when
// two materializer runs race each other. Manual transactions carry a NULL
// template reference and are not affected by the index.
type Transaction struct {
	DefaultModel
	UserID              uuid.UUID `gorm:"index"`
	User                UserProfile
	CategoryID          uuid.UUID
	Category            Category
	Type                TransactionType
	Amount              decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency            string
	ExchangeRateToUSD   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Currently always 1.0, real rates are a TODO in the app
	Description         string
	Date                types.Date         `gorm:"uniqueIndex:transaction_template_date,priority:2"`
	RecurringTemplateID *uuid.UUID         `gorm:"uniqueIndex:transaction_template_date,priority:1"`
	RecurringTemplate   *RecurringTemplate `json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("UserID") {
		err := tx.First(&UserProfile{}, toSave.UserID).Error
		if err != nil {
			return err
		}
	}

	if tx.Statement.Changed("CategoryID") {
		err := tx.First(&Category{}, toSave.CategoryID).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the user and the category the transaction
// references exist.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&UserProfile{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))

	if t.ExchangeRateToUSD.IsZero() {
		t.ExchangeRateToUSD = decimal.NewFromInt(1)
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !validCurrency(t.Currency) {
		return ErrCurrencyInvalid
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
