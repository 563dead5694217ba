package models

import (
	"strings"

	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is the cadence at which a recurring template occurs.
//
// swagger:enum Frequency
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}

	return false
}

// RecurringTemplate is a user-defined rule for a recurring expense or income.
// Concrete transactions are materialized from it, the template itself never
// shows up in reports.
type RecurringTemplate struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        UserProfile
	CategoryID  uuid.UUID
	Category    Category
	Type        TransactionType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    string
	Description string
	StartDate   types.Date
	Frequency   Frequency
	EndDate     *types.Date // nil means the template never ends
	Active      bool        `gorm:"default:true"`
}

func (t *RecurringTemplate) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*RecurringTemplate)
	return t.checkIntegrity(tx, *toSave)
}

func (t *RecurringTemplate) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(RecurringTemplate)

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

// checkIntegrity verifies that the user and the category the template
// references exist.
func (t *RecurringTemplate) checkIntegrity(tx *gorm.DB, toSave RecurringTemplate) error {
	err := tx.First(&UserProfile{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (t *RecurringTemplate) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Currency = strings.ToUpper(strings.TrimSpace(t.Currency))

	if !validCurrency(t.Currency) {
		return ErrCurrencyInvalid
	}

	return t.Validate()
}

// Validate checks the template invariants. The materializer calls this for
// every template it processes so that malformed rows are skipped with an
// error instead of producing transactions.
func (t RecurringTemplate) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Frequency.Valid() {
		return ErrFrequencyInvalid
	}

	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	if t.StartDate.IsZero() {
		return ErrTemplateStartUnset
	}

	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return ErrTemplateEndsBeforeStart
	}

	return nil
}

// Materialize returns the concrete transaction for one occurrence of the
// template. The transaction carries a back-reference to the template so that
// the unique index on (recurring_template_id, date) can reject duplicates.
func (t RecurringTemplate) Materialize(date types.Date) Transaction {
	templateID := t.ID

	return Transaction{
		UserID:              t.UserID,
		CategoryID:          t.CategoryID,
		Type:                t.Type,
		Amount:              t.Amount,
		Currency:            t.Currency,
		Description:         t.Description,
		Date:                date,
		RecurringTemplateID: &templateID,
	}
}
