package models

import (
	"strings"

	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalTimeframe is the window over which a spending or saving goal is tracked.
//
// swagger:enum GoalTimeframe
type GoalTimeframe string

const (
	TimeframeDaily   GoalTimeframe = "daily"
	TimeframeWeekly  GoalTimeframe = "weekly"
	TimeframeMonthly GoalTimeframe = "monthly"
	TimeframeYearly  GoalTimeframe = "yearly"
)

// Valid reports whether the timeframe is one of the known values.
func (t GoalTimeframe) Valid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeYearly:
		return true
	}

	return false
}

// Goal is a spending limit or income target for one category.
type Goal struct {
	DefaultModel
	UserID       uuid.UUID `gorm:"index"`
	User         UserProfile
	CategoryID   uuid.UUID
	Category     Category
	Type         TransactionType
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The target for the goal
	Currency     string
	Timeframe    GoalTimeframe
	StartDate    *types.Date
	EndDate      *types.Date
	Active       bool `gorm:"default:true"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Goal)

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

// checkIntegrity verifies that the user and the category the goal references
// exist.
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	err := tx.First(&UserProfile{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Currency = strings.ToUpper(strings.TrimSpace(g.Currency))

	if !g.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if g.Timeframe != "" && !g.Timeframe.Valid() {
		return ErrGoalTimeframeInvalid
	}

	if !validCurrency(g.Currency) {
		return ErrCurrencyInvalid
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrAmountNotPositive
	}

	return nil
}
