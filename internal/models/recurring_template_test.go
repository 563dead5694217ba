package models_test

import (
	"testing"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringTemplateValidate() {
	start := types.NewDate(2025, 1, 1)
	endBeforeStart := types.NewDate(2024, 12, 1)

	tests := []struct {
		name     string
		template models.RecurringTemplate
		err      error
	}{
		{
			"valid unbounded",
			models.RecurringTemplate{Type: models.TypeExpense, Amount: decimal.NewFromFloat(12.5), StartDate: start, Frequency: models.FrequencyMonthly},
			nil,
		},
		{
			"invalid type",
			models.RecurringTemplate{Type: "transfer", Amount: decimal.NewFromFloat(12.5), StartDate: start, Frequency: models.FrequencyMonthly},
			models.ErrTransactionTypeInvalid,
		},
		{
			"invalid frequency",
			models.RecurringTemplate{Type: models.TypeExpense, Amount: decimal.NewFromFloat(12.5), StartDate: start, Frequency: "fortnightly"},
			models.ErrFrequencyInvalid,
		},
		{
			"zero amount",
			models.RecurringTemplate{Type: models.TypeExpense, StartDate: start, Frequency: models.FrequencyDaily},
			models.ErrAmountNotPositive,
		},
		{
			"negative amount",
			models.RecurringTemplate{Type: models.TypeExpense, Amount: decimal.NewFromFloat(-1), StartDate: start, Frequency: models.FrequencyDaily},
			models.ErrAmountNotPositive,
		},
		{
			"missing start date",
			models.RecurringTemplate{Type: models.TypeExpense, Amount: decimal.NewFromFloat(1), Frequency: models.FrequencyDaily},
			models.ErrTemplateStartUnset,
		},
		{
			"ends before start",
			models.RecurringTemplate{Type: models.TypeExpense, Amount: decimal.NewFromFloat(1), StartDate: start, Frequency: models.FrequencyDaily, EndDate: &endBeforeStart},
			models.ErrTemplateEndsBeforeStart,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.template.Validate(), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTemplateCreate() {
	category := suite.createTestCategory(models.Category{Name: "Housing"})

	template := suite.createTestRecurringTemplate(models.RecurringTemplate{
		CategoryID:  category.ID,
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(1200),
		Currency:    "usd ",
		Description: " Rent ",
		StartDate:   types.NewDate(2025, 1, 1),
		Frequency:   models.FrequencyMonthly,
		Active:      true,
	})

	assert.Equal(suite.T(), "Rent", template.Description, "description should be trimmed")
	assert.Equal(suite.T(), "USD", template.Currency, "currency should be normalized")
}

func (suite *TestSuiteStandard) TestRecurringTemplateCategoryMustExist() {
	template := models.RecurringTemplate{
		UserID:     suite.createTestUserProfile(models.UserProfile{}).ID,
		CategoryID: uuid.New(),
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
		Currency:   "USD",
		StartDate:  types.NewDate(2025, 1, 1),
		Frequency:  models.FrequencyWeekly,
	}

	err := models.DB.Create(&template).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRecurringTemplateInvalidCurrency() {
	category := suite.createTestCategory(models.Category{Name: "Food"})

	template := models.RecurringTemplate{
		CategoryID: category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
		Currency:   "not-a-currency",
		StartDate:  types.NewDate(2025, 1, 1),
		Frequency:  models.FrequencyWeekly,
	}

	err := models.DB.Create(&template).Error
	assert.ErrorIs(suite.T(), err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestRecurringTemplateMaterialize() {
	category := suite.createTestCategory(models.Category{Name: "Transportation"})
	template := suite.createTestRecurringTemplate(models.RecurringTemplate{
		CategoryID:  category.ID,
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(49.90),
		Currency:    "EUR",
		Description: "Train pass",
		StartDate:   types.NewDate(2025, 1, 1),
		Frequency:   models.FrequencyMonthly,
		Active:      true,
	})

	date := types.NewDate(2025, 3, 1)
	transaction := template.Materialize(date)

	assert.Equal(suite.T(), template.UserID, transaction.UserID)
	assert.Equal(suite.T(), template.CategoryID, transaction.CategoryID)
	assert.Equal(suite.T(), template.Type, transaction.Type)
	assert.True(suite.T(), template.Amount.Equal(transaction.Amount))
	assert.Equal(suite.T(), template.Currency, transaction.Currency)
	assert.Equal(suite.T(), template.Description, transaction.Description)
	assert.True(suite.T(), transaction.Date.Equal(date))

	if assert.NotNil(suite.T(), transaction.RecurringTemplateID) {
		assert.Equal(suite.T(), template.ID, *transaction.RecurringTemplateID)
	}
}
