package models_test

import (
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	category := suite.createTestCategory(models.Category{Name: "Food"})

	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID:  category.ID,
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(14.03),
		Description: "  Lunch ",
		Date:        types.NewDate(2025, 6, 1),
	})

	assert.Equal(suite.T(), "Lunch", transaction.Description, "description should be trimmed")
	assert.True(suite.T(), transaction.ExchangeRateToUSD.Equal(decimal.NewFromInt(1)), "exchange rate should default to 1.0")
}

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	category := suite.createTestCategory(models.Category{Name: "Food"})

	transaction := models.Transaction{
		UserID:     category.UserID,
		CategoryID: category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(-14.03),
		Currency:   "USD",
		Date:       types.NewDate(2025, 6, 1),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionCategoryMustExist() {
	transaction := models.Transaction{
		UserID:     suite.createTestUserProfile(models.UserProfile{}).ID,
		CategoryID: uuid.New(),
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(10),
		Currency:   "USD",
		Date:       types.NewDate(2025, 6, 1),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

// TestTransactionMaterializedUnique verifies that the database rejects a
// second transaction for the same recurring template and date. This is the
// backstop for the materializer's check-then-create race.
func (suite *TestSuiteStandard) TestTransactionMaterializedUnique() {
	category := suite.createTestCategory(models.Category{Name: "Housing"})
	template := suite.createTestRecurringTemplate(models.RecurringTemplate{
		CategoryID: category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromFloat(1200),
		StartDate:  types.NewDate(2025, 1, 1),
		Frequency:  models.FrequencyMonthly,
		Active:     true,
	})

	date := types.NewDate(2025, 2, 1)

	first := template.Materialize(date)
	err := models.DB.Create(&first).Error
	assert.Nil(suite.T(), err)

	second := template.Materialize(date)
	err = models.DB.Create(&second).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionAlreadyMaterialized)

	// A different date materializes fine
	third := template.Materialize(types.NewDate(2025, 3, 1))
	err = models.DB.Create(&third).Error
	assert.Nil(suite.T(), err)
}

// TestTransactionManualNotUnique verifies that manual transactions without a
// template reference are not affected by the uniqueness constraint.
func (suite *TestSuiteStandard) TestTransactionManualNotUnique() {
	category := suite.createTestCategory(models.Category{Name: "Food"})

	for i := 0; i < 2; i++ {
		_ = suite.createTestTransaction(models.Transaction{
			CategoryID: category.ID,
			Type:       models.TypeExpense,
			Amount:     decimal.NewFromFloat(5),
			Date:       types.NewDate(2025, 6, 1),
		})
	}

	var count int64
	err := models.DB.Model(&models.Transaction{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}
