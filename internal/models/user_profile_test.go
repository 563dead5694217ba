package models_test

import (
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserProfileDefaultCurrency() {
	profile := suite.createTestUserProfile(models.UserProfile{})
	assert.Equal(suite.T(), "USD", profile.DefaultCurrency)

	profile = suite.createTestUserProfile(models.UserProfile{DefaultCurrency: " eur "})
	assert.Equal(suite.T(), "EUR", profile.DefaultCurrency)
}

func (suite *TestSuiteStandard) TestUserProfileInvalidCurrency() {
	profile := models.UserProfile{DefaultCurrency: "money"}

	err := models.DB.Create(&profile).Error
	assert.ErrorIs(suite.T(), err, models.ErrCurrencyInvalid)
}
