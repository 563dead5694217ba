package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive       = errors.New("amounts must be larger than zero")
	ErrCurrencyInvalid         = errors.New("the currency must be a valid ISO 4217 code")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be 'expense' or 'income'")
	ErrFrequencyInvalid        = errors.New("the frequency must be one of: daily, weekly, biweekly, monthly, quarterly, annually")
	ErrGoalTimeframeInvalid    = errors.New("the timeframe must be one of: daily, weekly, monthly, yearly")
	ErrTemplateEndsBeforeStart = errors.New("a recurring template must not end before it starts")
	ErrTemplateStartUnset      = errors.New("a recurring template needs a start date")

	ErrCategoryNameNotUnique          = errors.New("the category name is already in use for this transaction type")
	ErrTransactionAlreadyMaterialized = errors.New("a transaction for this recurring template and date already exists")
)
