package v1

import (
	"fmt"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	moayo_uuid "github.com/Q1justin/Moayo/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	UserID     uuid.UUID              `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the transaction belongs to
	CategoryID uuid.UUID              `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category
	Type       models.TransactionType `json:"type" example:"expense"`                                    // Is this money spent or money received?

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Currency    string     `json:"currency" example:"USD" default:"USD"` // ISO 4217 code of the transaction currency
	Description string     `json:"description" example:"Lunch" default:""` // A short description
	Date        types.Date `json:"date" example:"2025-03-01"`            // Date of the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Currency:    editable.Currency,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// These fields are set by the backend
	ExchangeRateToUSD   decimal.Decimal `json:"exchangeRateToUsd" example:"1"`                                       // Exchange rate to USD at the time of the transaction
	RecurringTemplateID *uuid.UUID      `json:"recurringTemplateId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`  // Set if the transaction was materialized from a recurring template
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:      model.UserID,
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Currency:    model.Currency,
			Description: model.Description,
			Date:        model.Date,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
		ExchangeRateToUSD:   model.ExchangeRateToUSD,
		RecurringTemplateID: model.RecurringTemplateID,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date              string          `form:"date" filterField:"false"`              // Exact calendar date
	FromDate          string          `form:"fromDate" filterField:"false"`          // At and after this date
	UntilDate         string          `form:"untilDate" filterField:"false"`         // Before and at this date
	Amount            decimal.Decimal `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Description       string          `form:"description" filterField:"false"`       // Description contains this string
	UserID            moayo_uuid.UUID `form:"user"`                                  // ID of the user
	CategoryID        moayo_uuid.UUID `form:"category"`                              // ID of the category
	Type              string          `form:"type"`                                  // Type of the transaction
	Currency          string          `form:"currency"`                              // Currency of the transaction
	Template          moayo_uuid.UUID `form:"template" filterField:"false"`          // ID of the recurring template the transaction was materialized from
	Offset            uint            `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	// This does not set the string and date fields since they are
	// handled in the controller function
	return models.Transaction{
		UserID:     f.UserID.UUID,
		CategoryID: f.CategoryID.UUID,
		Type:       models.TransactionType(f.Type),
		Amount:     f.Amount,
		Currency:   f.Currency,
	}, nil
}
