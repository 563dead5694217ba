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

// RecurringTemplateEditable represents all user configurable parameters
type RecurringTemplateEditable struct {
	UserID     uuid.UUID              `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the template belongs to
	CategoryID uuid.UUID              `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category

	Type models.TransactionType `json:"type" example:"expense"` // Do occurrences spend or receive money?

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for each occurrence

	Currency    string           `json:"currency" example:"USD" default:"USD"`  // ISO 4217 code of the currency
	Description string           `json:"description" example:"Rent" default:""` // Description copied to each materialized transaction
	StartDate   types.Date       `json:"startDate" example:"2025-01-31"`        // First occurrence. Monthly and longer frequencies keep this day of the month as anchor.
	Frequency   models.Frequency `json:"frequency" example:"monthly"`           // How often the template recurs
	EndDate     *types.Date      `json:"endDate" example:"2025-12-31"`          // Last date on which an occurrence may fall. Unset means the template never ends.
	Active      bool             `json:"active" example:"true" default:"true"`  // Is the template considered for materialization?
}

// model returns the database resource for the API representation of the editable fields
func (editable RecurringTemplateEditable) model() models.RecurringTemplate {
	return models.RecurringTemplate{
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Currency:    editable.Currency,
		Description: editable.Description,
		StartDate:   editable.StartDate,
		Frequency:   editable.Frequency,
		EndDate:     editable.EndDate,
		Active:      editable.Active,
	}
}

type RecurringTemplateLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/recurring-templates/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`          // The template itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?template=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // Transactions materialized from this template
}

// RecurringTemplate is the representation of a RecurringTemplate in API v1.
type RecurringTemplate struct {
	models.DefaultModel
	RecurringTemplateEditable
	Links RecurringTemplateLinks `json:"links"`
}

// newRecurringTemplate returns the API v1 representation of the resource
func newRecurringTemplate(c *gin.Context, model models.RecurringTemplate) RecurringTemplate {
	url := c.GetString(string(models.DBContextURL))

	return RecurringTemplate{
		DefaultModel: model.DefaultModel,
		RecurringTemplateEditable: RecurringTemplateEditable{
			UserID:      model.UserID,
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Currency:    model.Currency,
			Description: model.Description,
			StartDate:   model.StartDate,
			Frequency:   model.Frequency,
			EndDate:     model.EndDate,
			Active:      model.Active,
		},
		Links: RecurringTemplateLinks{
			Self:         fmt.Sprintf("%s/v1/recurring-templates/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?template=%s", url, model.ID),
		},
	}
}

type RecurringTemplateListResponse struct {
	Data       []RecurringTemplate `json:"data"`                                                          // List of templates
	Error      *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination         `json:"pagination"`                                                    // Pagination information
}

type RecurringTemplateCreateResponse struct {
	Error *string                     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringTemplateResponse `json:"data"`                                                          // List of the created templates or their respective error
}

func (t *RecurringTemplateCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, RecurringTemplateResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringTemplateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this template
	Data  *RecurringTemplate `json:"data"`                                                          // The template data, if creation was successful
}

type RecurringTemplateQueryFilter struct {
	UserID      moayo_uuid.UUID `form:"user"`                            // By ID of the user
	CategoryID  moayo_uuid.UUID `form:"category"`                        // By ID of the category
	Type        string          `form:"type"`                            // By type
	Frequency   string          `form:"frequency"`                       // By frequency
	Description string          `form:"description" filterField:"false"` // Description contains this string
	Active      bool            `form:"active"`                          // Is the template considered for materialization?
	Offset      uint            `form:"offset" filterField:"false"`      // The offset of the first template returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`       // Maximum number of templates to return. Defaults to 50.
}

func (f RecurringTemplateQueryFilter) model() (models.RecurringTemplate, error) {
	return models.RecurringTemplate{
		UserID:     f.UserID.UUID,
		CategoryID: f.CategoryID.UUID,
		Type:       models.TransactionType(f.Type),
		Frequency:  models.Frequency(f.Frequency),
		Active:     f.Active,
	}, nil
}

// MaterializeRequest is the body for a materialization run.
type MaterializeRequest struct {
	UserID uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the user whose templates are materialized
}

// MaterializeResult reports one materialization run.
type MaterializeResult struct {
	Created int      `json:"created" example:"2"` // Number of transactions created by this run
	Errors  []string `json:"errors"`              // Errors for templates that could not be materialized
}

type MaterializeResponse struct {
	Data  *MaterializeResult `json:"data"`                                           // The result of the run
	Error *string            `json:"error" example:"the userId field must be set"` // The error, if any occurred
}
