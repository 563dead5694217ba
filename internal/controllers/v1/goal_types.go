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

type GoalEditable struct {
	UserID     uuid.UUID              `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`     // ID of the user the goal belongs to
	CategoryID uuid.UUID              `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the category this goal is for
	Type       models.TransactionType `json:"type" example:"expense"`                                    // Is this a spending limit or an income target?

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	TargetAmount decimal.Decimal `json:"targetAmount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The target for the goal

	Currency  string               `json:"currency" example:"USD" default:"USD"` // ISO 4217 code of the currency
	Timeframe models.GoalTimeframe `json:"timeframe" example:"monthly"`          // The window over which the goal is tracked
	StartDate *types.Date          `json:"startDate" example:"2025-01-01"`       // First date the goal applies to
	EndDate   *types.Date          `json:"endDate" example:"2025-12-31"`         // Last date the goal applies to
	Active    bool                 `json:"active" example:"true" default:"true"` // Is the goal currently tracked?
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		UserID:       editable.UserID,
		CategoryID:   editable.CategoryID,
		Type:         editable.Type,
		TargetAmount: editable.TargetAmount,
		Currency:     editable.Currency,
		Timeframe:    editable.Timeframe,
		StartDate:    editable.StartDate,
		EndDate:      editable.EndDate,
		Active:       editable.Active,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`               // The Goal itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c1a96ae4-80e3-4827-8ed0-c7656f224fee"`      // The category this goal references
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			UserID:       model.UserID,
			CategoryID:   model.CategoryID,
			Type:         model.Type,
			TargetAmount: model.TargetAmount,
			Currency:     model.Currency,
			Timeframe:    model.Timeframe,
			StartDate:    model.StartDate,
			EndDate:      model.EndDate,
			Active:       model.Active,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of the created goals or their respective error
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The goal data, if creation was successful
}

type GoalQueryFilter struct {
	UserID     moayo_uuid.UUID `form:"user"`                       // By ID of the user
	CategoryID moayo_uuid.UUID `form:"category"`                   // By ID of the category
	Type       string          `form:"type"`                       // By type
	Timeframe  string          `form:"timeframe"`                  // By timeframe
	Active     bool            `form:"active"`                     // Is the goal currently tracked?
	Offset     uint            `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	return models.Goal{
		UserID:     f.UserID.UUID,
		CategoryID: f.CategoryID.UUID,
		Type:       models.TransactionType(f.Type),
		Timeframe:  models.GoalTimeframe(f.Timeframe),
		Active:     f.Active,
	}, nil
}
