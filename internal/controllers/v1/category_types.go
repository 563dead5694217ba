package v1

import (
	"fmt"

	"github.com/Q1justin/Moayo/internal/models"
	moayo_uuid "github.com/Q1justin/Moayo/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	UserID uuid.UUID              `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the user the category belongs to
	Name   string                 `json:"name" example:"Groceries" default:""`                   // Name of the category
	Type   models.TransactionType `json:"type" example:"expense"`                                // Whether transactions in this category are expenses or income
	Icon   string                 `json:"icon" example:"🍽️" default:""`                          // Icon of the category
	Color  string                 `json:"color" example:"#FF5733" default:""`                    // Display color of the category
	Custom bool                   `json:"custom" example:"true" default:"false"`                 // Was the category created by the user?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		UserID: editable.UserID,
		Name:   editable.Name,
		Type:   editable.Type,
		Icon:   editable.Icon,
		Color:  editable.Color,
		Custom: editable.Custom,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                 // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			UserID: model.UserID,
			Name:   model.Name,
			Type:   model.Type,
			Icon:   model.Icon,
			Color:  model.Color,
			Custom: model.Custom,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	UserID moayo_uuid.UUID `form:"user"`                       // By ID of the user
	Name   string          `form:"name" filterField:"false"`   // By name
	Type   string          `form:"type"`                       // By type (expense or income)
	Custom bool            `form:"custom"`                     // Only user-created categories?
	Search string          `form:"search" filterField:"false"` // Search for this text in the name
	Offset uint            `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int             `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	return models.Category{
		UserID: f.UserID.UUID,
		Type:   models.TransactionType(f.Type),
		Custom: f.Custom,
	}, nil
}
