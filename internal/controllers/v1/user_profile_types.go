package v1

import (
	"fmt"

	"github.com/Q1justin/Moayo/internal/models"
	"github.com/gin-gonic/gin"
)

// UserProfileEditable represents all user configurable parameters
type UserProfileEditable struct {
	DefaultCurrency string `json:"defaultCurrency" example:"USD" default:"USD"` // ISO 4217 code of the currency new transactions default to
}

func (editable UserProfileEditable) model() models.UserProfile {
	return models.UserProfile{
		DefaultCurrency: editable.DefaultCurrency,
	}
}

type UserProfileLinks struct {
	Self               string `json:"self" example:"https://example.com/api/v1/user-profiles/3b1ea324-d438-4419-882a-2fc91d71772f"`                          // The user profile itself
	Categories         string `json:"categories" example:"https://example.com/api/v1/categories?user=3b1ea324-d438-4419-882a-2fc91d71772f"`                  // Categories of this user
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions?user=3b1ea324-d438-4419-882a-2fc91d71772f"`              // Transactions of this user
	RecurringTemplates string `json:"recurringTemplates" example:"https://example.com/api/v1/recurring-templates?user=3b1ea324-d438-4419-882a-2fc91d71772f"` // Recurring templates of this user
	Goals              string `json:"goals" example:"https://example.com/api/v1/goals?user=3b1ea324-d438-4419-882a-2fc91d71772f"`                            // Goals of this user
}

type UserProfile struct {
	models.DefaultModel
	UserProfileEditable
	Links UserProfileLinks `json:"links"`
}

// newUserProfile returns the API v1 representation of the resource
func newUserProfile(c *gin.Context, model models.UserProfile) UserProfile {
	url := c.GetString(string(models.DBContextURL))

	return UserProfile{
		DefaultModel: model.DefaultModel,
		UserProfileEditable: UserProfileEditable{
			DefaultCurrency: model.DefaultCurrency,
		},
		Links: UserProfileLinks{
			Self:               fmt.Sprintf("%s/v1/user-profiles/%s", url, model.ID),
			Categories:         fmt.Sprintf("%s/v1/categories?user=%s", url, model.ID),
			Transactions:       fmt.Sprintf("%s/v1/transactions?user=%s", url, model.ID),
			RecurringTemplates: fmt.Sprintf("%s/v1/recurring-templates?user=%s", url, model.ID),
			Goals:              fmt.Sprintf("%s/v1/goals?user=%s", url, model.ID),
		},
	}
}

type UserProfileListResponse struct {
	Data       []UserProfile `json:"data"`                                                          // List of user profiles
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type UserProfileCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []UserProfileResponse `json:"data"`                                                          // List of the created user profiles or their respective error
}

func (u *UserProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserProfileResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this user profile
	Data  *UserProfile `json:"data"`                                                          // The user profile data, if creation was successful
}

type UserProfileQueryFilter struct {
	DefaultCurrency string `form:"defaultCurrency"`            // By default currency
	Offset          uint   `form:"offset" filterField:"false"` // The offset of the first user profile returned. Defaults to 0.
	Limit           int    `form:"limit" filterField:"false"`  // Maximum number of user profiles to return. Defaults to 50.
}

func (f UserProfileQueryFilter) model() (models.UserProfile, error) {
	return models.UserProfile{
		DefaultCurrency: f.DefaultCurrency,
	}, nil
}
