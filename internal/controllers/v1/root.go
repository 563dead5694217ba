package v1

import (
	"net/http"

	"github.com/Q1justin/Moayo/internal/httputil"
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the routes for the v1 API root.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	UserProfiles       string `json:"userProfiles" example:"https://example.com/api/v1/user-profiles"`              // URL of the user profile endpoints
	Categories         string `json:"categories" example:"https://example.com/api/v1/categories"`                   // URL of the category endpoints
	Transactions       string `json:"transactions" example:"https://example.com/api/v1/transactions"`               // URL of the transaction endpoints
	RecurringTemplates string `json:"recurringTemplates" example:"https://example.com/api/v1/recurring-templates"`  // URL of the recurring template endpoints
	Goals              string `json:"goals" example:"https://example.com/api/v1/goals"`                             // URL of the goal endpoints
	Materialize        string `json:"materialize" example:"https://example.com/api/v1/recurring-templates/materialize"` // URL to materialize due recurring templates
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			UserProfiles:       url + "/v1/user-profiles",
			Categories:         url + "/v1/categories",
			Transactions:       url + "/v1/transactions",
			RecurringTemplates: url + "/v1/recurring-templates",
			Goals:              url + "/v1/goals",
			Materialize:        url + "/v1/recurring-templates/materialize",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
