package v1

import (
	"net/http"

	"github.com/Q1justin/Moayo/internal/httputil"
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/recurring"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterRecurringTemplateRoutes registers the routes for recurring
// templates with the RouterGroup that is passed.
func RegisterRecurringTemplateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringTemplateList)
		r.GET("", GetRecurringTemplates)
		r.POST("", CreateRecurringTemplates)
	}

	// Materialization of due templates
	{
		r.OPTIONS("/materialize", OptionsMaterialize)
		r.POST("/materialize", Materialize)
	}

	// RecurringTemplate with ID
	{
		r.OPTIONS("/:id", OptionsRecurringTemplateDetail)
		r.GET("/:id", GetRecurringTemplate)
		r.PATCH("/:id", UpdateRecurringTemplate)
		r.DELETE("/:id", DeleteRecurringTemplate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTemplates
// @Success		204
// @Router			/v1/recurring-templates [options]
func OptionsRecurringTemplateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTemplates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-templates/{id} [options]
func OptionsRecurringTemplateDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.RecurringTemplate{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringTemplates
// @Success		204
// @Router			/v1/recurring-templates/materialize [options]
func OptionsMaterialize(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create recurring templates
// @Description	Creates new recurring templates
// @Tags			RecurringTemplates
// @Produce		json
// @Success		201			{object}	RecurringTemplateCreateResponse
// @Failure		400			{object}	RecurringTemplateCreateResponse
// @Failure		404			{object}	RecurringTemplateCreateResponse
// @Failure		500			{object}	RecurringTemplateCreateResponse
// @Param			templates	body		[]RecurringTemplateEditable	true	"RecurringTemplates"
// @Router			/v1/recurring-templates [post]
func CreateRecurringTemplates(c *gin.Context) {
	var editables []RecurringTemplateEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTemplateCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecurringTemplateCreateResponse{}

	for _, editable := range editables {
		template := editable.model()

		err = models.DB.Create(&template).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecurringTemplate(c, template)
		r.Data = append(r.Data, RecurringTemplateResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get recurring templates
// @Description	Returns a list of recurring templates
// @Tags			RecurringTemplates
// @Produce		json
// @Success		200	{object}	RecurringTemplateListResponse
// @Failure		400	{object}	RecurringTemplateListResponse
// @Failure		500	{object}	RecurringTemplateListResponse
// @Router			/v1/recurring-templates [get]
// @Param			user		query	string	false	"Filter by user ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by type"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			description	query	string	false	"Filter by description"
// @Param			active		query	bool	false	"Is the template considered for materialization?"
// @Param			offset		query	uint	false	"The offset of the first template returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of templates to return. Defaults to 50."
func GetRecurringTemplates(c *gin.Context) {
	var filter RecurringTemplateQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Description", "description", filter.Description)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 templates and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var templates []models.RecurringTemplate
	err = q.Find(&templates).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringTemplateListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RecurringTemplate, 0)
	for _, template := range templates {
		data = append(data, newRecurringTemplate(c, template))
	}

	c.JSON(http.StatusOK, RecurringTemplateListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recurring template
// @Description	Returns a specific recurring template
// @Tags			RecurringTemplates
// @Produce		json
// @Success		200	{object}	RecurringTemplateResponse
// @Failure		400	{object}	RecurringTemplateResponse
// @Failure		404	{object}	RecurringTemplateResponse
// @Failure		500	{object}	RecurringTemplateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-templates/{id} [get]
func GetRecurringTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	var template models.RecurringTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	data := newRecurringTemplate(c, template)
	c.JSON(http.StatusOK, RecurringTemplateResponse{Data: &data})
}

// @Summary		Update recurring template
// @Description	Updates an existing recurring template. Only values to be updated need to be specified.
// @Tags			RecurringTemplates
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringTemplateResponse
// @Failure		400			{object}	RecurringTemplateResponse
// @Failure		404			{object}	RecurringTemplateResponse
// @Failure		500			{object}	RecurringTemplateResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			template	body		RecurringTemplateEditable	true	"RecurringTemplate"
// @Router			/v1/recurring-templates/{id} [patch]
func UpdateRecurringTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	var template models.RecurringTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringTemplateEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	var data RecurringTemplateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&template).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringTemplateResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringTemplate(c, template)
	c.JSON(http.StatusOK, RecurringTemplateResponse{Data: &r})
}

// @Summary		Delete recurring template
// @Description	Deletes a recurring template. Transactions materialized from it are kept.
// @Tags			RecurringTemplates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-templates/{id} [delete]
func DeleteRecurringTemplate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var template models.RecurringTemplate
	err = models.DB.First(&template, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&template).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Materialize due templates
// @Description	Creates the transactions for all active recurring templates of a user that are due today. The run is idempotent, repeating it on the same day creates nothing new.
// @Tags			RecurringTemplates
// @Accept			json
// @Produce		json
// @Success		200		{object}	MaterializeResponse
// @Failure		400		{object}	MaterializeResponse
// @Failure		500		{object}	MaterializeResponse
// @Param			request	body		MaterializeRequest	true	"Materialization request"
// @Router			/v1/recurring-templates/materialize [post]
func Materialize(c *gin.Context) {
	var request MaterializeRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MaterializeResponse{
			Error: &e,
		})
		return
	}

	if request.UserID == uuid.Nil {
		e := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, MaterializeResponse{
			Error: &e,
		})
		return
	}

	store := recurring.NewStore(models.DB)
	materializer := recurring.NewMaterializer(store, store, recurring.SystemClock{})

	result := materializer.MaterializeAll(c.Request.Context(), request.UserID)

	data := MaterializeResult{
		Created: result.Created,
		Errors:  make([]string, 0, len(result.Errors)),
	}
	for _, err := range result.Errors {
		data.Errors = append(data.Errors, err.Error())
	}

	// Per-template errors do not fail the request, the successfully
	// created transactions are committed either way.
	c.JSON(http.StatusOK, MaterializeResponse{Data: &data})
}
