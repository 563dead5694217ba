package v1

import (
	"net/http"

	"github.com/Q1justin/Moayo/internal/httputil"
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserProfileRoutes registers the routes for user profiles with
// the RouterGroup that is passed.
func RegisterUserProfileRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserProfileList)
		r.GET("", GetUserProfiles)
		r.POST("", CreateUserProfiles)
	}

	// UserProfile with ID
	{
		r.OPTIONS("/:id", OptionsUserProfileDetail)
		r.GET("/:id", GetUserProfile)
		r.PATCH("/:id", UpdateUserProfile)
		r.DELETE("/:id", DeleteUserProfile)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			UserProfiles
// @Success		204
// @Router			/v1/user-profiles [options]
func OptionsUserProfileList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			UserProfiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/user-profiles/{id} [options]
func OptionsUserProfileDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.UserProfile{})
}

// @Summary		Create user profiles
// @Description	Creates new user profiles
// @Tags			UserProfiles
// @Produce		json
// @Success		201				{object}	UserProfileCreateResponse
// @Failure		400				{object}	UserProfileCreateResponse
// @Failure		500				{object}	UserProfileCreateResponse
// @Param			userProfiles	body		[]UserProfileEditable	true	"UserProfiles"
// @Router			/v1/user-profiles [post]
func CreateUserProfiles(c *gin.Context) {
	var editables []UserProfileEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserProfileCreateResponse{}

	for _, editable := range editables {
		profile := editable.model()

		err = models.DB.Create(&profile).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newUserProfile(c, profile)
		r.Data = append(r.Data, UserProfileResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get user profiles
// @Description	Returns a list of user profiles
// @Tags			UserProfiles
// @Produce		json
// @Success		200	{object}	UserProfileListResponse
// @Failure		400	{object}	UserProfileListResponse
// @Failure		500	{object}	UserProfileListResponse
// @Router			/v1/user-profiles [get]
// @Param			defaultCurrency	query	string	false	"Filter by default currency"
// @Param			offset			query	uint	false	"The offset of the first user profile returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of user profiles to return. Defaults to 50."
func GetUserProfiles(c *gin.Context) {
	var filter UserProfileQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 user profiles and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var profiles []models.UserProfile
	err = q.Find(&profiles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserProfileListResponse{
			Error: &e,
		})
		return
	}

	data := make([]UserProfile, 0)
	for _, profile := range profiles {
		data = append(data, newUserProfile(c, profile))
	}

	c.JSON(http.StatusOK, UserProfileListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get user profile
// @Description	Returns a specific user profile
// @Tags			UserProfiles
// @Produce		json
// @Success		200	{object}	UserProfileResponse
// @Failure		400	{object}	UserProfileResponse
// @Failure		404	{object}	UserProfileResponse
// @Failure		500	{object}	UserProfileResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/user-profiles/{id} [get]
func GetUserProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	var profile models.UserProfile
	err = models.DB.First(&profile, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	data := newUserProfile(c, profile)
	c.JSON(http.StatusOK, UserProfileResponse{Data: &data})
}

// @Summary		Update user profile
// @Description	Updates an existing user profile. Only values to be updated need to be specified.
// @Tags			UserProfiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	UserProfileResponse
// @Failure		400			{object}	UserProfileResponse
// @Failure		404			{object}	UserProfileResponse
// @Failure		500			{object}	UserProfileResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			userProfile	body		UserProfileEditable	true	"UserProfile"
// @Router			/v1/user-profiles/{id} [patch]
func UpdateUserProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	var profile models.UserProfile
	err = models.DB.First(&profile, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	var data UserProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserProfileResponse{
			Error: &s,
		})
		return
	}

	r := newUserProfile(c, profile)
	c.JSON(http.StatusOK, UserProfileResponse{Data: &r})
}

// @Summary		Delete user profile
// @Description	Deletes a user profile
// @Tags			UserProfiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/user-profiles/{id} [delete]
func DeleteUserProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var profile models.UserProfile
	err = models.DB.First(&profile, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&profile).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
