package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/Q1justin/Moayo/internal/controllers/v1"
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/internal/types"
	"github.com/Q1justin/Moayo/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestRecurringTemplatesDBClosed verifies that errors are processed correctly
// when the database is closed.
func (suite *TestSuiteStandard) TestRecurringTemplatesDBClosed() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestRecurringTemplate(t, v1.RecurringTemplateEditable{UserID: c.Data.UserID, CategoryID: c.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/recurring-templates", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.RecurringTemplateListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestRecurringTemplatesOptions verifies that OPTIONS requests are handled
// correctly.
func (suite *TestSuiteStandard) TestRecurringTemplatesOptions() {
	tests := []struct {
		name   string
		id     string // path at the RecurringTemplates endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No RecurringTemplate with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"RecurringTemplate exists", createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/recurring-templates", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestRecurringTemplatesGetSingle verifies that requests for the resource
// endpoints are handled correctly.
func (suite *TestSuiteStandard) TestRecurringTemplatesGetSingle() {
	tmpl := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing RecurringTemplate", tmpl.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No RecurringTemplate with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/recurring-templates/%s", tt.id), "")

			var template v1.RecurringTemplateResponse
			test.DecodeResponse(t, &r, &template)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTemplatesGetFilter() {
	u := createTestUserProfile(suite.T(), v1.UserProfileEditable{})
	c1 := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID, Name: "Housing"})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID, Name: "Income", Type: models.TypeIncome})

	_ = createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		UserID:      u.Data.ID,
		CategoryID:  c1.Data.ID,
		Type:        models.TypeExpense,
		Description: "Rent",
		Frequency:   models.FrequencyMonthly,
	})

	_ = createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		UserID:      u.Data.ID,
		CategoryID:  c1.Data.ID,
		Type:        models.TypeExpense,
		Description: "Gym membership",
		Frequency:   models.FrequencyWeekly,
	})

	_ = createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		UserID:      u.Data.ID,
		CategoryID:  c2.Data.ID,
		Type:        models.TypeIncome,
		Description: "Salary",
		Frequency:   models.FrequencyMonthly,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User", fmt.Sprintf("user=%s", u.Data.ID), 3},
		{"User Not Existing", "user=5b95e1a9-522d-4a36-9074-32f7c15846a9", 0},
		{"Category", fmt.Sprintf("category=%s", c1.Data.ID), 2},
		{"Type expense", "type=expense", 2},
		{"Type income", "type=income", 1},
		{"Frequency monthly", "frequency=monthly", 2},
		{"Frequency weekly", "frequency=weekly", 1},
		{"Fuzzy description", "description=mem", 1},
		{"Empty description", "description=", 0},
		{"Offset 1", "offset=1", 2},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.RecurringTemplateListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/recurring-templates?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTemplatesCreateFails() {
	u := createTestUserProfile(suite.T(), v1.UserProfileEditable{})
	c := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID})

	end := types.NewDate(2024, 12, 31)

	tests := []struct {
		name     string
		body     any
		status   int                                                      // expected HTTP status
		testFunc func(t *testing.T, r v1.RecurringTemplateCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "description": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field RecurringTemplateEditable.description of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Invalid frequency",
			[]v1.RecurringTemplateEditable{{
				UserID:     u.Data.ID,
				CategoryID: c.Data.ID,
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(100),
				Currency:   "USD",
				StartDate:  types.NewDate(2025, 1, 1),
				Frequency:  "fortnightly",
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "the frequency must be one of: daily, weekly, biweekly, monthly, quarterly, annually", *r.Data[0].Error)
			},
		},
		{
			"End before start",
			[]v1.RecurringTemplateEditable{{
				UserID:     u.Data.ID,
				CategoryID: c.Data.ID,
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(100),
				Currency:   "USD",
				StartDate:  types.NewDate(2025, 1, 1),
				Frequency:  models.FrequencyMonthly,
				EndDate:    &end,
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "a recurring template must not end before it starts", *r.Data[0].Error)
			},
		},
		{
			"No start date",
			[]v1.RecurringTemplateEditable{{
				UserID:     u.Data.ID,
				CategoryID: c.Data.ID,
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(100),
				Currency:   "USD",
				Frequency:  models.FrequencyMonthly,
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "a recurring template needs a start date", *r.Data[0].Error)
			},
		},
		{
			"Negative amount",
			[]v1.RecurringTemplateEditable{{
				UserID:     u.Data.ID,
				CategoryID: c.Data.ID,
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(-100),
				Currency:   "USD",
				StartDate:  types.NewDate(2025, 1, 1),
				Frequency:  models.FrequencyMonthly,
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "amounts must be larger than zero", *r.Data[0].Error)
			},
		},
		{
			"Non-existing Category",
			[]v1.RecurringTemplateEditable{{
				UserID:     u.Data.ID,
				CategoryID: uuid.New(),
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(100),
				Currency:   "USD",
				StartDate:  types.NewDate(2025, 1, 1),
				Frequency:  models.FrequencyMonthly,
			}},
			http.StatusNotFound,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "there is no category matching your query", *r.Data[0].Error)
			},
		},
		{
			"Non-existing User",
			[]v1.RecurringTemplateEditable{{
				UserID:     uuid.New(),
				CategoryID: c.Data.ID,
				Type:       models.TypeExpense,
				Amount:     decimal.NewFromFloat(100),
				Currency:   "USD",
				StartDate:  types.NewDate(2025, 1, 1),
				Frequency:  models.FrequencyMonthly,
			}},
			http.StatusNotFound,
			func(t *testing.T, r v1.RecurringTemplateCreateResponse) {
				assert.Equal(t, "there is no user profile matching your query", *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/recurring-templates", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var tr v1.RecurringTemplateCreateResponse
			test.DecodeResponse(t, &r, &tr)

			if tt.testFunc != nil {
				tt.testFunc(t, tr)
			}
		})
	}
}

// Verify that updating recurring templates works as desired
func (suite *TestSuiteStandard) TestRecurringTemplatesUpdate() {
	template := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{Description: "Rent"})

	tests := []struct {
		name     string                                             // name of the test
		template map[string]any                                     // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.RecurringTemplateResponse) // tests to perform against the updated template resource
	}{
		{
			"Description, Amount",
			map[string]any{
				"description": "Rent, including utilities",
				"amount":      "1350",
			},
			func(t *testing.T, r v1.RecurringTemplateResponse) {
				assert.Equal(t, "Rent, including utilities", r.Data.Description)
				assert.True(t, r.Data.Amount.Equal(decimal.NewFromFloat(1350)))
			},
		},
		{
			"Frequency",
			map[string]any{
				"frequency": "quarterly",
			},
			func(t *testing.T, r v1.RecurringTemplateResponse) {
				assert.Equal(t, models.FrequencyQuarterly, r.Data.Frequency)
			},
		},
		{
			"Deactivate",
			map[string]any{
				"active": false,
			},
			func(t *testing.T, r v1.RecurringTemplateResponse) {
				assert.False(t, r.Data.Active)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, template.Data.Links.Self, tt.template)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var tr v1.RecurringTemplateResponse
			test.DecodeResponse(t, &r, &tr)

			if tt.testFunc != nil {
				tt.testFunc(t, tr)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTemplatesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"description": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "description": 2" }`, http.StatusBadRequest},
		{"Invalid frequency", "", map[string]any{"frequency": "sometimes"}, http.StatusBadRequest},
		{"Non-existing RecurringTemplate", uuid.New().String(), `{"description": "Fixed"}`, http.StatusNotFound},
		{"Set Category to non-existing", "", map[string]any{"categoryId": uuid.New().String()}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				template := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{})
				tt.id = template.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/recurring-templates/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestRecurringTemplatesDelete verifies all cases for RecurringTemplate
// deletions.
func (suite *TestSuiteStandard) TestRecurringTemplatesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing RecurringTemplate", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				template := createTestRecurringTemplate(t, v1.RecurringTemplateEditable{})
				tt.id = template.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/recurring-templates/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestMaterializeFails verifies the request validation of the materialization
// endpoint.
func (suite *TestSuiteStandard) TestMaterializeFails() {
	tests := []struct {
		name   string
		body   any
		status int    // expected response status
		error  string // expected error message
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Missing userId", `{}`, http.StatusBadRequest, "the userId field must be set"},
		{"Nil userId", fmt.Sprintf(`{"userId": "%s"}`, uuid.Nil), http.StatusBadRequest, "the userId field must be set"},
		{"Broken body", `{"userId": 17}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/recurring-templates/materialize", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MaterializeResponse
			test.DecodeResponse(t, &r, &response)

			if tt.error != "" {
				assert.Equal(t, tt.error, *response.Error)
			}
		})
	}
}

// TestMaterialize verifies the full round trip: a due template produces
// exactly one transaction, a second run on the same day produces none.
func (suite *TestSuiteStandard) TestMaterialize() {
	template := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		Description: "Morning coffee",
		Frequency:   models.FrequencyDaily,
		StartDate:   types.NewDate(2025, 1, 1),
		Amount:      decimal.NewFromFloat(3.5),
	})

	body := map[string]any{"userId": template.Data.UserID}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-templates/materialize", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var first v1.MaterializeResponse
	test.DecodeResponse(suite.T(), &r, &first)

	assert.Equal(suite.T(), 1, first.Data.Created)
	assert.Empty(suite.T(), first.Data.Errors)

	// The same run on the same day must not create a duplicate
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-templates/materialize", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var second v1.MaterializeResponse
	test.DecodeResponse(suite.T(), &r, &second)

	assert.Equal(suite.T(), 0, second.Data.Created)
	assert.Empty(suite.T(), second.Data.Errors)

	// The created transaction references the template and copies its fields
	r = test.Request(suite.T(), http.MethodGet, template.Data.Links.Transactions, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	if assert.Len(suite.T(), transactions.Data, 1) {
		transaction := transactions.Data[0]
		assert.Equal(suite.T(), "Morning coffee", transaction.Description)
		assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(3.5)))
		assert.True(suite.T(), transaction.Date.Equal(types.DateOf(time.Now())))

		if assert.NotNil(suite.T(), transaction.RecurringTemplateID) {
			assert.Equal(suite.T(), template.Data.ID, *transaction.RecurringTemplateID)
		}
	}
}

// TestMaterializeNotDue verifies that templates which do not have an
// occurrence today are skipped.
func (suite *TestSuiteStandard) TestMaterializeNotDue() {
	template := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		Frequency: models.FrequencyMonthly,
		StartDate: types.DateOf(time.Now()).AddDays(1),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-templates/materialize", map[string]any{"userId": template.Data.UserID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MaterializeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Created)
}

// TestMaterializeInactive verifies that deactivated templates are not
// materialized.
func (suite *TestSuiteStandard) TestMaterializeInactive() {
	template := createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		Frequency: models.FrequencyDaily,
		StartDate: types.NewDate(2025, 1, 1),
	})

	r := test.Request(suite.T(), http.MethodPatch, template.Data.Links.Self, map[string]any{"active": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-templates/materialize", map[string]any{"userId": template.Data.UserID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MaterializeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Created)
}

// TestMaterializeIsolation verifies that a run only touches the requested
// user's templates.
func (suite *TestSuiteStandard) TestMaterializeIsolation() {
	_ = createTestRecurringTemplate(suite.T(), v1.RecurringTemplateEditable{
		Frequency: models.FrequencyDaily,
		StartDate: types.NewDate(2025, 1, 1),
	})

	other := createTestUserProfile(suite.T(), v1.UserProfileEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/recurring-templates/materialize", map[string]any{"userId": other.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MaterializeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 0, response.Data.Created)
}
