package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/Q1justin/Moayo/internal/controllers/v1"
	"github.com/Q1justin/Moayo/internal/models"
	"github.com/Q1justin/Moayo/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestGoalsDBClosed verifies that errors are processed correctly when the
// database is closed.
func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestGoal(t, v1.GoalEditable{UserID: c.Data.UserID, CategoryID: c.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/goals", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.GoalListResponse
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

// TestGoalsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Goals endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Goal with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Goal exists", createTestGoal(suite.T(), v1.GoalEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestGoalsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Goal", goal.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Goal with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	u := createTestUserProfile(suite.T(), v1.UserProfileEditable{})
	c1 := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID, Name: "Groceries"})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID, Name: "Side projects", Type: models.TypeIncome})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		UserID:     u.Data.ID,
		CategoryID: c1.Data.ID,
		Type:       models.TypeExpense,
		Timeframe:  models.TimeframeMonthly,
	})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		UserID:     u.Data.ID,
		CategoryID: c1.Data.ID,
		Type:       models.TypeExpense,
		Timeframe:  models.TimeframeWeekly,
	})

	_ = createTestGoal(suite.T(), v1.GoalEditable{
		UserID:     u.Data.ID,
		CategoryID: c2.Data.ID,
		Type:       models.TypeIncome,
		Timeframe:  models.TimeframeMonthly,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User", fmt.Sprintf("user=%s", u.Data.ID), 3},
		{"User Not Existing", "user=2fdd117f-be51-4b05-a61c-6a3c9862d6cb", 0},
		{"Category", fmt.Sprintf("category=%s", c1.Data.ID), 2},
		{"Type expense", "type=expense", 2},
		{"Type income", "type=income", 1},
		{"Timeframe monthly", "timeframe=monthly", 2},
		{"Timeframe weekly", "timeframe=weekly", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	u := createTestUserProfile(suite.T(), v1.UserProfileEditable{})
	c := createTestCategory(suite.T(), v1.CategoryEditable{UserID: u.Data.ID})

	tests := []struct {
		name     string
		body     any
		status   int                                         // expected HTTP status
		testFunc func(t *testing.T, r v1.GoalCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "currency": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field GoalEditable.currency of type string", *r.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *r.Error)
			},
		},
		{
			"Invalid timeframe",
			[]v1.GoalEditable{{
				UserID:       u.Data.ID,
				CategoryID:   c.Data.ID,
				Type:         models.TypeExpense,
				TargetAmount: decimal.NewFromFloat(500),
				Currency:     "USD",
				Timeframe:    "biannually",
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "the timeframe must be one of: daily, weekly, monthly, yearly", *r.Data[0].Error)
			},
		},
		{
			"Negative target",
			[]v1.GoalEditable{{
				UserID:       u.Data.ID,
				CategoryID:   c.Data.ID,
				Type:         models.TypeExpense,
				TargetAmount: decimal.NewFromFloat(-500),
				Currency:     "USD",
				Timeframe:    models.TimeframeMonthly,
			}},
			http.StatusBadRequest,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "amounts must be larger than zero", *r.Data[0].Error)
			},
		},
		{
			"Non-existing Category",
			[]v1.GoalEditable{{
				UserID:       u.Data.ID,
				CategoryID:   uuid.New(),
				Type:         models.TypeExpense,
				TargetAmount: decimal.NewFromFloat(500),
				Currency:     "USD",
				Timeframe:    models.TimeframeMonthly,
			}},
			http.StatusNotFound,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "there is no category matching your query", *r.Data[0].Error)
			},
		},
		{
			"Non-existing User",
			[]v1.GoalEditable{{
				UserID:       uuid.New(),
				CategoryID:   c.Data.ID,
				Type:         models.TypeExpense,
				TargetAmount: decimal.NewFromFloat(500),
				Currency:     "USD",
				Timeframe:    models.TimeframeMonthly,
			}},
			http.StatusNotFound,
			func(t *testing.T, r v1.GoalCreateResponse) {
				assert.Equal(t, "there is no user profile matching your query", *r.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

// Verify that updating goals works as desired
func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name     string                                // name of the test
		goal     map[string]any                        // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, r v1.GoalResponse) // tests to perform against the updated goal resource
	}{
		{
			"Target amount",
			map[string]any{
				"targetAmount": "750",
			},
			func(t *testing.T, r v1.GoalResponse) {
				assert.True(t, r.Data.TargetAmount.Equal(decimal.NewFromFloat(750)))
			},
		},
		{
			"Timeframe",
			map[string]any{
				"timeframe": "yearly",
			},
			func(t *testing.T, r v1.GoalResponse) {
				assert.Equal(t, models.TimeframeYearly, r.Data.Timeframe)
			},
		},
		{
			"Deactivate",
			map[string]any{
				"active": false,
			},
			func(t *testing.T, r v1.GoalResponse) {
				assert.False(t, r.Data.Active)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Data.Links.Self, tt.goal)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"currency": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "currency": "USD" `, http.StatusBadRequest},
		{"Invalid timeframe", "", map[string]any{"timeframe": "sometimes"}, http.StatusBadRequest},
		{"Non-existing Goal", uuid.New().String(), `{"currency": "EUR"}`, http.StatusNotFound},
		{"Set Category to non-existing", "", map[string]any{"categoryId": uuid.New().String()}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				goal := createTestGoal(suite.T(), v1.GoalEditable{})
				tt.id = goal.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestGoalsDelete verifies all cases for Goal deletions.
func (suite *TestSuiteStandard) TestGoalsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Goal", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				goal := createTestGoal(t, v1.GoalEditable{})
				tt.id = goal.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
