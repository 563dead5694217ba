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
	"github.com/stretchr/testify/assert"
)

// TestUserProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestUserProfilesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestUserProfile(t, v1.UserProfileEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/user-profiles", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.UserProfileListResponse
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

// TestUserProfilesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestUserProfilesOptions() {
	tests := []struct {
		name   string
		id     string // path at the UserProfiles endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No UserProfile with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"UserProfile exists", createTestUserProfile(suite.T(), v1.UserProfileEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/user-profiles", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestUserProfilesGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestUserProfilesGetSingle() {
	u := createTestUserProfile(suite.T(), v1.UserProfileEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing UserProfile", u.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No UserProfile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/user-profiles/%s", tt.id), "")

			var profile v1.UserProfileResponse
			test.DecodeResponse(t, &r, &profile)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestUserProfilesCreate verifies that the currency is normalized and
// defaulted on creation.
func (suite *TestSuiteStandard) TestUserProfilesCreate() {
	tests := []struct {
		name     string
		currency string // currency sent in the request
		expected string // currency in the created profile
	}{
		{"Empty defaults to USD", "", "USD"},
		{"Lowercase is normalized", " eur ", "EUR"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			u := createTestUserProfile(t, v1.UserProfileEditable{DefaultCurrency: tt.currency})
			assert.Equal(t, tt.expected, u.Data.DefaultCurrency)
		})
	}
}

func (suite *TestSuiteStandard) TestUserProfilesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                                // expected HTTP status
		testFunc func(t *testing.T, u v1.UserProfileCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "defaultCurrency": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, u v1.UserProfileCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field UserProfileEditable.defaultCurrency of type string", *u.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, u v1.UserProfileCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *u.Error)
			},
		},
		{
			"Invalid currency",
			`[{ "defaultCurrency": "money" }]`,
			http.StatusBadRequest,
			func(t *testing.T, u v1.UserProfileCreateResponse) {
				assert.Equal(t, "the currency must be a valid ISO 4217 code", *u.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/user-profiles", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var u v1.UserProfileCreateResponse
			test.DecodeResponse(t, &r, &u)

			if tt.testFunc != nil {
				tt.testFunc(t, u)
			}
		})
	}
}

// Verify that updating user profiles works as desired
func (suite *TestSuiteStandard) TestUserProfilesUpdate() {
	profile := createTestUserProfile(suite.T(), v1.UserProfileEditable{})

	r := test.Request(suite.T(), http.MethodPatch, profile.Data.Links.Self, map[string]any{
		"defaultCurrency": "krw",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UserProfileResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "KRW", updated.Data.DefaultCurrency)
}

func (suite *TestSuiteStandard) TestUserProfilesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"defaultCurrency": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "defaultCurrency": "EUR" `, http.StatusBadRequest},
		{"Non-existing UserProfile", uuid.New().String(), `{"defaultCurrency": "EUR"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				profile := createTestUserProfile(suite.T(), v1.UserProfileEditable{})
				tt.id = profile.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/user-profiles/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestUserProfilesDelete verifies all cases for UserProfile deletions.
func (suite *TestSuiteStandard) TestUserProfilesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing UserProfile", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				u := createTestUserProfile(t, v1.UserProfileEditable{})
				tt.id = u.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/user-profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestUserProfilesGetFilter() {
	_ = createTestUserProfile(suite.T(), v1.UserProfileEditable{DefaultCurrency: "USD"})
	_ = createTestUserProfile(suite.T(), v1.UserProfileEditable{DefaultCurrency: "EUR"})
	_ = createTestUserProfile(suite.T(), v1.UserProfileEditable{DefaultCurrency: "EUR"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"USD", "defaultCurrency=USD", 1},
		{"EUR", "defaultCurrency=EUR", 2},
		{"No match", "defaultCurrency=KRW", 0},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.UserProfileListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/user-profiles?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}
