package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-energy/internal/core/domain"
)

func getDashboard(t *testing.T, query url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest("GET", "/?"+query.Encode(), nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	setupRealRouter().ServeHTTP(w, req)
	return w
}

func dashboardQuery(temps ...string) url.Values {
	q := url.Values{}
	q.Set("name", "Asha")
	q.Set("city", "Pune")
	q.Set("area", "Kothrud")
	q.Set("age", "30")
	q.Set("housing", "flat")
	q.Set("bhk", "2BHK")
	for _, temp := range temps {
		q.Add("t", temp)
	}
	return q
}

func TestDashboard(t *testing.T) {
	t.Run("Empty form: Notice only", func(t *testing.T) {
		w := getDashboard(t, url.Values{})

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Please fill in your personal information above first.")
		assert.NotContains(t, body, "Weekly Energy Summary")
		assert.Contains(t, body, `<option value="tenement"`)
		assert.Contains(t, body, `<option value="3BHK"`)
	})

	t.Run("Filled form: Weekly summary", func(t *testing.T) {
		w := getDashboard(t, dashboardQuery("40", "15", "27", "27", "27", "27", "27"))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Weekly Energy Summary")
		assert.Contains(t, body, "Highest Consumption Day<br><strong>Monday</strong>")
		assert.Contains(t, body, "INR")
		assert.Contains(t, body, "Very Hot")
	})

	t.Run("Filled form: Day tips and chart series", func(t *testing.T) {
		w := getDashboard(t, dashboardQuery("40", "15", "27", "27", "27", "27", "27"))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<strong>Hot Day Tips:</strong>")
		assert.Contains(t, body, "<strong>Cold Day Tips:</strong>")
		assert.Contains(t, body, "Weekly Energy Trend")
		assert.Contains(t, body, `points="10.0,`)
		assert.Contains(t, body, "Trend kWh")
	})

	t.Run("Fail: Wrong slider count is reported", func(t *testing.T) {
		for _, temps := range [][]string{
			{"25", "25", "25", "25", "25", "25", "25", "25"},
			{"25", "25", "25"},
		} {
			w := getDashboard(t, dashboardQuery(temps...))

			assert.Equal(t, http.StatusBadRequest, w.Code, "%d values", len(temps))
			assert.Contains(t, w.Body.String(), "exactly 7 daily temperatures")
		}
	})

	t.Run("Missing sliders default to 25", func(t *testing.T) {
		w := getDashboard(t, dashboardQuery())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `value="25"`)
	})

	t.Run("Fail: Age out of range", func(t *testing.T) {
		q := dashboardQuery()
		q.Set("age", "121")
		w := getDashboard(t, q)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "age must be between 1 and 120")
	})

	t.Run("Fail: Non-numeric slider value", func(t *testing.T) {
		w := getDashboard(t, dashboardQuery("hot"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "temperature must be a number")
	})

	t.Run("Fail: Unsupported configuration", func(t *testing.T) {
		q := dashboardQuery()
		q.Set("bhk", "5BHK")
		w := getDashboard(t, q)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "please choose a supported configuration")
	})

	t.Run("Fail: Unexpected error is not leaked", func(t *testing.T) {
		svc := new(MockEstimator)
		svc.On("Profiles").Return(domain.SupportedProfiles())
		svc.On("EstimateWeek", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		req, _ := http.NewRequest("GET", "/?"+dashboardQuery().Encode(), nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
		svc.AssertExpectations(t)
	})
}
