package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mpaky95/cabinetry/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormulaServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewFormulaRouter(e).Bind()
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFormulaRouter_Validate(t *testing.T) {
	e := newFormulaServer()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid formula",
			body:       `{"formula": "W - 2*T", "variables": {"W": 24, "T": 0.75}}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown identifier",
			body:       `{"formula": "X + 1", "variables": {"W": 10}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "injection attempt",
			body:       `{"formula": "W; DROP TABLE parts", "variables": {"W": 10}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty formula",
			body:       `{"formula": "", "variables": {"W": 10}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(e, "/formulas/validate", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestFormulaRouter_Evaluate(t *testing.T) {
	e := newFormulaServer()

	rec := postJSON(e, "/formulas/evaluate", `{"formula": "W - 2*T", "variables": {"W": 24, "T": 0.75}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 22.5, resp["value"])
}

func TestFormulaRouter_Evaluate_ErrorStatuses(t *testing.T) {
	e := newFormulaServer()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "arity mismatch",
			body:       `{"formula": "min(W)", "variables": {"W": 24}}`,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "syntax error",
		},
		{
			name:       "division by zero",
			body:       `{"formula": "W / (T - T)", "variables": {"W": 24, "T": 0.75}}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantTitle:  "evaluation failed",
		},
		{
			name:       "disallowed vocabulary",
			body:       `{"formula": "system(1)", "variables": {"W": 24}}`,
			wantStatus: http.StatusBadRequest,
			wantTitle:  "invalid formula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(e, "/formulas/evaluate", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantTitle, resp["title"])
		})
	}
}

func TestFormulaRouter_Dimensions(t *testing.T) {
	e := newFormulaServer()

	rec := postJSON(e, "/parts/dimensions",
		`{"formulas": {"width": "W - 2*T", "height": "H"}, "variables": {"W": 24, "H": 30, "T": 0.75}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
		Depth  *float64 `json:"depth"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Width)
	require.NotNil(t, resp.Height)
	assert.Equal(t, 22.5, *resp.Width)
	assert.Equal(t, 30.0, *resp.Height)
	assert.Nil(t, resp.Depth, "absent depth formula must not produce a value")
}
