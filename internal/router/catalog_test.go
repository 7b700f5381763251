package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mpaky95/cabinetry/internal/apperr"
	"github.com/mpaky95/cabinetry/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	catalog := in_mem.NewCatalog()
	NewCatalogRouter(e, catalog, catalog).Bind()
	return e
}

const baseCabinetJSON = `{
	"name": "base-cabinet",
	"parts": [
		{"name": "side panel", "category": "panel", "quantity": 2,
		 "formulas": {"width": "D", "height": "H"}},
		{"name": "door", "category": "door", "quantity": 2,
		 "formulas": {"width": "W/2 - 0.5", "height": "H"},
		 "edgeBanding": ["top", "bottom", "left", "right"]}
	]%s
}`

func TestCatalogRouter_SaveAndGetModel(t *testing.T) {
	e := newCatalogServer()

	rec := postJSON(e, "/models", fmt.Sprintf(baseCabinetJSON, ""))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"]
	require.NotEmpty(t, id)

	req := httptest.NewRequest(http.MethodGet, "/models/"+id, nil)
	getRec := httptest.NewRecorder()
	e.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "base-cabinet")
	assert.Contains(t, getRec.Body.String(), "W/2 - 0.5")
}

func TestCatalogRouter_SaveModel_RejectsBadFormulaAtEntry(t *testing.T) {
	e := newCatalogServer()

	// same model, but with a binding that exposes the unknown identifier
	body := fmt.Sprintf(baseCabinetJSON, `, "variables": {"H": 30, "D": 12}`)
	rec := postJSON(e, "/models", body)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "invalid formula")

	// nothing may have been persisted
	listReq := httptest.NewRequest(http.MethodGet, "/models", nil)
	listRec := httptest.NewRecorder()
	e.ServeHTTP(listRec, listReq)
	assert.Equal(t, "null\n", listRec.Body.String())
}

func TestCatalogRouter_Cutlist(t *testing.T) {
	e := newCatalogServer()

	rec := postJSON(e, "/models", fmt.Sprintf(baseCabinetJSON, ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	body := `{"project": {"name": "kitchen", "variables": {"W": 24, "H": 30, "D": 12}}}`
	cutRec := postJSON(e, "/models/"+created["id"]+"/cutlist", body)
	require.Equal(t, http.StatusOK, cutRec.Code, cutRec.Body.String())

	var resp struct {
		ModelName string `json:"modelName"`
		Rows      []struct {
			PartName   string `json:"partName"`
			Dimensions struct {
				Width *float64 `json:"width"`
			} `json:"dimensions"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(cutRec.Body.Bytes(), &resp))
	assert.Equal(t, "base-cabinet", resp.ModelName)
	require.Len(t, resp.Rows, 2)
	require.NotNil(t, resp.Rows[1].Dimensions.Width)
	assert.Equal(t, 11.5, *resp.Rows[1].Dimensions.Width)
}

func TestCatalogRouter_Cutlist_UnknownModel(t *testing.T) {
	e := newCatalogServer()

	body := `{"project": {"name": "kitchen", "variables": {"W": 24}}}`
	rec := postJSON(e, "/models/123e4567-e89b-12d3-a456-426614174000/cutlist", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogRouter_Cutlist_MissingVariable(t *testing.T) {
	e := newCatalogServer()

	rec := postJSON(e, "/models", fmt.Sprintf(baseCabinetJSON, ""))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// W missing: the door formula fails validation for this binding
	body := `{"project": {"name": "kitchen", "variables": {"H": 30, "D": 12}}}`
	cutRec := postJSON(e, "/models/"+created["id"]+"/cutlist", body)
	assert.Equal(t, http.StatusBadRequest, cutRec.Code, cutRec.Body.String())
}

func TestCatalogRouter_SaveMaterial(t *testing.T) {
	e := newCatalogServer()

	rec := postJSON(e, "/materials",
		`{"name": "19mm birch ply", "thickness": 0.75, "sheetWidth": 48, "sheetHeight": 96}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	badRec := postJSON(e, "/materials", `{"name": "", "thickness": 0}`)
	assert.Equal(t, http.StatusBadRequest, badRec.Code)
}
