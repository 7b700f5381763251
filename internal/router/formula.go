package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mpaky95/cabinetry/internal/dimension"
	"github.com/mpaky95/cabinetry/internal/formula"
)

// FormulaRouter exposes the validation/evaluation engine directly. The
// validate endpoint is what the admin surface calls at data-entry time so
// invalid formulas are rejected before they are ever persisted.
type FormulaRouter struct {
	e *echo.Echo
}

func NewFormulaRouter(e *echo.Echo) *FormulaRouter {
	return &FormulaRouter{e: e}
}

func (r *FormulaRouter) Bind() {
	r.e.POST("/formulas/validate", r.validateHandler)
	r.e.POST("/formulas/evaluate", r.evaluateHandler)
	r.e.POST("/parts/dimensions", r.dimensionsHandler)
}

type formulaRequest struct {
	Formula   string            `json:"formula"`
	Variables formula.Variables `json:"variables"`
}

type dimensionsRequest struct {
	Formulas  dimension.PartFormulas `json:"formulas"`
	Variables formula.Variables      `json:"variables"`
}

// validateHandler godoc
// @Summary Validate formula text against a variable binding
// @Accept json
// @Produce json
// @Router /formulas/validate [post]
func (r *FormulaRouter) validateHandler(c echo.Context) error {
	var req formulaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	if err := formula.Validate(req.Formula, req.Variables); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"valid": true})
}

// evaluateHandler godoc
// @Summary Evaluate a formula under a variable binding
// @Accept json
// @Produce json
// @Router /formulas/evaluate [post]
func (r *FormulaRouter) evaluateHandler(c echo.Context) error {
	var req formulaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	value, err := formula.Evaluate(req.Formula, req.Variables)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]float64{"value": value})
}

// dimensionsHandler godoc
// @Summary Compute part dimensions from per-axis formulas
// @Accept json
// @Produce json
// @Router /parts/dimensions [post]
func (r *FormulaRouter) dimensionsHandler(c echo.Context) error {
	var req dimensionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	dims, err := dimension.Assemble(req.Formulas, req.Variables)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dims)
}
