package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mpaky95/cabinetry/internal/formula"
	"github.com/mpaky95/cabinetry/internal/storage"
)

// GlobalErrorHandler maps the formula error taxonomy onto HTTP statuses.
// Vocabulary and grammar failures are the caller's fault (400); unbound
// variables and non-finite results are valid formulas that cannot be
// computed under the supplied binding (422).
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			invalidErr *formula.InvalidFormulaError
			syntaxErr  *formula.SyntaxError
			unboundErr *formula.UnboundVariableError
			evalErr    *formula.EvaluationError
			ve         *ValidationError
		)
		switch {
		case errors.As(err, &invalidErr):
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": invalidErr.Error(), "title": "invalid formula"})
		case errors.As(err, &syntaxErr):
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": syntaxErr.Error(), "title": "syntax error"})
		case errors.As(err, &unboundErr):
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": unboundErr.Error(), "title": "unbound variable"})
		case errors.As(err, &evalErr):
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": evalErr.Error(), "title": "evaluation failed"})
		case errors.Is(err, storage.ErrNotFound):
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		case errors.As(err, &ve):
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
		default:
			var he *echo.HTTPError
			if errors.As(err, &he) {
				msg := fmt.Sprintf("%v", he.Message)
				_ = c.JSON(he.Code, map[string]string{"error": msg})
				return
			}
			slog.Error("Unhandled error", "error", err)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
	}
}
