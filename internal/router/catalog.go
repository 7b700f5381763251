package router

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mpaky95/cabinetry/internal/cutlist"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/formula"
	"github.com/mpaky95/cabinetry/internal/storage"
)

type CatalogRouter struct {
	e        *echo.Echo
	storer   storage.Storer
	reader   storage.Reader
	searcher storage.Searcher
	indexer  indexFunc
}

type indexFunc func(c echo.Context, model domain.CabinetModel) error

type CatalogRouterOption func(*CatalogRouter)

// WithSearcher enables the /catalog/search endpoint.
func WithSearcher(s storage.Searcher) CatalogRouterOption {
	return func(r *CatalogRouter) {
		r.searcher = s
	}
}

// WithIndexer publishes saved models to the search index after persisting.
func WithIndexer(fn func(c echo.Context, model domain.CabinetModel) error) CatalogRouterOption {
	return func(r *CatalogRouter) {
		r.indexer = fn
	}
}

func NewCatalogRouter(e *echo.Echo, storer storage.Storer, reader storage.Reader, opts ...CatalogRouterOption) *CatalogRouter {
	r := &CatalogRouter{
		e:      e,
		storer: storer,
		reader: reader,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CatalogRouter) Bind() {
	r.e.POST("/models", r.saveModelHandler)
	r.e.GET("/models", r.listModelsHandler)
	r.e.GET("/models/:id", r.getModelHandler)
	r.e.POST("/models/:id/cutlist", r.cutlistHandler)
	r.e.POST("/materials", r.saveMaterialHandler)
	if r.searcher != nil {
		r.e.GET("/catalog/search", r.searchHandler)
	}
}

type saveModelRequest struct {
	domain.CabinetModel
	// Variables, when supplied, are used to validate every formula of the
	// model at entry time, so bad formula text never reaches storage.
	Variables formula.Variables `json:"variables,omitempty"`
}

type cutlistRequest struct {
	Project    domain.Project `json:"project"`
	MaterialID string         `json:"materialId,omitempty"`
	KerfWidth  float64        `json:"kerfWidth,omitempty"`
	WastePct   float64        `json:"wastePercent,omitempty"`
}

type cutlistResponse struct {
	cutlist.Cutlist
	Estimate *cutlist.PurchaseEstimate `json:"estimate,omitempty"`
}

// saveModelHandler godoc
// @Summary Create or update a cabinet model, validating formulas at entry
// @Accept json
// @Produce json
// @Router /models [post]
func (r *CatalogRouter) saveModelHandler(c echo.Context) error {
	var req saveModelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	if err := req.CabinetModel.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Variables) > 0 {
		if err := cutlist.ValidateModelFormulas(req.CabinetModel, req.Variables); err != nil {
			return err
		}
	}

	id, err := r.storer.SaveModel(c.Request().Context(), req.CabinetModel)
	if err != nil {
		return err
	}
	req.CabinetModel.ID = id

	if r.indexer != nil {
		if err := r.indexer(c, req.CabinetModel); err != nil {
			// the model is persisted; index lag is tolerable
			slog.Error("failed to index model for catalog search", "model", req.Name, "error", err)
		}
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

func (r *CatalogRouter) listModelsHandler(c echo.Context) error {
	models, err := r.reader.ListModels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models)
}

func (r *CatalogRouter) getModelHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid model id")
	}
	model, err := r.reader.GetModel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model)
}

// cutlistHandler godoc
// @Summary Evaluate a model's cutlist under a project's variables
// @Accept json
// @Produce json
// @Router /models/{id}/cutlist [post]
func (r *CatalogRouter) cutlistHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid model id")
	}

	var req cutlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	model, err := r.reader.GetModel(c.Request().Context(), id)
	if err != nil {
		return err
	}

	list, err := cutlist.Generate(*model, req.Project)
	if err != nil {
		return err
	}

	resp := cutlistResponse{Cutlist: list}
	if req.MaterialID != "" {
		materialID, err := uuid.Parse(req.MaterialID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid material id")
		}
		material, err := r.reader.GetMaterial(c.Request().Context(), materialID)
		if err != nil {
			return err
		}
		est := cutlist.Estimate(list, *material, req.KerfWidth, req.WastePct)
		resp.Estimate = &est
	}
	return c.JSON(http.StatusOK, resp)
}

func (r *CatalogRouter) saveMaterialHandler(c echo.Context) error {
	var material domain.Material
	if err := c.Bind(&material); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := material.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := r.storer.SaveMaterial(c.Request().Context(), material)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// searchHandler godoc
// @Summary Search catalog models and parts by name or category
// @Produce json
// @Router /catalog/search [get]
func (r *CatalogRouter) searchHandler(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q parameter is required")
	}

	size := 10
	if s := c.QueryParam("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			size = parsed
		}
	}

	hits, err := r.searcher.Search(c.Request().Context(), query, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hits)
}
