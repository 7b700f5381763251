// Package main Cabinetry Catalog API
// @title Cabinetry Catalog API
// @version 1.0
// @description Formula-driven cabinet part dimensioning and catalog service
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	_ "github.com/mpaky95/cabinetry/docs"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/router"
	"github.com/mpaky95/cabinetry/internal/server"
	"github.com/mpaky95/cabinetry/internal/storage/factory"
	pkgserver "github.com/mpaky95/cabinetry/pkg/server"
)

func main() {
	sCfg, err := server.LoadConfig("cmd/catalog_api/.env")
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Cabinetry Catalog API is running")
	})

	storer, reader, err := factory.NewCatalog(s.Context(), storageCfg)
	if err != nil {
		slog.Error("Failed to create catalog storage", "error", err)
		os.Exit(1)
	}

	var catalogOpts []router.CatalogRouterOption
	if storageCfg.Es != nil {
		searcher, err := factory.NewSearcher(s.Context(), storageCfg)
		if err != nil {
			slog.Error("Failed to create catalog searcher", "error", err)
			os.Exit(1)
		}
		catalogOpts = append(catalogOpts, router.WithSearcher(searcher))

		indexer, err := factory.NewIndexer(s.Context(), storageCfg)
		if err != nil {
			slog.Error("Failed to create catalog indexer", "error", err)
			os.Exit(1)
		}
		catalogOpts = append(catalogOpts, router.WithIndexer(
			func(c echo.Context, model domain.CabinetModel) error {
				return indexer.IndexModel(c.Request().Context(), model)
			}))
		slog.Info("Catalog search enabled")
	} else {
		slog.Info("Catalog search disabled")
	}

	router.NewFormulaRouter(s.Echo).Bind()
	router.NewCatalogRouter(s.Echo, storer, reader, catalogOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
