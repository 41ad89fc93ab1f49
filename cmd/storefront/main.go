package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	cartapp "github.com/dwikikusuma/tshirt-store/internal/cart/app"
	cartadapter "github.com/dwikikusuma/tshirt-store/internal/cart/infra/adapter"

	catalogapp "github.com/dwikikusuma/tshirt-store/internal/catalog/app"
	"github.com/dwikikusuma/tshirt-store/internal/catalog/infra/jsonfile"

	checkoutapp "github.com/dwikikusuma/tshirt-store/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/tshirt-store/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/tshirt-store/internal/order/app"
	"github.com/dwikikusuma/tshirt-store/internal/order/infra/xlsx"

	storehttp "github.com/dwikikusuma/tshirt-store/internal/http"
	"github.com/dwikikusuma/tshirt-store/internal/session"

	"github.com/dwikikusuma/tshirt-store/pkg/config"
	"github.com/dwikikusuma/tshirt-store/pkg/logger"
	"github.com/dwikikusuma/tshirt-store/pkg/shutdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogRepo := jsonfile.NewProductRepo(cfg.CatalogPath)
	catalogSvc := catalogapp.NewService(catalogRepo)

	// Cart
	catalogReader := cartadapter.NewCatalogServiceReader(catalogSvc)
	cartSvc := cartapp.NewService(catalogReader)

	// Orders + export
	orderSvc := orderapp.NewService()
	exporter, err := xlsx.NewExporter(cfg.OrdersDir)
	if err != nil {
		log.Error("orders dir unavailable", slog.Any("err", err), slog.String("dir", cfg.OrdersDir))
		os.Exit(1)
	}

	mode, err := checkoutadapter.ParseExportMode(cfg.ExportMode)
	if err != nil {
		log.Error("bad export mode", slog.Any("err", err))
		os.Exit(1)
	}
	invoices := checkoutadapter.NewExporterInvoiceWriter(exporter, mode)
	checkoutSvc := checkoutapp.NewService(orderSvc, invoices)

	// Presentation
	sessions := session.NewStore()
	router := storehttp.NewRouter(
		storehttp.NewProductHandler(catalogSvc),
		storehttp.NewCartHandler(sessions, cartSvc),
		storehttp.NewCheckoutHandler(sessions, checkoutSvc),
		storehttp.NewOrdersHandler(sessions, exporter),
	)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("export_mode", string(mode)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		return server.Shutdown(stopCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
