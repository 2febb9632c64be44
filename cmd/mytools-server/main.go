package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/randomname124290358349/myTools/configs"
	"github.com/randomname124290358349/myTools/internal/app"
	"github.com/randomname124290358349/myTools/internal/audit"
	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/config"
	"github.com/randomname124290358349/myTools/internal/httpapi"
	"github.com/randomname124290358349/myTools/internal/log"
	"github.com/randomname124290358349/myTools/internal/platform"
	"github.com/randomname124290358349/myTools/internal/render"
	"github.com/randomname124290358349/myTools/internal/startup"
	"github.com/randomname124290358349/myTools/internal/supervisor"
	"github.com/randomname124290358349/myTools/internal/templates"
)

func main() {
	embeddedCatalog := flag.String("embedded-catalog", "", "Use embedded catalog from configs/ (filename)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var rendered []byte
	if embeddedCatalog != nil && *embeddedCatalog != "" {
		raw, err := configs.Load(*embeddedCatalog)
		if err != nil {
			logger.Error("load embedded catalog failed", "error", err)
			os.Exit(1)
		}
		rendered, err = render.RenderBytes(*embeddedCatalog, raw)
		if err != nil {
			logger.Error("render catalog failed", "error", err)
			os.Exit(1)
		}
	} else {
		rendered, err = render.RenderFile(cfg.CatalogPath)
		if err != nil {
			logger.Error("render catalog failed", "error", err)
			os.Exit(1)
		}
	}

	cat, err := catalog.Load(rendered)
	if err != nil {
		logger.Error("parse catalog failed", "error", err)
		os.Exit(1)
	}

	messages, err := templates.Load(cfg.Lang)
	if err != nil {
		logger.Error("load templates failed", "error", err)
		os.Exit(1)
	}

	family := platform.Current()
	logger.Info("platform resolved", "family", family, "system", platform.Describe().System, "arch", platform.Describe().Arch)

	sup := supervisor.New(logger, audit.New(logger))

	handler := &httpapi.Handler{
		Catalog:    cat,
		Family:     family,
		Supervisor: sup,
		Messages:   messages,
		Logger:     logger,
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	if err := startup.Run(baseCtx, cat.Server.StartupHooks, logger); err != nil {
		logger.Error("startup hooks failed", "error", err)
		os.Exit(1)
	}

	application, err := app.New(baseCtx, cat.Server, handler, sup.Active, logger, cfg.ShutdownTimeout)
	if err != nil {
		logger.Error("build server failed", "error", err)
		os.Exit(1)
	}

	if err := application.Run(baseCtx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
