package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/lettercat/internal/api"
	"github.com/youruser/lettercat/internal/catalogue"
	"github.com/youruser/lettercat/internal/config"
	imagepkg "github.com/youruser/lettercat/internal/image"
	"github.com/youruser/lettercat/internal/util"
)

func main() {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	images, err := catalogue.LoadFromDataDir(cfg.DataDir)
	if err != nil {
		logger.Error("loading catalogue", "dir", cfg.DataDir, "err", err)
		os.Exit(1)
	}
	if err := util.EnsureDir(cfg.ImageRoot); err != nil {
		logger.Error("image root", "dir", cfg.ImageRoot, "err", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.FetchTimeout}
	pipeline := imagepkg.NewPipeline(imagepkg.NewRouter(cfg.ImageRoot, client), logger)
	srv := api.NewServer(images, pipeline, cfg.PreviewHeight, cfg.ExportHeight, logger)

	r := gin.Default()
	srv.RegisterRoutes(r, cfg.ImageRoot)

	logger.Info("starting server",
		"url", "http://localhost"+cfg.Addr(),
		"images", len(images),
		"letters", len(catalogue.AvailableLetters(images)))
	if err := r.Run(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server", "err", err)
		os.Exit(1)
	}
}
