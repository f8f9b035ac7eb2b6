// Package app wires the store, search history and header controllers
// together for the TUI and the one-shot commands.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/glabrego/cargonav/internal/carrier"
	"github.com/glabrego/cargonav/internal/config"
	"github.com/glabrego/cargonav/internal/content"
	"github.com/glabrego/cargonav/internal/history"
	"github.com/glabrego/cargonav/internal/navbar"
	"github.com/glabrego/cargonav/internal/storage"
)

type App struct {
	Site        content.Site
	Store       storage.Store
	History     *history.Recent
	Coordinator *navbar.Coordinator
	Router      *navbar.PathRouter
	Search      *navbar.SearchPanel
	Drawer      *navbar.Drawer
	Scroll      *navbar.ScrollHeader
	Carousel    *content.Carousel
	Logger      *zap.Logger
}

// Open opens the configured store and builds an App on top of it. The caller
// owns the returned App and must Close it.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger, opener navbar.URLOpener) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := cfg.Carrier()
	if err != nil {
		return nil, fmt.Errorf("carrier config: %w", err)
	}
	site, err := content.Default()
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, cfg.Store, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	logger.Info("store opened", zap.String("backend", cfg.Store), zap.String("path", cfg.DBPath))
	return New(store, site, c, logger, opener), nil
}

// New builds an App around an already open store.
func New(store storage.Store, site content.Site, c carrier.Carrier, logger *zap.Logger, opener navbar.URLOpener) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	recent := history.Open(store, logger.Named("history"))
	coord := navbar.NewCoordinator()
	router := navbar.NewPathRouter("/")
	return &App{
		Site:        site,
		Store:       store,
		History:     recent,
		Coordinator: coord,
		Router:      router,
		Search: navbar.NewSearchPanel(navbar.SearchPanelOptions{
			Coordinator: coord,
			History:     recent,
			Carrier:     c,
			Opener:      opener,
			Logger:      logger.Named("search"),
		}),
		Drawer:   navbar.NewDrawer(coord, router),
		Scroll:   &navbar.ScrollHeader{},
		Carousel: content.NewCarousel(site.Slides),
		Logger:   logger,
	}
}

func (a *App) Close() error {
	if a == nil || a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
