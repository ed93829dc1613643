// Command dashboard is the interactive terminal client for the inventory
// backend. It keeps a durable session, mirrors the server's collections into
// local caches, and derives the overview from them.
package main

import (
	"fmt"
	"os"

	"github.com/inventorypro/dashboard/internal/application/datasync"
	"github.com/inventorypro/dashboard/internal/application/editor"
	"github.com/inventorypro/dashboard/internal/application/session"
	"github.com/inventorypro/dashboard/internal/infrastructure/config"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
	"github.com/inventorypro/dashboard/internal/infrastructure/logger"
	"github.com/inventorypro/dashboard/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	store := session.NewStore(storage.NewCredentialStore(cfg.Session.Path), log)
	api := gateway.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, log)
	syncer := datasync.NewSynchronizer(api, store, log)

	app := &app{
		log:      log,
		session:  store,
		flow:     session.NewFlow(api, store, log),
		api:      api,
		sync:     syncer,
		products: editor.NewProductEditor(api, syncer, log),
		supplier: editor.NewSupplierEditor(api, syncer, log),
		orders:   editor.NewOrderEditor(api, syncer, log),
		out:      os.Stdout,
		in:       os.Stdin,
	}
	store.Subscribe(app)

	if err := store.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "restore session: %v\n", err)
		os.Exit(1)
	}

	app.run()
}
