// Package testutil assembles a full client stack against an in-process stub
// API for integration tests.
package testutil

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/application/datasync"
	"github.com/inventorypro/dashboard/internal/application/editor"
	"github.com/inventorypro/dashboard/internal/application/session"
	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
	"github.com/inventorypro/dashboard/internal/infrastructure/storage"
	"github.com/inventorypro/dashboard/internal/stubserver"
)

// AdminKey is the stub admin key integration tests register admins with.
const AdminKey = "integration-admin-key"

// Env is a complete wired client plus the stub server it talks to.
type Env struct {
	Server      *httptest.Server
	Store       *stubserver.Store
	Session     *session.Store
	Flow        *session.Flow
	API         *gateway.Client
	Sync        *datasync.Synchronizer
	Products    *editor.ProductEditor
	Suppliers   *editor.SupplierEditor
	Orders      *editor.OrderEditor
	SessionPath string
}

// reloadOnLogin mirrors the production wiring: login loads everything,
// logout drops it.
type reloadOnLogin struct {
	sync *datasync.Synchronizer
}

func (r *reloadOnLogin) OnLogin(identity.Credential) {
	_ = r.sync.ReloadAll(context.Background())
}

func (r *reloadOnLogin) OnLogout() {
	r.sync.Reset()
}

// NewEnv builds the full stack and subscribes the reload observer, so a login
// (or restore) immediately populates the caches. The session file lives in a
// per-test temp dir.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	log := zap.NewNop()

	store := stubserver.NewStore(AdminKey)
	srv := httptest.NewServer(stubserver.New(store, log).Router())
	t.Cleanup(srv.Close)

	sessionPath := filepath.Join(t.TempDir(), "session.json")
	sess := session.NewStore(storage.NewCredentialStore(sessionPath), log)
	api := gateway.NewClient(srv.URL+"/api", 5*time.Second, sess, log)
	syncer := datasync.NewSynchronizer(api, sess, log)
	sess.Subscribe(&reloadOnLogin{sync: syncer})

	return &Env{
		Server:      srv,
		Store:       store,
		Session:     sess,
		Flow:        session.NewFlow(api, sess, log),
		API:         api,
		Sync:        syncer,
		Products:    editor.NewProductEditor(api, syncer, log),
		Suppliers:   editor.NewSupplierEditor(api, syncer, log),
		Orders:      editor.NewOrderEditor(api, syncer, log),
		SessionPath: sessionPath,
	}
}
