package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/domain/shared"
)

// AuthAPI is the slice of the gateway the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (identity.Credential, error)
	Register(ctx context.Context, username, password, email string, role identity.Role, adminKey string) (identity.Credential, error)
	Logout(ctx context.Context) error
}

// Flow drives login, registration and logout against the backend and keeps
// the session store in step with the results.
type Flow struct {
	api   AuthAPI
	store *Store
	log   *zap.Logger
}

// NewFlow creates an auth flow.
func NewFlow(api AuthAPI, store *Store, log *zap.Logger) *Flow {
	return &Flow{api: api, store: store, log: log}
}

// Login authenticates and installs the returned credential.
func (f *Flow) Login(ctx context.Context, username, password string) error {
	cred, err := f.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !cred.IsAuthenticated() {
		return shared.NewDomainError("NO_TOKEN", "No token returned from server")
	}
	return f.store.SetCredential(cred.Token, cred.Username, cred.Role)
}

// Register creates an account and signs it in. The server may silently
// downgrade a requested Admin role when the admin key is not accepted; the
// returned warning surfaces that discrepancy to the user.
func (f *Flow) Register(ctx context.Context, username, password, email string, role identity.Role, adminKey string) (string, error) {
	cred, err := f.api.Register(ctx, username, password, email, role, adminKey)
	if err != nil {
		return "", err
	}
	if !cred.IsAuthenticated() {
		return "", shared.NewDomainError("NO_TOKEN", "No token returned from server")
	}

	var warning string
	if role == identity.RoleAdmin && cred.Role != identity.RoleAdmin {
		warning = fmt.Sprintf("Account created, but the admin key was not accepted; you are signed in as %s.", cred.Role)
	}

	if err := f.store.SetCredential(cred.Token, cred.Username, cred.Role); err != nil {
		return "", err
	}
	return warning, nil
}

// Logout tells the server to revoke the token, best effort, then clears the
// session regardless of the outcome.
func (f *Flow) Logout(ctx context.Context) {
	if f.store.IsAuthenticated() {
		if err := f.api.Logout(ctx); err != nil {
			f.log.Debug("logout call failed, clearing session anyway", zap.Error(err))
		}
	}
	f.store.Clear()
}
