package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
)

// staticTokens is a TokenSource with a fixed token.
type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(url, token string) *Client {
	return NewClient(url, 5*time.Second, staticTokens(token), zap.NewNop())
}

func TestClient_AttachesTokenHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "secret-token")
	_, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Token secret-token", gotAuth)
}

func TestClient_OmitsHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestClient_Maps401ToUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "stale")
	_, err := client.ListProducts(context.Background())

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestClient_Unauthenticated401IsNotSessionExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// A rejected login holds no token yet, so 401 is an ordinary failure.
	client := newTestClient(srv.URL, "")
	_, err := client.Login(context.Background(), "alice", "wrong")

	assert.NotErrorIs(t, err, shared.ErrUnauthorized)
	assert.ErrorIs(t, err, shared.ErrRequestFailed)
}

func TestClient_Maps403ToForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	_, err := client.ListUsers(context.Background())

	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestClient_MapsOtherStatusesToRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	_, err := client.ListProducts(context.Background())

	assert.ErrorIs(t, err, shared.ErrRequestFailed)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client := newTestClient(srv.URL, "tok")
	_, err := client.ListProducts(context.Background())

	assert.ErrorIs(t, err, shared.ErrUnavailable)
}

func TestClient_MalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	_, err := client.ListProducts(context.Background())

	assert.ErrorIs(t, err, shared.ErrUnavailable)
}

func TestClient_ProductPayloadSendsExplicitNullSupplier(t *testing.T) {
	var body map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Widget","sku":"W-1"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	_, err := client.CreateProduct(context.Background(), ProductPayload{Name: "Widget", SKU: "W-1"})

	require.NoError(t, err)
	raw, present := body["supplier_id"]
	require.True(t, present, "supplier_id must always be sent")
	assert.Equal(t, "null", string(raw))
}

func TestClient_DeleteHandles204WithoutDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/42/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	assert.NoError(t, client.DeleteProduct(context.Background(), 42))
}

func TestClient_Login_FallsBackToRequestUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok","role":"Staff"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	cred, err := client.Login(context.Background(), "alice", "pw")

	require.NoError(t, err)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "tok", cred.Token)
}

func TestClient_ListProducts_DecodesEmbeddedSupplier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Widget","sku":"W-1","stock":3,"reorder_level":5,"supplier":{"id":9,"name":"Acme"}}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "tok")
	products, err := client.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	p := products[0]
	assert.True(t, p.Low())
	require.NotNil(t, p.ResolveSupplierID())
	assert.Equal(t, int64(9), *p.ResolveSupplierID())
	assert.Equal(t, "Acme", p.SupplierName())
	assert.IsType(t, inventory.Product{}, p)
}
