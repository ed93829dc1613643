package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
)

// MockSupplierAPI is a mock implementation of SupplierAPI
type MockSupplierAPI struct {
	mock.Mock
}

func (m *MockSupplierAPI) CreateSupplier(ctx context.Context, payload gateway.SupplierPayload) (inventory.Supplier, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(inventory.Supplier), args.Error(1)
}

func (m *MockSupplierAPI) UpdateSupplier(ctx context.Context, id int64, payload gateway.SupplierPayload) (inventory.Supplier, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(inventory.Supplier), args.Error(1)
}

// MockSupplierCache is a mock implementation of SupplierCache
type MockSupplierCache struct {
	mock.Mock
}

func (m *MockSupplierCache) InsertSupplier(s inventory.Supplier) {
	m.Called(s)
}

func (m *MockSupplierCache) ApplySupplierUpdate(s inventory.Supplier) {
	m.Called(s)
}

func newSupplierEditorForTest(t *testing.T) (*SupplierEditor, *MockSupplierAPI, *MockSupplierCache) {
	t.Helper()
	api := new(MockSupplierAPI)
	cache := new(MockSupplierCache)
	return NewSupplierEditor(api, cache, zap.NewNop()), api, cache
}

func TestSupplierEditor_Submit_RequiresName(t *testing.T) {
	e, api, _ := newSupplierEditorForTest(t)

	e.Draft().Email = "orders@acme.test"
	_, err := e.Submit(context.Background())

	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "orders@acme.test", e.Draft().Email)
	api.AssertNotCalled(t, "CreateSupplier", mock.Anything, mock.Anything)
}

func TestSupplierEditor_Submit_CreatesAndAppends(t *testing.T) {
	e, api, cache := newSupplierEditorForTest(t)
	ctx := context.Background()

	d := e.Draft()
	d.Name = "Acme"
	d.Contact = "555-0100"
	d.Email = "orders@acme.test"

	created := inventory.Supplier{ID: 4, Name: "Acme", Contact: "555-0100", Email: "orders@acme.test"}
	api.On("CreateSupplier", ctx, gateway.SupplierPayload{Name: "Acme", Contact: "555-0100", Email: "orders@acme.test"}).
		Return(created, nil)
	cache.On("InsertSupplier", created).Return()

	got, err := e.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, SupplierDraft{}, *e.Draft())
	api.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSupplierEditor_Submit_EditModeUpdatesByID(t *testing.T) {
	e, api, cache := newSupplierEditorForTest(t)
	ctx := context.Background()

	e.BeginEdit(inventory.Supplier{ID: 4, Name: "Acme", Contact: "555-0100"})
	e.Draft().Name = "Acme Corp"

	updated := inventory.Supplier{ID: 4, Name: "Acme Corp", Contact: "555-0100"}
	api.On("UpdateSupplier", ctx, int64(4), mock.AnythingOfType("gateway.SupplierPayload")).Return(updated, nil)
	cache.On("ApplySupplierUpdate", updated).Return()

	got, err := e.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, SupplierDraft{}, *e.Draft())
	api.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestSupplierEditor_Submit_FailureKeepsDraft(t *testing.T) {
	e, api, cache := newSupplierEditorForTest(t)
	ctx := context.Background()

	e.Draft().Name = "Acme"
	api.On("CreateSupplier", ctx, mock.AnythingOfType("gateway.SupplierPayload")).
		Return(inventory.Supplier{}, shared.ErrUnavailable)

	_, err := e.Submit(ctx)

	assert.ErrorIs(t, err, shared.ErrUnavailable)
	assert.Equal(t, "Acme", e.Draft().Name)
	cache.AssertNotCalled(t, "InsertSupplier", mock.Anything)
}

func TestSupplierEditor_Cancel(t *testing.T) {
	e, _, _ := newSupplierEditorForTest(t)

	e.BeginEdit(inventory.Supplier{ID: 4, Name: "Acme"})
	e.Cancel()

	assert.Equal(t, SupplierDraft{}, *e.Draft())
}
