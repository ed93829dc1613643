package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
)

// SupplierAPI is the slice of the gateway the supplier editor needs.
type SupplierAPI interface {
	CreateSupplier(ctx context.Context, payload gateway.SupplierPayload) (inventory.Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, payload gateway.SupplierPayload) (inventory.Supplier, error)
}

// SupplierCache is the slice of the synchronizer the supplier editor needs.
type SupplierCache interface {
	InsertSupplier(inventory.Supplier)
	ApplySupplierUpdate(inventory.Supplier)
}

// SupplierDraft mirrors the supplier form. A non-zero ID means the draft was
// pre-filled from an existing supplier and submit becomes an update.
type SupplierDraft struct {
	ID      int64
	Name    string
	Contact string
	Email   string
}

// SupplierEditor drives the add/edit supplier form.
type SupplierEditor struct {
	api   SupplierAPI
	cache SupplierCache
	log   *zap.Logger
	draft SupplierDraft
}

// NewSupplierEditor creates a supplier editor.
func NewSupplierEditor(api SupplierAPI, cache SupplierCache, log *zap.Logger) *SupplierEditor {
	return &SupplierEditor{api: api, cache: cache, log: log}
}

// Draft exposes the current draft for the form to mutate.
func (e *SupplierEditor) Draft() *SupplierDraft {
	return &e.draft
}

// BeginEdit pre-fills the draft from an existing supplier.
func (e *SupplierEditor) BeginEdit(s inventory.Supplier) {
	e.draft = SupplierDraft{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
		Email:   s.Email,
	}
}

// Cancel resets the draft to its empty shape.
func (e *SupplierEditor) Cancel() {
	e.draft = SupplierDraft{}
}

// Submit validates, sends the draft, and reconciles the response into the
// cache. The draft survives any failure.
func (e *SupplierEditor) Submit(ctx context.Context) (inventory.Supplier, error) {
	if e.draft.Name == "" {
		return inventory.Supplier{}, fmt.Errorf("%w: supplier name is required", shared.ErrValidation)
	}

	payload := gateway.SupplierPayload{
		Name:    e.draft.Name,
		Contact: e.draft.Contact,
		Email:   e.draft.Email,
	}

	if e.draft.ID != 0 {
		updated, err := e.api.UpdateSupplier(ctx, e.draft.ID, payload)
		if err != nil {
			return inventory.Supplier{}, err
		}
		e.cache.ApplySupplierUpdate(updated)
		e.log.Info("supplier updated", zap.Int64("id", updated.ID))
		e.draft = SupplierDraft{}
		return updated, nil
	}

	created, err := e.api.CreateSupplier(ctx, payload)
	if err != nil {
		return inventory.Supplier{}, err
	}
	e.cache.InsertSupplier(created)
	e.log.Info("supplier created", zap.Int64("id", created.ID))
	e.draft = SupplierDraft{}
	return created, nil
}
