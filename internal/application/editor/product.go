package editor

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
)

// ProductAPI is the slice of the gateway the product editor needs.
type ProductAPI interface {
	CreateProduct(ctx context.Context, payload gateway.ProductPayload) (inventory.Product, error)
	UpdateProduct(ctx context.Context, id int64, payload gateway.ProductPayload) (inventory.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ProductCache is the slice of the synchronizer the product editor needs.
type ProductCache interface {
	InsertProduct(inventory.Product)
	ApplyProductUpdate(inventory.Product)
	RemoveProduct(id int64)
}

// ProductDraft mirrors the product form: numeric fields stay free-form text
// until submit.
type ProductDraft struct {
	Name         string
	SKU          string
	Stock        string
	ReorderLevel string
	SupplierID   string
}

// ProductEditor drives the add/edit product form.
type ProductEditor struct {
	api     ProductAPI
	cache   ProductCache
	log     *zap.Logger
	draft   ProductDraft
	editing *inventory.Product
}

// NewProductEditor creates a product editor.
func NewProductEditor(api ProductAPI, cache ProductCache, log *zap.Logger) *ProductEditor {
	return &ProductEditor{api: api, cache: cache, log: log}
}

// Draft exposes the current draft for the form to mutate.
func (e *ProductEditor) Draft() *ProductDraft {
	return &e.draft
}

// Editing returns the product currently being edited, nil in create mode.
func (e *ProductEditor) Editing() *inventory.Product {
	return e.editing
}

// BeginEdit pre-fills the draft from an existing product. The supplier
// reference may arrive as a bare supplier_id or embedded in a supplier
// object; whichever is present wins.
func (e *ProductEditor) BeginEdit(p inventory.Product) {
	e.editing = &p
	e.draft = ProductDraft{
		Name:         p.Name,
		SKU:          p.SKU,
		Stock:        strconv.Itoa(p.Stock),
		ReorderLevel: strconv.Itoa(p.ReorderLevel),
	}
	if id := p.ResolveSupplierID(); id != nil {
		e.draft.SupplierID = strconv.FormatInt(*id, 10)
	}
}

// Cancel abandons the edit and resets the draft.
func (e *ProductEditor) Cancel() {
	e.editing = nil
	e.draft = ProductDraft{}
}

// Submit validates, sends the draft, and reconciles the response into the
// cache. Create mode appends; edit mode replaces by id and clears the
// editing pointer. The draft survives any failure.
func (e *ProductEditor) Submit(ctx context.Context) (inventory.Product, error) {
	if e.draft.Name == "" || e.draft.SKU == "" {
		return inventory.Product{}, fmt.Errorf("%w: product name and SKU are required", shared.ErrValidation)
	}

	payload := gateway.ProductPayload{
		Name:         e.draft.Name,
		SKU:          e.draft.SKU,
		Stock:        coerceInt(e.draft.Stock),
		ReorderLevel: coerceInt(e.draft.ReorderLevel),
		SupplierID:   coerceID(e.draft.SupplierID),
	}

	if e.editing != nil {
		updated, err := e.api.UpdateProduct(ctx, e.editing.ID, payload)
		if err != nil {
			return inventory.Product{}, err
		}
		e.cache.ApplyProductUpdate(updated)
		e.log.Info("product updated", zap.Int64("id", updated.ID), zap.String("sku", updated.SKU))
		e.editing = nil
		e.draft = ProductDraft{}
		return updated, nil
	}

	created, err := e.api.CreateProduct(ctx, payload)
	if err != nil {
		return inventory.Product{}, err
	}
	e.cache.InsertProduct(created)
	e.log.Info("product created", zap.Int64("id", created.ID), zap.String("sku", created.SKU))
	e.draft = ProductDraft{}
	return created, nil
}

// Delete removes a product server-side, then drops it from the cache.
func (e *ProductEditor) Delete(ctx context.Context, id int64) error {
	if err := e.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	e.cache.RemoveProduct(id)
	e.log.Info("product deleted", zap.Int64("id", id))
	return nil
}
