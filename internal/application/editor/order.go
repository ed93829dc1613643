package editor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
)

// OrderAPI is the slice of the gateway the order editor needs. Orders are
// create-only.
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload gateway.OrderPayload) (inventory.Order, error)
}

// OrderCache is the slice of the synchronizer the order editor needs.
type OrderCache interface {
	InsertOrder(inventory.Order)
}

// OrderDraft mirrors the order form.
type OrderDraft struct {
	OrderNumber string
	ProductID   string
	Quantity    string
	Status      inventory.OrderStatus
}

// emptyOrderDraft is the reset shape; new orders default to pending.
func emptyOrderDraft() OrderDraft {
	return OrderDraft{Status: inventory.OrderStatusPending}
}

// OrderEditor drives the add-order form.
type OrderEditor struct {
	api   OrderAPI
	cache OrderCache
	log   *zap.Logger
	draft OrderDraft
}

// NewOrderEditor creates an order editor.
func NewOrderEditor(api OrderAPI, cache OrderCache, log *zap.Logger) *OrderEditor {
	return &OrderEditor{api: api, cache: cache, log: log, draft: emptyOrderDraft()}
}

// Draft exposes the current draft for the form to mutate.
func (e *OrderEditor) Draft() *OrderDraft {
	return &e.draft
}

// Cancel resets the draft to its empty shape.
func (e *OrderEditor) Cancel() {
	e.draft = emptyOrderDraft()
}

// Submit validates, sends the draft, and prepends the created order to the
// cache (newest-first display). The draft survives any failure.
func (e *OrderEditor) Submit(ctx context.Context) (inventory.Order, error) {
	if e.draft.OrderNumber == "" || e.draft.ProductID == "" || e.draft.Quantity == "" {
		return inventory.Order{}, fmt.Errorf("%w: order number, product and quantity are required", shared.ErrValidation)
	}

	status := e.draft.Status
	if status == "" {
		status = inventory.OrderStatusPending
	}

	payload := gateway.OrderPayload{
		OrderNumber: e.draft.OrderNumber,
		ProductID:   int64(coerceInt(e.draft.ProductID)),
		Quantity:    coerceInt(e.draft.Quantity),
		Status:      status,
	}

	created, err := e.api.CreateOrder(ctx, payload)
	if err != nil {
		return inventory.Order{}, err
	}
	e.cache.InsertOrder(created)
	e.log.Info("order created", zap.Int64("id", created.ID), zap.String("order_number", created.OrderNumber))
	e.draft = emptyOrderDraft()
	return created, nil
}
