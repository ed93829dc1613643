package inventory

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the three known values.
// Unrecognized statuses are tolerated but excluded from aggregates.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a purchase order for a single product.
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"order_number"`
	ProductID   int64       `json:"product_id"`
	Product     *Product    `json:"product,omitempty"`
	Quantity    int         `json:"quantity"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EntityID returns the server-assigned id.
func (o Order) EntityID() int64 {
	return o.ID
}

// ProductName returns the embedded product's name, or "-" when the order's
// product is not loaded.
func (o Order) ProductName() string {
	if o.Product == nil {
		return "-"
	}
	return o.Product.Name
}
