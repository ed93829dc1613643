// Package view derives aggregate state from the current collections. All
// functions are pure and recomputed on every render; nothing here has a
// lifecycle of its own.
package view

import (
	"strings"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
)

// OrderCounts partitions orders by status. Unrecognized statuses are
// excluded from all three buckets.
type OrderCounts struct {
	Pending   int
	Completed int
	Cancelled int
}

// Stats is the overview summary derived from a snapshot.
type Stats struct {
	TotalProducts  int
	TotalSuppliers int
	TotalStockQty  int
	LowStockCount  int
	Orders         OrderCounts
}

// Compute derives the full overview summary.
func Compute(products []inventory.Product, suppliers []inventory.Supplier, orders []inventory.Order) Stats {
	return Stats{
		TotalProducts:  len(products),
		TotalSuppliers: len(suppliers),
		TotalStockQty:  TotalStockQty(products),
		LowStockCount:  LowStockCount(products),
		Orders:         CountOrders(orders),
	}
}

// TotalStockQty sums stock over all products.
func TotalStockQty(products []inventory.Product) int {
	total := 0
	for _, p := range products {
		total += p.Stock
	}
	return total
}

// LowStockCount counts products at or below their reorder level.
func LowStockCount(products []inventory.Product) int {
	count := 0
	for _, p := range products {
		if p.Low() {
			count++
		}
	}
	return count
}

// StockHealth splits products into ok/low partitions for the status chart.
func StockHealth(products []inventory.Product) (ok, low int) {
	for _, p := range products {
		if p.Low() {
			low++
		} else {
			ok++
		}
	}
	return ok, low
}

// CountOrders partitions orders by exact status match.
func CountOrders(orders []inventory.Order) OrderCounts {
	var c OrderCounts
	for _, o := range orders {
		switch o.Status {
		case inventory.OrderStatusPending:
			c.Pending++
		case inventory.OrderStatusCompleted:
			c.Completed++
		case inventory.OrderStatusCancelled:
			c.Cancelled++
		}
	}
	return c
}

// FilterProducts returns products whose name or SKU contains the query,
// case-insensitively. An empty query matches everything.
func FilterProducts(products []inventory.Product, query string) []inventory.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]inventory.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}

// StockPoint is one bar of the stock-per-product chart feed.
type StockPoint struct {
	Name  string
	Stock int
}

// StockPerProduct builds the chart feed of per-product stock levels.
// Rendering is the caller's concern.
func StockPerProduct(products []inventory.Product) []StockPoint {
	out := make([]StockPoint, 0, len(products))
	for _, p := range products {
		out = append(out, StockPoint{Name: p.Name, Stock: p.Stock})
	}
	return out
}
