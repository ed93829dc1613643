package term

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inventorypro/dashboard/internal/application/view"
	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/domain/inventory"
)

// WriteProducts renders the product table with the derived low-stock badge.
func WriteProducts(w io.Writer, products []inventory.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSKU\tSTOCK\tREORDER\tSUPPLIER\tSTATUS")
	for _, p := range products {
		status := "OK"
		if p.Low() {
			status = "Low"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			p.ID, p.Name, p.SKU, p.Stock, p.ReorderLevel, p.SupplierName(), status)
	}
	_ = tw.Flush()
}

// WriteSuppliers renders the supplier table.
func WriteSuppliers(w io.Writer, suppliers []inventory.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(w, "No suppliers yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCONTACT\tEMAIL")
	for _, s := range suppliers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Contact, s.Email)
	}
	_ = tw.Flush()
}

// WriteOrders renders the order table.
func WriteOrders(w io.Writer, orders []inventory.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER #\tPRODUCT\tQTY\tSTATUS\tCREATED")
	for _, o := range orders {
		created := "-"
		if !o.CreatedAt.IsZero() {
			created = o.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			o.OrderNumber, o.ProductName(), o.Quantity, o.Status, created)
	}
	_ = tw.Flush()
}

// WriteUsers renders the admin-only user table.
func WriteUsers(w io.Writer, users []identity.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tEMAIL\tROLE\tJOINED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			u.Username, u.Email, u.Role, u.DateJoined.Local().Format("2006-01-02"))
	}
	_ = tw.Flush()
}

// WriteOverview renders the summary cards and chart feeds as text.
func WriteOverview(w io.Writer, snapshotProducts []inventory.Product, stats view.Stats, totalOrders int) {
	fmt.Fprintf(w, "Total Products:  %d\n", stats.TotalProducts)
	fmt.Fprintf(w, "Total Stock Qty: %d\n", stats.TotalStockQty)
	fmt.Fprintf(w, "Low Stock Items: %d\n", stats.LowStockCount)
	fmt.Fprintf(w, "Suppliers:       %d\n", stats.TotalSuppliers)
	ok, low := view.StockHealth(snapshotProducts)
	fmt.Fprintf(w, "Stock Health:    %d ok / %d low\n", ok, low)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Orders: %d total (pending %d, completed %d, cancelled %d)\n",
		totalOrders, stats.Orders.Pending, stats.Orders.Completed, stats.Orders.Cancelled)

	if len(snapshotProducts) == 0 {
		fmt.Fprintln(w, "\nNo product data yet.")
		return
	}

	fmt.Fprintln(w, "\nStock per Product")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, pt := range view.StockPerProduct(snapshotProducts) {
		fmt.Fprintf(tw, "  %s\t%s (%d)\n", pt.Name, bar(pt.Stock), pt.Stock)
	}
	_ = tw.Flush()
}

// WriteRecentActivity renders the newest products and suppliers. Both caches
// append on insert, so recency is read from the tail.
func WriteRecentActivity(w io.Writer, products []inventory.Product, suppliers []inventory.Supplier, n int) {
	if recent := view.Recent(products, n); len(recent) > 0 {
		fmt.Fprintln(w, "\nRecently Added Products")
		WriteProducts(w, recent)
	}
	if recent := view.Recent(suppliers, n); len(recent) > 0 {
		fmt.Fprintln(w, "\nRecently Added Suppliers")
		WriteSuppliers(w, recent)
	}
}

// bar draws a crude horizontal bar, capped so long stocks stay readable.
func bar(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 40 {
		n = 40
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = '#'
	}
	return string(out)
}
