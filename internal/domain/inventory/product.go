package inventory

// Product is an inventory item as returned by the server. Identity and all
// denormalized fields (such as the embedded supplier) are server-assigned;
// the client never fabricates ids and treats every instance as a cache entry.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Stock        int       `json:"stock"`
	ReorderLevel int       `json:"reorder_level"`
	SupplierID   *int64    `json:"supplier_id,omitempty"`
	Supplier     *Supplier `json:"supplier,omitempty"`
}

// EntityID returns the server-assigned id.
func (p Product) EntityID() int64 {
	return p.ID
}

// Low reports whether the product is at or below its reorder level.
func (p Product) Low() bool {
	return p.Stock <= p.ReorderLevel
}

// ResolveSupplierID returns the supplier reference regardless of whether it
// arrived as a bare supplier_id or embedded in a supplier object. Returns nil
// when the product has no supplier.
func (p Product) ResolveSupplierID() *int64 {
	if p.SupplierID != nil {
		return p.SupplierID
	}
	if p.Supplier != nil {
		id := p.Supplier.ID
		return &id
	}
	return nil
}

// SupplierName returns the embedded supplier's name, or "-" when the product
// has no supplier loaded.
func (p Product) SupplierName() string {
	if p.Supplier == nil {
		return "-"
	}
	return p.Supplier.Name
}
