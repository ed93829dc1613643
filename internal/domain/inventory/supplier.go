package inventory

// Supplier is a vendor record. Products reference suppliers through a weak
// supplier_id link; suppliers do not own products.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// EntityID returns the server-assigned id.
func (s Supplier) EntityID() int64 {
	return s.ID
}
