package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Low_Boundary(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		reorder int
		want    bool
	}{
		{"above reorder level", 10, 5, false},
		{"exactly at reorder level", 5, 5, true},
		{"below reorder level", 4, 5, true},
		{"zero stock zero reorder", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock, ReorderLevel: tt.reorder}
			assert.Equal(t, tt.want, p.Low())
		})
	}
}

func TestProduct_ResolveSupplierID_PrefersBareField(t *testing.T) {
	id := int64(7)
	p := Product{
		SupplierID: &id,
		Supplier:   &Supplier{ID: 99},
	}

	got := p.ResolveSupplierID()
	assert.NotNil(t, got)
	assert.Equal(t, int64(7), *got)
}

func TestProduct_ResolveSupplierID_FallsBackToEmbedded(t *testing.T) {
	p := Product{Supplier: &Supplier{ID: 99}}

	got := p.ResolveSupplierID()
	assert.NotNil(t, got)
	assert.Equal(t, int64(99), *got)
}

func TestProduct_ResolveSupplierID_NilWhenAbsent(t *testing.T) {
	p := Product{}
	assert.Nil(t, p.ResolveSupplierID())
}

func TestProduct_SupplierName(t *testing.T) {
	assert.Equal(t, "-", Product{}.SupplierName())
	assert.Equal(t, "Acme", Product{Supplier: &Supplier{Name: "Acme"}}.SupplierName())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCompleted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrder_ProductName(t *testing.T) {
	assert.Equal(t, "-", Order{}.ProductName())
	o := Order{Product: &Product{Name: "Widget"}}
	assert.Equal(t, "Widget", o.ProductName())
}
