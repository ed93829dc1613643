package stubserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
)

type productRequest struct {
	Name         string `json:"name" binding:"required"`
	SKU          string `json:"sku" binding:"required"`
	Stock        int    `json:"stock" binding:"gte=0"`
	ReorderLevel int    `json:"reorder_level" binding:"gte=0"`
	SupplierID   *int64 `json:"supplier_id"`
}

type supplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type orderRequest struct {
	OrderNumber string `json:"order_number" binding:"required"`
	ProductID   int64  `json:"product_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gte=1"`
	Status      string `json:"status" binding:"omitempty,orderstatus"`
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return id, true
}

func (s *Server) handleListProducts(c *gin.Context) {
	s.store.mu.Lock()
	out := make([]inventory.Product, 0, len(s.store.products))
	for _, p := range s.store.products {
		out = append(out, s.store.renderProduct(p))
	}
	s.store.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if req.SupplierID != nil && s.store.supplierByID(*req.SupplierID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown supplier"})
		return
	}

	s.store.nextProductID++
	p := &productRecord{
		ID:           s.store.nextProductID,
		Name:         req.Name,
		SKU:          req.SKU,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		SupplierID:   req.SupplierID,
	}
	s.store.products = append(s.store.products, p)

	c.JSON(http.StatusCreated, s.store.renderProduct(p))
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p := s.store.productByID(id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if req.SupplierID != nil && s.store.supplierByID(*req.SupplierID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown supplier"})
		return
	}

	p.Name = req.Name
	p.SKU = req.SKU
	p.Stock = req.Stock
	p.ReorderLevel = req.ReorderLevel
	p.SupplierID = req.SupplierID

	c.JSON(http.StatusOK, s.store.renderProduct(p))
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.store.mu.Lock()
	kept := s.store.products[:0]
	for _, p := range s.store.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.store.products = kept
	s.store.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (s *Server) handleListSuppliers(c *gin.Context) {
	s.store.mu.Lock()
	out := make([]inventory.Supplier, len(s.store.suppliers))
	copy(out, s.store.suppliers)
	s.store.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	s.store.nextSupplierID++
	sup := inventory.Supplier{
		ID:      s.store.nextSupplierID,
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
	}
	s.store.suppliers = append(s.store.suppliers, sup)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, sup)
}

func (s *Server) handleUpdateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	sup := s.store.supplierByID(id)
	if sup == nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	sup.Name = req.Name
	sup.Contact = req.Contact
	sup.Email = req.Email

	c.JSON(http.StatusOK, *sup)
}

func (s *Server) handleListOrders(c *gin.Context) {
	s.store.mu.Lock()
	// Newest first, matching how the client displays orders.
	out := make([]inventory.Order, 0, len(s.store.orders))
	for i := len(s.store.orders) - 1; i >= 0; i-- {
		out = append(out, s.store.renderOrder(s.store.orders[i]))
	}
	s.store.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if s.store.productByID(req.ProductID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product"})
		return
	}

	status := inventory.OrderStatus(req.Status)
	if status == "" {
		status = inventory.OrderStatusPending
	}

	s.store.nextOrderID++
	o := &orderRecord{
		ID:          s.store.nextOrderID,
		OrderNumber: req.OrderNumber,
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	s.store.orders = append(s.store.orders, o)

	c.JSON(http.StatusCreated, s.store.renderOrder(o))
}
