package datasync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
)

// Lister is the slice of the gateway the synchronizer needs for bulk loads.
type Lister interface {
	ListProducts(ctx context.Context) ([]inventory.Product, error)
	ListSuppliers(ctx context.Context) ([]inventory.Supplier, error)
	ListOrders(ctx context.Context) ([]inventory.Order, error)
}

// SessionEnder tears the session down when the backend signals expiry.
type SessionEnder interface {
	Clear()
}

// Snapshot is a point-in-time copy of all three collections.
type Snapshot struct {
	Products  []inventory.Product
	Suppliers []inventory.Supplier
	Orders    []inventory.Order
}

// Synchronizer maintains the product, supplier and order caches. Reloads are
// all-or-nothing: no partial batch is ever committed. A 401 from any fetch
// ends the session and empties every collection.
type Synchronizer struct {
	api     Lister
	session SessionEnder
	log     *zap.Logger

	// seq stamps each reload so a slow batch that was overtaken by a newer
	// one is discarded instead of overwriting fresher state.
	seq atomic.Uint64

	mu        sync.RWMutex
	products  Collection[inventory.Product]
	suppliers Collection[inventory.Supplier]
	orders    Collection[inventory.Order]
}

// NewSynchronizer creates a synchronizer over the given gateway and session.
func NewSynchronizer(api Lister, session SessionEnder, log *zap.Logger) *Synchronizer {
	return &Synchronizer{
		api:     api,
		session: session,
		log:     log,
	}
}

// ReloadAll fetches all three collections in parallel and commits them as a
// single transition. Failure of any fetch leaves the existing collections
// untouched, except that a 401 from any response clears all three and ends
// the session. A batch that is no longer the latest issued is discarded.
func (s *Synchronizer) ReloadAll(ctx context.Context) error {
	seq := s.seq.Add(1)

	var (
		wg        sync.WaitGroup
		products  []inventory.Product
		suppliers []inventory.Supplier
		orders    []inventory.Order
		pErr      error
		sErr      error
		oErr      error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		products, pErr = s.api.ListProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		suppliers, sErr = s.api.ListSuppliers(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, oErr = s.api.ListOrders(ctx)
	}()
	wg.Wait()

	// A single 401 invalidates the whole batch regardless of the other two
	// statuses: session teardown, not a partial update. A stale batch gets no
	// say either way; its 401 belongs to a token a newer reload has replaced.
	for _, err := range []error{pErr, sErr, oErr} {
		if errors.Is(err, shared.ErrUnauthorized) {
			if seq != s.seq.Load() {
				s.log.Debug("discarding stale unauthorized batch", zap.Uint64("seq", seq))
				return nil
			}
			s.log.Warn("session expired during reload")
			s.Reset()
			s.session.Clear()
			return shared.ErrUnauthorized
		}
	}
	for _, err := range []error{pErr, sErr, oErr} {
		if err != nil {
			s.log.Warn("bulk reload failed, keeping previous collections", zap.Error(err))
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq.Load() {
		s.log.Debug("discarding stale reload batch", zap.Uint64("seq", seq))
		return nil
	}

	s.products.Replace(products)
	s.suppliers.Replace(suppliers)
	s.orders.Replace(orders)
	s.log.Info("collections reloaded",
		zap.Int("products", len(products)),
		zap.Int("suppliers", len(suppliers)),
		zap.Int("orders", len(orders)),
	)
	return nil
}

// Reset empties all collections, used on logout and session expiry.
func (s *Synchronizer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Clear()
	s.suppliers.Clear()
	s.orders.Clear()
}

// InsertProduct appends a freshly created product.
func (s *Synchronizer) InsertProduct(p inventory.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Append(p)
}

// ApplyProductUpdate replaces the cached product with the server's copy.
func (s *Synchronizer) ApplyProductUpdate(p inventory.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.products.Update(p) {
		s.log.Debug("update for uncached product ignored", zap.Int64("id", p.ID))
	}
}

// RemoveProduct drops a product from the cache. Idempotent.
func (s *Synchronizer) RemoveProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.Remove(id)
}

// InsertSupplier appends a freshly created supplier.
func (s *Synchronizer) InsertSupplier(sup inventory.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers.Append(sup)
}

// ApplySupplierUpdate replaces the cached supplier with the server's copy.
func (s *Synchronizer) ApplySupplierUpdate(sup inventory.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.suppliers.Update(sup) {
		s.log.Debug("update for uncached supplier ignored", zap.Int64("id", sup.ID))
	}
}

// InsertOrder prepends a freshly created order (newest-first display).
func (s *Synchronizer) InsertOrder(o inventory.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.Prepend(o)
}

// Snapshot returns a copy of all three collections.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products:  s.products.Items(),
		Suppliers: s.suppliers.Items(),
		Orders:    s.orders.Items(),
	}
}
