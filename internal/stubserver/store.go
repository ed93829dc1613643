// Package stubserver is an in-memory implementation of the inventory REST
// API used by integration tests and local development. It mirrors the
// documented backend contract (plain JSON bodies, "Token <token>" auth,
// server-assigned ids, embedded related objects) but persists nothing.
package stubserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/domain/inventory"
)

type userRecord struct {
	ID         int64
	Username   string
	Email      string
	Hash       []byte
	Role       identity.Role
	FirstName  string
	LastName   string
	DateJoined time.Time
}

type productRecord struct {
	ID           int64
	Name         string
	SKU          string
	Stock        int
	ReorderLevel int
	SupplierID   *int64
}

type orderRecord struct {
	ID          int64
	OrderNumber string
	ProductID   int64
	Quantity    int
	Status      inventory.OrderStatus
	CreatedAt   time.Time
}

// Store holds all stub state behind one mutex. Ids are incrementing integers
// assigned at creation, like the real backend's database would.
type Store struct {
	mu       sync.Mutex
	adminKey string

	nextUserID     int64
	nextProductID  int64
	nextSupplierID int64
	nextOrderID    int64

	users     []*userRecord
	tokens    map[string]*userRecord
	products  []*productRecord
	suppliers []inventory.Supplier
	orders    []*orderRecord
}

// NewStore creates an empty stub store. adminKey is the value a registration
// must present to be granted the Admin role.
func NewStore(adminKey string) *Store {
	return &Store{
		adminKey: adminKey,
		tokens:   make(map[string]*userRecord),
	}
}

func (s *Store) findUser(username string) *userRecord {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// register creates an account, downgrading a requested Admin role to User
// when the admin key does not match. Returns nil when the username is taken.
func (s *Store) register(username, password, email, role, adminKey string) (*userRecord, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findUser(username) != nil {
		return nil, ""
	}

	granted := identity.ParseRole(role)
	if granted == identity.RoleAdmin && adminKey != s.adminKey {
		granted = identity.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ""
	}

	s.nextUserID++
	u := &userRecord{
		ID:         s.nextUserID,
		Username:   username,
		Email:      email,
		Hash:       hash,
		Role:       granted,
		DateJoined: time.Now().UTC(),
	}
	s.users = append(s.users, u)

	token := uuid.NewString()
	s.tokens[token] = u
	return u, token
}

// login verifies the password and mints a fresh token. Multiple tokens per
// user stay valid until logout, matching token-table semantics.
func (s *Store) login(username, password string) (*userRecord, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(username)
	if u == nil {
		return nil, ""
	}
	if bcrypt.CompareHashAndPassword(u.Hash, []byte(password)) != nil {
		return nil, ""
	}

	token := uuid.NewString()
	s.tokens[token] = u
	return u, token
}

// authenticate resolves a token to its user, nil when unknown.
func (s *Store) authenticate(token string) *userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

// revoke invalidates a token. Revoking an unknown token is a no-op.
func (s *Store) revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

func (s *Store) supplierByID(id int64) *inventory.Supplier {
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return &s.suppliers[i]
		}
	}
	return nil
}

func (s *Store) productByID(id int64) *productRecord {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// renderProduct builds the wire shape with both the bare supplier_id and the
// embedded supplier object, the denormalization the client treats as
// authoritative.
func (s *Store) renderProduct(p *productRecord) inventory.Product {
	out := inventory.Product{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Stock:        p.Stock,
		ReorderLevel: p.ReorderLevel,
		SupplierID:   p.SupplierID,
	}
	if p.SupplierID != nil {
		if sup := s.supplierByID(*p.SupplierID); sup != nil {
			cp := *sup
			out.Supplier = &cp
		}
	}
	return out
}

// renderOrder embeds the order's product.
func (s *Store) renderOrder(o *orderRecord) inventory.Order {
	out := inventory.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		ProductID:   o.ProductID,
		Quantity:    o.Quantity,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
	if p := s.productByID(o.ProductID); p != nil {
		rendered := s.renderProduct(p)
		out.Product = &rendered
	}
	return out
}
