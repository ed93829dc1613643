package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/domain/inventory"
)

// ProductPayload is the create/update body for products. SupplierID marshals
// to null when no supplier is chosen; the field is always present.
type ProductPayload struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Stock        int    `json:"stock"`
	ReorderLevel int    `json:"reorder_level"`
	SupplierID   *int64 `json:"supplier_id"`
}

// SupplierPayload is the create/update body for suppliers.
type SupplierPayload struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// OrderPayload is the create body for orders.
type OrderPayload struct {
	OrderNumber string                `json:"order_number"`
	ProductID   int64                 `json:"product_id"`
	Quantity    int                   `json:"quantity"`
	Status      inventory.OrderStatus `json:"status"`
}

// ProfilePayload is the update body for the signed-in user's profile.
type ProfilePayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type credentialResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (r credentialResponse) credential(fallbackUsername string) identity.Credential {
	username := r.Username
	if username == "" {
		username = fallbackUsername
	}
	return identity.Credential{
		Token:    r.Token,
		Username: username,
		Role:     identity.ParseRole(r.Role),
	}
}

// Login exchanges username/password for a credential.
func (c *Client) Login(ctx context.Context, username, password string) (identity.Credential, error) {
	body := map[string]string{"username": username, "password": password}
	var resp credentialResponse
	if err := c.call(ctx, http.MethodPost, "/auth/login/", body, &resp); err != nil {
		return identity.Credential{}, err
	}
	return resp.credential(username), nil
}

// Register creates an account. The admin key is only sent when Admin is
// requested; the server may still downgrade the role.
func (c *Client) Register(ctx context.Context, username, password, email string, role identity.Role, adminKey string) (identity.Credential, error) {
	body := map[string]string{
		"username": username,
		"password": password,
		"email":    email,
		"role":     string(role),
	}
	if role == identity.RoleAdmin {
		body["admin_key"] = adminKey
	}
	var resp credentialResponse
	if err := c.call(ctx, http.MethodPost, "/auth/register/", body, &resp); err != nil {
		return identity.Credential{}, err
	}
	return resp.credential(username), nil
}

// Logout revokes the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/auth/logout/", nil, nil)
}

// GetProfile fetches the signed-in user's profile.
func (c *Client) GetProfile(ctx context.Context) (identity.Profile, error) {
	var p identity.Profile
	err := c.call(ctx, http.MethodGet, "/auth/profile/", nil, &p)
	return p, err
}

// UpdateProfile saves profile changes and returns the server's message.
func (c *Client) UpdateProfile(ctx context.Context, payload ProfilePayload) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, http.MethodPut, "/auth/profile/", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ChangePassword swaps the account password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, http.MethodPost, "/auth/change-password/", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListProducts fetches the full product collection.
func (c *Client) ListProducts(ctx context.Context) ([]inventory.Product, error) {
	var out []inventory.Product
	err := c.call(ctx, http.MethodGet, "/products/", nil, &out)
	return out, err
}

// CreateProduct creates a product and returns the canonical server copy.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (inventory.Product, error) {
	var out inventory.Product
	err := c.call(ctx, http.MethodPost, "/products/", payload, &out)
	return out, err
}

// UpdateProduct replaces a product and returns the canonical server copy.
func (c *Client) UpdateProduct(ctx context.Context, id int64, payload ProductPayload) (inventory.Product, error) {
	var out inventory.Product
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("/products/%d/", id), payload, &out)
	return out, err
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/", id), nil, nil)
}

// ListSuppliers fetches the full supplier collection.
func (c *Client) ListSuppliers(ctx context.Context) ([]inventory.Supplier, error) {
	var out []inventory.Supplier
	err := c.call(ctx, http.MethodGet, "/suppliers/", nil, &out)
	return out, err
}

// CreateSupplier creates a supplier and returns the canonical server copy.
func (c *Client) CreateSupplier(ctx context.Context, payload SupplierPayload) (inventory.Supplier, error) {
	var out inventory.Supplier
	err := c.call(ctx, http.MethodPost, "/suppliers/", payload, &out)
	return out, err
}

// UpdateSupplier replaces a supplier and returns the canonical server copy.
func (c *Client) UpdateSupplier(ctx context.Context, id int64, payload SupplierPayload) (inventory.Supplier, error) {
	var out inventory.Supplier
	err := c.call(ctx, http.MethodPut, fmt.Sprintf("/suppliers/%d/", id), payload, &out)
	return out, err
}

// ListOrders fetches the full order collection.
func (c *Client) ListOrders(ctx context.Context) ([]inventory.Order, error) {
	var out []inventory.Order
	err := c.call(ctx, http.MethodGet, "/orders/", nil, &out)
	return out, err
}

// CreateOrder creates an order and returns the canonical server copy.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (inventory.Order, error) {
	var out inventory.Order
	err := c.call(ctx, http.MethodPost, "/orders/", payload, &out)
	return out, err
}

// ListUsers fetches all accounts. Admin only; others receive ErrForbidden.
func (c *Client) ListUsers(ctx context.Context) ([]identity.User, error) {
	var out []identity.User
	err := c.call(ctx, http.MethodGet, "/users/", nil, &out)
	return out, err
}
