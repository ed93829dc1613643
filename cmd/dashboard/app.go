package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/inventorypro/dashboard/internal/application/datasync"
	"github.com/inventorypro/dashboard/internal/application/editor"
	"github.com/inventorypro/dashboard/internal/application/session"
	"github.com/inventorypro/dashboard/internal/application/view"
	"github.com/inventorypro/dashboard/internal/domain/identity"
	"github.com/inventorypro/dashboard/internal/domain/inventory"
	"github.com/inventorypro/dashboard/internal/domain/shared"
	"github.com/inventorypro/dashboard/internal/infrastructure/gateway"
	"github.com/inventorypro/dashboard/internal/interfaces/term"
)

// app is the interactive shell. It subscribes to the session store so the
// caches load on login (including restore) and empty on logout.
type app struct {
	log      *zap.Logger
	session  *session.Store
	flow     *session.Flow
	api      *gateway.Client
	sync     *datasync.Synchronizer
	products *editor.ProductEditor
	supplier *editor.SupplierEditor
	orders   *editor.OrderEditor
	banner   term.Banner
	out      io.Writer
	in       io.Reader
	scanner  *bufio.Scanner
}

// OnLogin implements session.Observer: a fresh credential triggers a full
// collection reload.
func (a *app) OnLogin(cred identity.Credential) {
	if err := a.sync.ReloadAll(context.Background()); err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s).\n", cred.Username, cred.Role)
}

// OnLogout implements session.Observer: the caches do not survive the session.
func (a *app) OnLogout() {
	a.sync.Reset()
	fmt.Fprintln(a.out, "Signed out.")
}

func (a *app) run() {
	a.scanner = bufio.NewScanner(a.in)
	fmt.Fprintln(a.out, "InventoryPro dashboard. Type 'help' for commands.")

	for {
		if msg := a.banner.Current(); msg != "" {
			fmt.Fprintf(a.out, "! %s\n", msg)
		}
		fmt.Fprintf(a.out, "%s> ", a.promptName())
		line, ok := a.readLine()
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		a.dispatch(fields)
	}
}

func (a *app) promptName() string {
	if cred := a.session.Credential(); cred.IsAuthenticated() {
		return cred.Username
	}
	return "guest"
}

func (a *app) readLine() (string, bool) {
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

// ask prompts for one form field and returns what the user typed.
func (a *app) ask(label string) string {
	fmt.Fprintf(a.out, "  %s: ", label)
	line, _ := a.readLine()
	return line
}

func (a *app) dispatch(fields []string) {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		a.cmdLogin()
	case "register":
		a.cmdRegister()
	case "logout":
		a.flow.Logout(context.Background())
		a.banner.Clear()
	case "reload":
		a.authed(func(ctx context.Context) error { return a.sync.ReloadAll(ctx) })
	case "overview":
		a.cmdOverview()
	case "products":
		a.cmdProducts(args)
	case "product":
		a.cmdProduct(args)
	case "suppliers":
		a.cmdSuppliers()
	case "supplier":
		a.cmdSupplier(args)
	case "orders":
		a.cmdOrders()
	case "order":
		a.cmdOrder(args)
	case "profile":
		a.cmdProfile(args)
	case "passwd":
		a.cmdPasswd()
	case "users":
		a.cmdUsers()
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (a *app) printHelp() {
	fmt.Fprint(a.out, `Commands:
  login, register, logout        manage the session
  overview                       totals, low stock, order status
  products [find <query>]        list products
  product add|edit <id>|del <id> manage products (Staff/Admin)
  suppliers, supplier add|edit   manage suppliers (Admin)
  orders, order add              list and create orders
  profile [edit], passwd         account settings
  users                          list accounts (Admin)
  reload                         refetch all collections
  quit
`)
}

// authed runs fn only when signed in, funneling any failure into the banner.
func (a *app) authed(fn func(ctx context.Context) error) {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	if err := fn(context.Background()); err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
}

// report converts an error into the single transient banner message. The
// latest failure wins; nothing stacks.
func (a *app) report(err error) {
	switch {
	case errors.Is(err, shared.ErrUnauthorized):
		a.banner.Fail("Session expired. Please log in again.")
	case errors.Is(err, shared.ErrForbidden):
		a.banner.Fail("You do not have permission to do that.")
	case errors.Is(err, shared.ErrUnavailable):
		a.banner.Fail("Server unavailable. Check your connection and try again.")
	default:
		a.banner.Fail(err.Error())
	}
	a.log.Debug("command failed", zap.Error(err))
}

func (a *app) cmdLogin() {
	username := a.ask("username")
	password := a.ask("password")
	if err := a.flow.Login(context.Background(), username, password); err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
}

func (a *app) cmdRegister() {
	username := a.ask("username")
	password := a.ask("password")
	email := a.ask("email")
	role := roleFromInput(a.ask("role (user/staff/admin)"))

	var adminKey string
	if role == identity.RoleAdmin {
		adminKey = a.ask("admin key")
	}

	warning, err := a.flow.Register(context.Background(), username, password, email, role, adminKey)
	if err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
	if warning != "" {
		fmt.Fprintln(a.out, warning)
	}
}

func (a *app) cmdOverview() {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	snap := a.sync.Snapshot()
	stats := view.Compute(snap.Products, snap.Suppliers, snap.Orders)
	term.WriteOverview(a.out, snap.Products, stats, len(snap.Orders))

	if recent := view.Head(snap.Orders, 5); len(recent) > 0 {
		fmt.Fprintln(a.out, "\nRecent Orders")
		term.WriteOrders(a.out, recent)
	}
	term.WriteRecentActivity(a.out, snap.Products, snap.Suppliers, 5)
}

func (a *app) cmdProducts(args []string) {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	products := a.sync.Snapshot().Products
	if len(args) >= 2 && args[0] == "find" {
		products = view.FilterProducts(products, strings.Join(args[1:], " "))
	}
	term.WriteProducts(a.out, products)
}

func (a *app) cmdProduct(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: product add | product edit <id> | product del <id>")
		return
	}
	if !a.session.Credential().Role.CanManageProducts() {
		a.banner.Fail("Managing products requires the Staff or Admin role.")
		return
	}

	switch args[0] {
	case "add":
		a.fillProductDraft()
		a.authed(func(ctx context.Context) error {
			_, err := a.products.Submit(ctx)
			return err
		})
	case "edit":
		id, err := parseID(args[1:])
		if err != nil {
			a.report(err)
			return
		}
		p, ok := a.findProduct(id)
		if !ok {
			a.banner.Fail(fmt.Sprintf("No product with id %d in the current list.", id))
			return
		}
		a.products.BeginEdit(p)
		a.fillProductDraft()
		a.authed(func(ctx context.Context) error {
			_, err := a.products.Submit(ctx)
			return err
		})
	case "del":
		id, err := parseID(args[1:])
		if err != nil {
			a.report(err)
			return
		}
		a.authed(func(ctx context.Context) error {
			return a.products.Delete(ctx, id)
		})
	default:
		fmt.Fprintln(a.out, "Usage: product add | product edit <id> | product del <id>")
	}
}

// fillProductDraft prompts for each form field. Enter keeps the pre-filled
// value when editing.
func (a *app) fillProductDraft() {
	d := a.products.Draft()
	d.Name = orKeep(a.ask(labelWith("name", d.Name)), d.Name)
	d.SKU = orKeep(a.ask(labelWith("sku", d.SKU)), d.SKU)
	d.Stock = orKeep(a.ask(labelWith("stock", d.Stock)), d.Stock)
	d.ReorderLevel = orKeep(a.ask(labelWith("reorder level", d.ReorderLevel)), d.ReorderLevel)
	d.SupplierID = orKeep(a.ask(labelWith("supplier id (blank for none)", d.SupplierID)), d.SupplierID)
}

func (a *app) cmdSuppliers() {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	term.WriteSuppliers(a.out, a.sync.Snapshot().Suppliers)
}

func (a *app) cmdSupplier(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: supplier add | supplier edit <id>")
		return
	}
	if !a.session.Credential().Role.CanManageSuppliers() {
		a.banner.Fail("Managing suppliers requires the Admin role.")
		return
	}

	switch args[0] {
	case "add":
		a.fillSupplierDraft()
		a.authed(func(ctx context.Context) error {
			_, err := a.supplier.Submit(ctx)
			return err
		})
	case "edit":
		id, err := parseID(args[1:])
		if err != nil {
			a.report(err)
			return
		}
		sup, ok := a.findSupplier(id)
		if !ok {
			a.banner.Fail(fmt.Sprintf("No supplier with id %d in the current list.", id))
			return
		}
		a.supplier.BeginEdit(sup)
		a.fillSupplierDraft()
		a.authed(func(ctx context.Context) error {
			_, err := a.supplier.Submit(ctx)
			return err
		})
	default:
		fmt.Fprintln(a.out, "Usage: supplier add | supplier edit <id>")
	}
}

func (a *app) fillSupplierDraft() {
	d := a.supplier.Draft()
	d.Name = orKeep(a.ask(labelWith("name", d.Name)), d.Name)
	d.Contact = orKeep(a.ask(labelWith("contact", d.Contact)), d.Contact)
	d.Email = orKeep(a.ask(labelWith("email", d.Email)), d.Email)
}

func (a *app) cmdOrders() {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	term.WriteOrders(a.out, a.sync.Snapshot().Orders)
}

func (a *app) cmdOrder(args []string) {
	if len(args) == 0 || args[0] != "add" {
		fmt.Fprintln(a.out, "Usage: order add")
		return
	}
	d := a.orders.Draft()
	d.OrderNumber = a.ask("order number")
	d.ProductID = a.ask("product id")
	d.Quantity = a.ask("quantity")
	a.authed(func(ctx context.Context) error {
		_, err := a.orders.Submit(ctx)
		return err
	})
}

func (a *app) cmdProfile(args []string) {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	ctx := context.Background()

	profile, err := a.api.GetProfile(ctx)
	if err != nil {
		a.report(err)
		return
	}

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Username:   %s\n", profile.Username)
		fmt.Fprintf(a.out, "Email:      %s\n", profile.Email)
		fmt.Fprintf(a.out, "First name: %s\n", profile.FirstName)
		fmt.Fprintf(a.out, "Last name:  %s\n", profile.LastName)
		a.banner.Clear()
		return
	}
	if args[0] != "edit" {
		fmt.Fprintln(a.out, "Usage: profile [edit]")
		return
	}

	payload := gateway.ProfilePayload{
		Email:     orKeep(a.ask(labelWith("email", profile.Email)), profile.Email),
		FirstName: orKeep(a.ask(labelWith("first name", profile.FirstName)), profile.FirstName),
		LastName:  orKeep(a.ask(labelWith("last name", profile.LastName)), profile.LastName),
	}
	message, err := a.api.UpdateProfile(ctx, payload)
	if err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
	fmt.Fprintln(a.out, message)
}

func (a *app) cmdPasswd() {
	if !a.session.IsAuthenticated() {
		a.banner.Fail("Please log in first.")
		return
	}
	oldPassword := a.ask("current password")
	newPassword := a.ask("new password")
	message, err := a.api.ChangePassword(context.Background(), oldPassword, newPassword)
	if err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
	fmt.Fprintln(a.out, message)
}

func (a *app) cmdUsers() {
	if !a.session.Credential().Role.CanListUsers() {
		a.banner.Fail("Listing users requires the Admin role.")
		return
	}
	users, err := a.api.ListUsers(context.Background())
	if err != nil {
		a.report(err)
		return
	}
	a.banner.Clear()
	term.WriteUsers(a.out, users)
}

func (a *app) findProduct(id int64) (inventory.Product, bool) {
	for _, p := range a.sync.Snapshot().Products {
		if p.ID == id {
			return p, true
		}
	}
	return inventory.Product{}, false
}

func (a *app) findSupplier(id int64) (inventory.Supplier, bool) {
	for _, s := range a.sync.Snapshot().Suppliers {
		if s.ID == id {
			return s, true
		}
	}
	return inventory.Supplier{}, false
}

// roleFromInput maps what the user typed onto the server's role values.
func roleFromInput(s string) identity.Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "staff":
		return identity.RoleStaff
	case "admin":
		return identity.RoleAdmin
	default:
		return identity.RoleUser
	}
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: an id is required", shared.ErrValidation)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid id", shared.ErrValidation, args[0])
	}
	return id, nil
}

// labelWith shows the current value in the prompt so Enter can keep it.
func labelWith(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}

// orKeep keeps the current value when the user just pressed Enter.
func orKeep(entered, current string) string {
	if entered == "" {
		return current
	}
	return entered
}
