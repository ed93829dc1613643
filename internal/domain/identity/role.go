package identity

// Role is the access level attached to a credential. The server is
// authoritative: a registration may request Admin and be downgraded to User.
type Role string

const (
	RoleUser  Role = "User"
	RoleStaff Role = "Staff"
	RoleAdmin Role = "Admin"
)

// ParseRole maps a server-provided role string to a Role, defaulting to User
// for anything unrecognized.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStaff:
		return RoleStaff
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// CanManageProducts reports whether the role may view and edit products.
func (r Role) CanManageProducts() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanManageSuppliers reports whether the role may view and edit suppliers.
func (r Role) CanManageSuppliers() bool {
	return r == RoleAdmin
}

// CanListUsers reports whether the role may list registered users.
func (r Role) CanListUsers() bool {
	return r == RoleAdmin
}
