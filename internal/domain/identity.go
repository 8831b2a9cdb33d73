package domain

// Role is the closed set of role tags a route may require.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleBusiness Role = "BUSINESS"
	RoleUser     Role = "USER"
)

// Identity is the authenticated caller decoded from a verified token.
// It is immutable and passed explicitly from middleware to services.
type Identity struct {
	UserID     string
	IsAdmin    bool
	IsBusiness bool
}

// Role derives the caller's effective role from the two flags.
// Admin takes precedence; plain user means neither flag is set.
func (i Identity) Role() Role {
	switch {
	case i.IsAdmin:
		return RoleAdmin
	case i.IsBusiness:
		return RoleBusiness
	default:
		return RoleUser
	}
}

// Satisfies reports whether the identity meets the required role tag.
// Unknown role tags never match.
func (i Identity) Satisfies(required Role) bool {
	switch required {
	case RoleAdmin:
		return i.IsAdmin
	case RoleBusiness:
		return i.IsBusiness
	case RoleUser:
		return !i.IsAdmin && !i.IsBusiness
	default:
		return false
	}
}

// CanAccess reports whether the identity may act on a resource owned by
// ownerID. Admins may act on anything.
func (i Identity) CanAccess(ownerID string) bool {
	return i.IsAdmin || i.UserID == ownerID
}
