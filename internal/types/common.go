package types

// HTTP header constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication constants
const (
	BearerPrefix = "Bearer "
)

// System roles
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserCtxName is the fiber.Ctx Locals key where the authenticated
// UserContext is stored by the auth middleware.
const UserCtxName = "user"

// UserContext carries the identity of the authenticated caller as decoded
// from the JWT claims. Routes without auth middleware have no Locals entry;
// a zero UserContext never reaches a gated handler.
type UserContext struct {
	Username string
	IsAdmin  bool
}

// SystemRole returns the caller's role name.
func (u UserContext) SystemRole() string {
	if u.IsAdmin {
		return AdminRole
	}
	return UserRole
}
