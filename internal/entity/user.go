package entity

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleGuest UserRole = "GUEST"
)

// AdminLoginData is what the token middleware stores in the request locals
// after verifying the edit-capability token. It is a capability marker, not an
// identity: the system has a single shared admin credential.
type AdminLoginData struct {
	Role     UserRole
	IssuedAt int64
}
