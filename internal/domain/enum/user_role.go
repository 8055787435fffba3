package enum

// UserRole is carried in access tokens.
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleResident UserRole = "RESIDENT"
)

func (r UserRole) String() string {
	return string(r)
}
