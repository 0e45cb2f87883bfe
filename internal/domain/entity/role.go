package entity

// Role represents the dashboard a user is allowed to use
type Role int

const (
	RoleCustomer Role = iota
	RoleAdmin
)

// RoleNames constants
const (
	RoleNameAdmin    = "admin"
	RoleNameCustomer = "customer"
)

// RoleFromStaff maps the upstream staff flag to a role.
func RoleFromStaff(isStaff bool) Role {
	if isStaff {
		return RoleAdmin
	}
	return RoleCustomer
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return RoleNameAdmin
	case RoleCustomer:
		return RoleNameCustomer
	}
	return "unknown"
}

// HomePath returns the dashboard path of the role
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleCustomer:
		return "/user"
	}
	return "/"
}
