package entity

// User represents the authenticated account as returned by the booking API
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// Role returns the dashboard role derived from the staff flag
func (u User) Role() Role {
	return RoleFromStaff(u.IsStaff)
}

// DisplayName returns the full name, falling back to the username
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Korisnik"
}

// DisplayEmail returns the email or a placeholder
func (u User) DisplayEmail() string {
	if u.Email != "" {
		return u.Email
	}
	return "Nema email adrese"
}

// Registration holds the data required to create an account upstream
type Registration struct {
	FullName string
	Email    string
	Password string
	IsOwner  bool
}

// Credentials holds login data
type Credentials struct {
	Email    string
	Password string
}

// AuthResult is the outcome of a successful login or registration
type AuthResult struct {
	Token string
	User  User
}
