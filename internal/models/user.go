package models

// User is a staff or admin account. Users are read-only.
type User struct {
	ID         int        `json:"id" yaml:"id"`
	Email      string     `json:"email" yaml:"email"`
	Name       string     `json:"name" yaml:"name"`
	Role       UserRole   `json:"role" yaml:"role"`
	Department Department `json:"department" yaml:"department"`
}

// Staff identifies whoever is acting on the dashboard. Every caller is an
// already-authenticated administrator unless a token says otherwise.
type Staff struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

var DefaultStaff = Staff{
	ID:    "admin-1",
	Name:  "Municipal Administrator",
	Email: "admin@civiclink.gov",
	Role:  RoleAdmin,
}
