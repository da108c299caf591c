package models

// User roles. The dashboard dispatches on exactly these three values.
const (
	RoleBuyer  = "BUYER"
	RoleVendor = "VENDOR"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID       string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
