package models

// RoleAdmin is the only role the service distinguishes.
const RoleAdmin = "admin"

// User represents a registered customer or administrator.
type User struct {
	ID       ID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Email    string `bson:"email" json:"email"`
	PhotoURL string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Password string `bson:"password,omitempty" json:"-"`
	Role     string `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserRequest is the sign-in payload posted by the client.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
	Password string `json:"password,omitempty"`
}

// AdminStatus answers GET /users/admin/{email}.
type AdminStatus struct {
	Admin bool `json:"admin"`
}
