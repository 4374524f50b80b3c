package handler

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpwd"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changeRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=USER ADMIN SUPER"`
}

// updateUserRequest carries partial profile updates: nil fields are left
// untouched.
type updateUserRequest struct {
	Password *string `json:"password,omitempty" validate:"omitempty,strongpwd"`
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// userSummary is the list-item shape; the password hash is never exposed.
type userSummary struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type userDetail struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
