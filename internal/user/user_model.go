package user

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Role      string `json:"role" binding:"required,role"`
	Phone     string `json:"phone" binding:"max=20"`
	Bio       string `json:"bio" binding:"max=1000"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
// Role and IsActive may only be changed by admins.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Bio       *string `json:"bio" binding:"omitempty,max=1000"`
	Role      *string `json:"role" binding:"omitempty,role"`
	IsActive  *bool   `json:"is_active"`
}
