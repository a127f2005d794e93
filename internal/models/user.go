package models

// User is an account holding exactly one Role.
type User struct {
	BaseModel
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role" gorm:"type:varchar(20);not null;index"`
	Phone     string `json:"phone,omitempty"`
	Bio       string `json:"bio,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// FullName is "First Last", falling back to the username.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}
