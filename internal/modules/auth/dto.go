package auth

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,excludesall=0x20"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountPublic is what handlers expose about an account; the password
// hash never leaves the service.
type AccountPublic struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerid"`
}
