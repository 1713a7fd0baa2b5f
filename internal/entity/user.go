package entity

type User struct {
	ID           uint64  `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-" db:"password"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         Role    `json:"role"`
	Department   *string `json:"department"`
}

// RegisterInput is the payload accepted by POST /api/register. Role is
// optional and defaults to employee.
type RegisterInput struct {
	Username   string  `json:"username" validate:"required,min=3"`
	Password   string  `json:"password" validate:"required,min=6"`
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Role       string  `json:"role" validate:"omitempty,oneof=employee manager admin"`
	Department *string `json:"department"`
}
