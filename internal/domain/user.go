package domain

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleServeur   Role = "serveur"
	RoleCuisinier Role = "cuisinier"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleServeur, RoleCuisinier:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
