package entity

import "time"

// Roles de usuario por proyecto.
const (
	RoleManager  = "MANAGER"
	RoleHead     = "HEAD"
	RoleStaff    = "STAFF"
	RoleOperator = "OPERATOR"
)

// User representa un usuario de la aplicación atado a un proyecto.
type User struct {
	ID           int64
	FirstName    string
	MiddleName   *string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Role         string
	ProjectID    int64
	CreatedAt    time.Time
}

// FullName arma el nombre para mostrar (con segundo nombre si existe).
func (u *User) FullName() string {
	if u.MiddleName != nil && *u.MiddleName != "" {
		return u.FirstName + " " + *u.MiddleName + " " + u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// RefreshToken guarda el refresh token vigente de un usuario (uno activo por usuario;
// el anterior se invalida al reemitir).
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
}
