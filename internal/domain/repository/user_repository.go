package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste el usuario y asigna su ID.
	Create(user *entity.User) error
	// FindByEmail devuelve nil si no existe.
	FindByEmail(email string) (*entity.User, error)
	// GetByID devuelve nil si no existe.
	GetByID(id int64) (*entity.User, error)
	EmailExists(email string) (bool, error)
}

// TokenRepository guarda el refresh token vigente (uno activo por usuario).
type TokenRepository interface {
	Find(userID int64) (*entity.RefreshToken, error)
	// Replace invalida el token anterior del usuario y guarda el nuevo.
	Replace(userID int64, token string) error
}
