package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo refresh tokens: una fila vigente por usuario.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Find devuelve el refresh vigente del usuario, o nil si no hay.
func (r *TokenRepo) Find(userID int64) (*entity.RefreshToken, error) {
	query := `SELECT id, user_id, token, created_at FROM tokens WHERE user_id = $1`
	var t entity.RefreshToken
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&t.ID, &t.UserID, &t.Token, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	return &t, nil
}

// Replace invalida el token anterior del usuario y guarda el nuevo (upsert
// sobre user_id: iniciar sesión de nuevo revoca el refresh previo).
func (r *TokenRepo) Replace(userID int64, token string) error {
	query := `
		INSERT INTO tokens (user_id, token, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET token = EXCLUDED.token, created_at = now()`
	if _, err := r.q.Exec(context.Background(), query, userID, token); err != nil {
		return fmt.Errorf("replace token: %w", err)
	}
	return nil
}
