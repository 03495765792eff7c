package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// AreaRepository define el puerto de persistencia para registros de área.
type AreaRepository interface {
	CreateBatch(records []*entity.Area) error
	// GetForUpdate bloquea la fila bajo el scope del usuario: una fila fuera de
	// su proyecto es indistinguible de una inexistente. Devuelve nil si no hay.
	GetForUpdate(scope domain.Scope, id int64) (*entity.Area, error)
	// AdjustQuantity suma delta (negativo para restar) a quantity.
	AdjustQuantity(id int64, delta decimal.Decimal) error

	Fetch(scope domain.Scope, limit int) ([]*view.AreaView, error)
	GetByID(scope domain.Scope, id int64) (*view.AreaView, error)
	Filter(scope domain.Scope, criteria view.AreaFilter) ([]*view.AreaView, error)
}
