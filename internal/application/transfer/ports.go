package transfer

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Warehouses repository.WarehouseRepository
	Stocks     repository.StockRepository
	Areas      repository.AreaRepository
	Logs       repository.MovementLogRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La conexión no vuelve al pool entre el
// bloqueo de filas y el commit/rollback: todo el ciclo
// bloquear -> validar -> mutar -> registrar ocurre sobre una sola transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// LogPolicy decide qué clases de movimiento escriben bitácora. Por defecto
// solo devoluciones y correcciones; Issue y Allocate se activan por
// configuración sin tocar el esquema.
type LogPolicy struct {
	Issue       bool
	Allocate    bool
	Returns     bool
	Corrections bool
}

// DefaultLogPolicy registra solo devoluciones y correcciones.
func DefaultLogPolicy() LogPolicy {
	return LogPolicy{Returns: true, Corrections: true}
}

// FullLogPolicy registra los cuatro tipos de movimiento.
func FullLogPolicy() LogPolicy {
	return LogPolicy{Issue: true, Allocate: true, Returns: true, Corrections: true}
}
