package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementLogRepository = (*MovementLogRepo)(nil)

// MovementLogRepo bitácora de movimientos, solo escritura. Las filas de una
// misma operación comparten transaction_id.
type MovementLogRepo struct {
	q Querier
}

// NewMovementLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementLogRepository(q Querier) *MovementLogRepo {
	return &MovementLogRepo{q: q}
}

// InsertWarehouseLog registra una corrección de cantidad de almacén.
func (r *MovementLogRepo) InsertWarehouseLog(log *entity.WarehouseMovementLog) error {
	query := `
		INSERT INTO log_warehouse_movement (transaction_id, movement_type,
		    old_quantity, old_left_over, new_quantity, new_left_over,
		    warehouse_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.TransactionID, log.MovementType,
		log.OldQuantity, log.OldLeftOver, log.NewQuantity, log.NewLeftOver,
		log.WarehouseID, log.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse movement log: %w", err)
	}
	return nil
}

// InsertStockLog registra un movimiento sobre un lote de stock.
func (r *MovementLogRepo) InsertStockLog(log *entity.StockMovementLog) error {
	query := `
		INSERT INTO log_stock_movement (transaction_id, movement_type,
		    old_quantity, old_left_over, return_quantity, new_left_over,
		    stock_id, warehouse_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		log.TransactionID, log.MovementType,
		log.OldQuantity, log.OldLeftOver, log.ReturnQuantity, log.NewLeftOver,
		log.StockID, log.WarehouseID, log.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement log: %w", err)
	}
	return nil
}

// InsertAreaLog registra un movimiento sobre un registro de área.
func (r *MovementLogRepo) InsertAreaLog(log *entity.AreaMovementLog) error {
	query := `
		INSERT INTO log_area_movement (transaction_id, movement_type,
		    old_quantity, return_quantity, area_id, stock_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.TransactionID, log.MovementType,
		log.OldQuantity, log.ReturnQuantity, log.AreaID, log.StockID, log.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("insert area movement log: %w", err)
	}
	return nil
}
