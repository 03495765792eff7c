package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementLogRepository define el puerto de la bitácora de movimientos.
// Solo escritura: el núcleo nunca lee los logs, son rastro de auditoría.
type MovementLogRepository interface {
	InsertWarehouseLog(log *entity.WarehouseMovementLog) error
	InsertStockLog(log *entity.StockMovementLog) error
	InsertAreaLog(log *entity.AreaMovementLog) error
}
