package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento registrados en los logs. Etiquetas libres, no un enum de
// base de datos: los valores nuevos no requieren migración.
const (
	MovementReturnToWarehouse = "return to warehouse"
	MovementReturnToStock     = "return to stock"
	MovementUpdateQty         = "update quantity"
	MovementIssueToStock      = "issue to stock"
	MovementProvideToArea     = "provide to area"
)

// WarehouseMovementLog registra una corrección de cantidad (o emisión) sobre un
// lote de almacén: par viejo/nuevo de qty y left_over. Solo inserción, nunca
// se actualiza ni borra.
type WarehouseMovementLog struct {
	ID            int64
	TransactionID string
	MovementType  string
	OldQuantity   decimal.Decimal
	OldLeftOver   decimal.Decimal
	NewQuantity   decimal.Decimal
	NewLeftOver   decimal.Decimal
	WarehouseID   int64
	CreatedByID   int64
	CreatedAt     time.Time
}

// StockMovementLog registra un movimiento sobre un lote de stock
// (devolución a almacén o emisión desde almacén).
type StockMovementLog struct {
	ID             int64
	TransactionID  string
	MovementType   string
	OldQuantity    decimal.Decimal
	OldLeftOver    decimal.Decimal
	ReturnQuantity decimal.Decimal
	NewLeftOver    decimal.Decimal
	StockID        int64
	WarehouseID    int64
	CreatedByID    int64
	CreatedAt      time.Time
}

// AreaMovementLog registra un movimiento sobre un registro de área
// (devolución a stock o reparto desde stock).
type AreaMovementLog struct {
	ID             int64
	TransactionID  string
	MovementType   string
	OldQuantity    decimal.Decimal
	ReturnQuantity decimal.Decimal
	AreaID         int64
	StockID        int64
	CreatedByID    int64
	CreatedAt      time.Time
}
