package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa una cantidad retirada de un lote de almacén hacia inventario
// activo. Quantity es lo retirado y LeftOver lo aún no repartido a área.
// Invariante en reposo: 0 <= LeftOver <= Quantity.
type Stock struct {
	ID           int64
	Quantity     decimal.Decimal
	LeftOver     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	WarehouseID  int64
	ProjectID    int64
	CreatedByID  int64
	CreatedAt    time.Time
}
