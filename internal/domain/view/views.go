// Package view define las proyecciones de lectura del libro de inventario:
// cada fila del libro unida a los nombres descriptivos de sus lookups.
// Las relaciones opcionales ausentes se proyectan como "N/A", nunca como nil.
package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotAvailable es el centinela para relaciones opcionales ausentes.
const NotAvailable = "N/A"

// WarehouseView es la proyección de un lote de almacén con sus lookups.
type WarehouseView struct {
	ID           int64
	MaterialName string
	Qty          decimal.Decimal
	LeftOver     decimal.Decimal
	Unit         string
	Price        *decimal.Decimal
	Currency     *string
	PONum        *string
	DocNum       *string
	MaterialCode string
	Category     string
	Project      string
	Ordered      string
	Company      string
	ProjectID    int64
	CreatedAt    time.Time
}

// StockView es la proyección de un lote de stock; los campos descriptivos
// vienen del lote de almacén origen.
type StockView struct {
	ID           int64
	Quantity     decimal.Decimal
	LeftOver     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	MaterialName string
	Unit         string
	MaterialCode string
	Category     string
	Ordered      string
	Company      string
	Project      string
	WarehouseID  int64
	ProjectID    int64
	CreatedAt    time.Time
}

// AreaView es la proyección de un registro de área.
type AreaView struct {
	ID           int64
	MaterialName string
	Quantity     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	Username     string
	ProvideType  string
	CardNumber   string
	GroupName    string
	ProjectName  string
	StockID      int64
	ProjectID    int64
	CreatedAt    time.Time
}
