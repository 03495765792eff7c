package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Area representa una cantidad repartida desde un lote de stock a un receptor
// en campo. Quantity baja al devolver; nunca por debajo de cero. No guarda un
// tope original propio: la cadena del libro (stock -> area) lo acota.
type Area struct {
	ID           int64
	Quantity     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	ProvideType  string
	CardNumber   string
	Username     string
	StockID      int64
	ProjectID    int64
	GroupID      int64
	CreatedByID  int64
	CreatedAt    time.Time
}
