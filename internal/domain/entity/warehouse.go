package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa un lote recibido en almacén. Qty es la cantidad original
// (referencia inmutable) y LeftOver lo que queda sin consumir; el motor de
// movimientos es el único que escribe LeftOver.
// Invariante en reposo: 0 <= LeftOver <= Qty.
type Warehouse struct {
	ID             int64
	MaterialName   string
	Qty            decimal.Decimal
	LeftOver       decimal.Decimal
	Unit           string
	Price          *decimal.Decimal
	Currency       *string
	PONum          *string
	DocNum         *string
	ProjectID      int64
	MaterialCodeID int64
	CategoryID     int64
	OrderedID      *int64
	CompanyID      *int64
	CreatedByID    int64
	CreatedAt      time.Time
}

// Consumed devuelve lo ya emitido a stock (qty - left_over).
func (w *Warehouse) Consumed() decimal.Decimal {
	return w.Qty.Sub(w.LeftOver)
}
