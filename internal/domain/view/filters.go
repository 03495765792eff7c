package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// Criterios de filtrado tipados. Solo los campos declarados aquí son
// filtrables: un campo desconocido en el JSON del cliente simplemente se
// descarta al decodificar, nunca es error (compatibilidad con clientes
// antiguos). Campos de texto casan por subcadena sin distinguir mayúsculas,
// numéricos y FKs por igualdad, timestamps por igualdad de fecha truncada.

// WarehouseFilter criterios para lotes de almacén.
type WarehouseFilter struct {
	MaterialName   *string
	Qty            *decimal.Decimal
	Unit           *string
	Price          *decimal.Decimal
	Currency       *string
	CategoryID     *int64
	PONum          *string
	DocNum         *string
	MaterialCodeID *int64
	ProjectID      *int64
	OrderedID      *int64
	CompanyID      *int64
	CreatedAt      *time.Time
}

// StockFilter criterios para lotes de stock (los descriptivos filtran por el
// lote de almacén origen).
type StockFilter struct {
	MaterialName   *string
	Quantity       *decimal.Decimal
	Unit           *string
	Price          *decimal.Decimal
	Currency       *string
	CategoryID     *int64
	PONum          *string
	DocNum         *string
	MaterialCodeID *int64
	ProjectID      *int64
	OrderedID      *int64
	CompanyID      *int64
	SerialNumber   *string
	MaterialID     *string
	CreatedAt      *time.Time
}

// AreaFilter criterios para registros de área.
type AreaFilter struct {
	MaterialName *string
	Quantity     *decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	Username     *string
	ProvideType  *string
	CardNumber   *string
	GroupID      *int64
	StockID      *int64
	ProjectID    *int64
	CategoryID   *int64
	CreatedAt    *time.Time
}
