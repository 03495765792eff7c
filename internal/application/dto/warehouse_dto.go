package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Entrada ───────────────────────────────────────────────────────────────────

// WarehouseItemRequest una línea del lote de ingreso a almacén.
type WarehouseItemRequest struct {
	MaterialName   string           `json:"material_name" validate:"required,min=1"`
	Qty            decimal.Decimal  `json:"qty" validate:"required"`
	Unit           string           `json:"unit" validate:"required"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	MaterialCodeID int64            `json:"material_code_id" validate:"required"`
	CategoryID     int64            `json:"category_id" validate:"required"`
}

// CreateWarehouseListRequest body para POST /warehouse/create-warehouse_list.
// La cabecera (po_num, doc_num, solicitante, empresa) se comparte entre todas
// las líneas de data_list.
type CreateWarehouseListRequest struct {
	PONum     *string                `json:"po_num,omitempty"`
	DocNum    *string                `json:"doc_num,omitempty"`
	ProjectID int64                  `json:"project_id" validate:"required"`
	OrderedID *int64                 `json:"ordered_id,omitempty"`
	CompanyID *int64                 `json:"company_id,omitempty"`
	DataList  []WarehouseItemRequest `json:"data_list" validate:"required,min=1"`
}

// UpdateWarehouseRequest body para POST /warehouse/update-warehouse_list.
// Reemplazo completo: un campo opcional ausente no conserva el valor anterior.
type UpdateWarehouseRequest struct {
	ID             int64            `json:"id" validate:"required"`
	MaterialName   string           `json:"material_name" validate:"required,min=1"`
	Qty            decimal.Decimal  `json:"qty" validate:"required"`
	Unit           string           `json:"unit" validate:"required"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	PONum          *string          `json:"po_num,omitempty"`
	DocNum         *string          `json:"doc_num,omitempty"`
	ProjectID      int64            `json:"project_id" validate:"required"`
	MaterialCodeID int64            `json:"material_code_id" validate:"required"`
	CategoryID     int64            `json:"category_id" validate:"required"`
	OrderedID      *int64           `json:"ordered_id,omitempty"`
	CompanyID      *int64           `json:"company_id,omitempty"`
}

// WarehouseFilterRequest body para POST /warehouse/filter. Los campos no
// reconocidos del JSON se descartan al decodificar; solo estos criterios
// llegan al constructor de predicados.
type WarehouseFilterRequest struct {
	ProjectID  int64               `json:"project_id" validate:"required"`
	FilterData WarehouseFilterData `json:"filter_data"`
}

// WarehouseFilterData criterios admitidos del filtro de almacén.
type WarehouseFilterData struct {
	MaterialName   *string          `json:"material_name,omitempty"`
	Qty            *decimal.Decimal `json:"qty,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	CategoryID     *int64           `json:"category_id,omitempty"`
	PONum          *string          `json:"po_num,omitempty"`
	DocNum         *string          `json:"doc_num,omitempty"`
	MaterialCodeID *int64           `json:"material_code_id,omitempty"`
	ProjectID      *int64           `json:"project_id,omitempty"`
	OrderedID      *int64           `json:"ordered_id,omitempty"`
	CompanyID      *int64           `json:"company_id,omitempty"`
	CreatedAt      *string          `json:"created_at,omitempty"` // YYYY-MM-DD, compara por día
}

// ── Salida ────────────────────────────────────────────────────────────────────

// WarehouseResponse proyección de un lote de almacén con sus lookups por
// nombre; las relaciones opcionales ausentes se devuelven como "N/A".
type WarehouseResponse struct {
	ID           int64            `json:"id"`
	MaterialName string           `json:"material_name"`
	Qty          decimal.Decimal  `json:"qty"`
	LeftOver     decimal.Decimal  `json:"left_over"`
	Unit         string           `json:"unit"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Currency     *string          `json:"currency,omitempty"`
	PONum        *string          `json:"po_num,omitempty"`
	DocNum       *string          `json:"doc_num,omitempty"`
	MaterialCode string           `json:"material_code"`
	Category     string           `json:"category"`
	Project      string           `json:"project"`
	Ordered      string           `json:"ordered"`
	Company      string           `json:"company"`
	ProjectID    int64            `json:"project_id"`
	CreatedAt    time.Time        `json:"created_at"`
}
