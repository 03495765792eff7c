package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Entrada ───────────────────────────────────────────────────────────────────

// StockItemRequest una línea de la emisión almacén->stock.
type StockItemRequest struct {
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	MaterialID   *string         `json:"material_id,omitempty"`
	WarehouseID  int64           `json:"warehouse_id" validate:"required"`
	ProjectID    int64           `json:"project_id" validate:"required"`
}

// AddStockListRequest body para POST /stock/add_stock_data_list.
type AddStockListRequest struct {
	ProjectID     int64              `json:"project_id" validate:"required"`
	StockDataList []StockItemRequest `json:"stock_data_list" validate:"required,min=1"`
}

// ReturnToWarehouseRequest body para POST /stock/return_to_warehouse.
type ReturnToWarehouseRequest struct {
	StockID     int64           `json:"stock_id" validate:"required"`
	WarehouseID int64           `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	ProjectID   int64           `json:"project_id" validate:"required"`
}

// StockFilterRequest body para POST /stock/filter.
type StockFilterRequest struct {
	ProjectID  int64           `json:"project_id" validate:"required"`
	FilterData StockFilterData `json:"filter_data"`
}

// StockFilterData criterios admitidos del filtro de stock.
type StockFilterData struct {
	MaterialName   *string          `json:"material_name,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	SerialNumber   *string          `json:"serial_number,omitempty"`
	MaterialID     *string          `json:"material_id,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
	PONum          *string          `json:"po_num,omitempty"`
	DocNum         *string          `json:"doc_num,omitempty"`
	CategoryID     *int64           `json:"category_id,omitempty"`
	MaterialCodeID *int64           `json:"material_code_id,omitempty"`
	ProjectID      *int64           `json:"project_id,omitempty"`
	OrderedID      *int64           `json:"ordered_id,omitempty"`
	CompanyID      *int64           `json:"company_id,omitempty"`
	CreatedAt      *string          `json:"created_at,omitempty"` // YYYY-MM-DD
}

// ── Salida ────────────────────────────────────────────────────────────────────

// StockResponse proyección de un lote de stock; los campos descriptivos
// vienen del lote de almacén origen.
type StockResponse struct {
	ID           int64           `json:"id"`
	Quantity     decimal.Decimal `json:"quantity"`
	LeftOver     decimal.Decimal `json:"left_over"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	MaterialID   *string         `json:"material_id,omitempty"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	MaterialCode string          `json:"material_code"`
	Category     string          `json:"category"`
	Ordered      string          `json:"ordered"`
	Company      string          `json:"company"`
	Project      string          `json:"project"`
	WarehouseID  int64           `json:"warehouse_id"`
	ProjectID    int64           `json:"project_id"`
	CreatedAt    time.Time       `json:"created_at"`
}
