package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Entrada ───────────────────────────────────────────────────────────────────

// AreaItemRequest una línea del reparto stock->área.
type AreaItemRequest struct {
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	MaterialID   *string         `json:"material_id,omitempty"`
	ProvideType  string          `json:"provide_type" validate:"required"`
	StockID      int64           `json:"stock_id" validate:"required"`
	ProjectID    int64           `json:"project_id" validate:"required"`
}

// AddAreaRequest body para POST /area/add_area. La cabecera (tarjeta,
// usuario, grupo) es común a todas las líneas de datas.
type AddAreaRequest struct {
	ProjectID  int64             `json:"project_id" validate:"required"`
	CardNumber string            `json:"card_number" validate:"required"`
	Username   string            `json:"username" validate:"required,min=2"`
	GroupID    int64             `json:"group_id" validate:"required"`
	Datas      []AreaItemRequest `json:"datas" validate:"required,min=1"`
}

// ReturnToStockRequest body para POST /area/return_to_stock.
type ReturnToStockRequest struct {
	ID        int64           `json:"id" validate:"required"`
	StockID   int64           `json:"stock_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	ProjectID int64           `json:"project_id" validate:"required"`
}

// AreaFilterRequest body para POST /area/filter.
type AreaFilterRequest struct {
	ProjectID  int64          `json:"project_id" validate:"required"`
	FilterData AreaFilterData `json:"filter_data"`
}

// AreaFilterData criterios admitidos del filtro de área.
type AreaFilterData struct {
	MaterialName *string          `json:"material_name,omitempty"`
	Quantity     *decimal.Decimal `json:"quantity,omitempty"`
	SerialNumber *string          `json:"serial_number,omitempty"`
	MaterialID   *string          `json:"material_id,omitempty"`
	Username     *string          `json:"username,omitempty"`
	ProvideType  *string          `json:"provide_type,omitempty"`
	CardNumber   *string          `json:"card_number,omitempty"`
	GroupID      *int64           `json:"group_id,omitempty"`
	StockID      *int64           `json:"stock_id,omitempty"`
	ProjectID    *int64           `json:"project_id,omitempty"`
	CategoryID   *int64           `json:"category_id,omitempty"`
	CreatedAt    *string          `json:"created_at,omitempty"` // YYYY-MM-DD
}

// ── Salida ────────────────────────────────────────────────────────────────────

// AreaResponse proyección de un registro de área.
type AreaResponse struct {
	ID           int64           `json:"id"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	MaterialID   *string         `json:"material_id,omitempty"`
	Username     string          `json:"username"`
	ProvideType  string          `json:"provide_type"`
	CardNumber   string          `json:"card_number"`
	GroupName    string          `json:"group_name"`
	ProjectName  string          `json:"project_name"`
	StockID      int64           `json:"stock_id"`
	ProjectID    int64           `json:"project_id"`
	CreatedAt    time.Time       `json:"created_at"`
}
