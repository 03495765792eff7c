package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// StockRepository define el puerto de persistencia para lotes de stock.
type StockRepository interface {
	CreateBatch(lots []*entity.Stock) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(id int64) (*entity.Stock, error)
	// AdjustLeftOver suma delta (negativo para restar) a left_over.
	AdjustLeftOver(id int64, delta decimal.Decimal) error
	// ReduceOnReturn resta qty de left_over Y de quantity: la devolución a
	// almacén retira parte del retiro original, no solo lo deja ocioso.
	ReduceOnReturn(id int64, qty decimal.Decimal) error

	Fetch(scope domain.Scope, limit int) ([]*view.StockView, error)
	FetchByIDs(scope domain.Scope, ids []int64) ([]*view.StockView, error)
	GetByID(scope domain.Scope, id int64) (*view.StockView, error)
	Filter(scope domain.Scope, criteria view.StockFilter) ([]*view.StockView, error)
}
