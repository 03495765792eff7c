package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// WarehouseRepository define el puerto de persistencia para lotes de almacén.
// Los métodos de lectura aplican siempre el scope de proyecto; los de escritura
// se usan dentro de transacciones del motor de movimientos.
type WarehouseRepository interface {
	CreateBatch(lots []*entity.Warehouse) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(id int64) (*entity.Warehouse, error)
	// AdjustLeftOver suma delta (negativo para restar) a left_over.
	AdjustLeftOver(id int64, delta decimal.Decimal) error
	// Update reemplaza todos los campos editables del lote (incluido left_over).
	Update(lot *entity.Warehouse) error

	Fetch(scope domain.Scope, limit int) ([]*view.WarehouseView, error)
	FetchByIDs(scope domain.Scope, ids []int64) ([]*view.WarehouseView, error)
	GetByID(scope domain.Scope, id int64) (*view.WarehouseView, error)
	Filter(scope domain.Scope, criteria view.WarehouseFilter) ([]*view.WarehouseView, error)
}
