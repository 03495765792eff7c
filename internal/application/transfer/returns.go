package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ReturnAreaInput devolución área->stock.
type ReturnAreaInput struct {
	AreaID   int64
	StockID  int64
	Quantity decimal.Decimal
}

// ReturnStockInput devolución stock->almacén.
type ReturnStockInput struct {
	StockID     int64
	WarehouseID int64
	Quantity    decimal.Decimal
}

// ReturnAreaToStock devuelve cantidad de un registro de área a su lote de
// stock. El área se busca bajo el scope del usuario: fuera de su proyecto es
// un 404. Baja area.quantity y sube stock.left_over en la misma transacción,
// con bitácora del estado previo.
func (e *Engine) ReturnAreaToStock(ctx context.Context, callerID int64, scope domain.Scope, in ReturnAreaInput) error {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
			"la cantidad debe ser mayor que cero, se recibió %s", in.Quantity)
	}

	txID := uuid.New().String()

	return e.tx.Run(ctx, func(repos Repos) error {
		area, err := repos.Areas.GetForUpdate(scope, in.AreaID)
		if err != nil {
			return err
		}
		if area == nil {
			return domain.ErrNotFound
		}
		if in.Quantity.GreaterThan(area.Quantity) {
			return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
				"no se puede devolver más de lo repartido (%s disponibles)", area.Quantity)
		}

		lot, err := repos.Stocks.GetForUpdate(in.StockID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}

		if e.policy.Returns {
			err := repos.Logs.InsertAreaLog(&entity.AreaMovementLog{
				TransactionID:  txID,
				MovementType:   entity.MovementReturnToStock,
				OldQuantity:    area.Quantity,
				ReturnQuantity: in.Quantity,
				AreaID:         area.ID,
				StockID:        in.StockID,
				CreatedByID:    callerID,
			})
			if err != nil {
				return err
			}
		}

		if err := repos.Areas.AdjustQuantity(area.ID, in.Quantity.Neg()); err != nil {
			return err
		}
		if err := repos.Stocks.AdjustLeftOver(lot.ID, in.Quantity); err != nil {
			return err
		}

		e.log.Info().
			Str("tx", txID).
			Int64("area", area.ID).
			Int64("stock", lot.ID).
			Int64("usuario", callerID).
			Msg("devolución área->stock confirmada")
		return nil
	})
}

// ReturnStockToWarehouse devuelve cantidad de un lote de stock a su lote de
// almacén. Resta tanto left_over como quantity del stock: la devolución
// retira parte del retiro original (a diferencia de la devolución de área,
// que solo toca quantity).
func (e *Engine) ReturnStockToWarehouse(ctx context.Context, callerID int64, in ReturnStockInput) error {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
			"la cantidad debe ser mayor que cero, se recibió %s", in.Quantity)
	}

	txID := uuid.New().String()

	return e.tx.Run(ctx, func(repos Repos) error {
		lot, err := repos.Stocks.GetForUpdate(in.StockID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		if in.Quantity.GreaterThan(lot.LeftOver) {
			return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
				"no se puede devolver más que el left_over disponible (%s)", lot.LeftOver)
		}

		wh, err := repos.Warehouses.GetForUpdate(in.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}

		if e.policy.Returns {
			err := repos.Logs.InsertStockLog(&entity.StockMovementLog{
				TransactionID:  txID,
				MovementType:   entity.MovementReturnToWarehouse,
				OldQuantity:    lot.Quantity,
				OldLeftOver:    lot.LeftOver,
				ReturnQuantity: in.Quantity,
				NewLeftOver:    lot.LeftOver.Sub(in.Quantity),
				StockID:        lot.ID,
				WarehouseID:    wh.ID,
				CreatedByID:    callerID,
			})
			if err != nil {
				return err
			}
		}

		if err := repos.Stocks.ReduceOnReturn(lot.ID, in.Quantity); err != nil {
			return err
		}
		if err := repos.Warehouses.AdjustLeftOver(wh.ID, in.Quantity); err != nil {
			return err
		}

		e.log.Info().
			Str("tx", txID).
			Int64("stock", lot.ID).
			Int64("almacen", wh.ID).
			Int64("usuario", callerID).
			Msg("devolución stock->almacén confirmada")
		return nil
	})
}
