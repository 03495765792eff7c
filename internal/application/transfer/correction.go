package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UpdateWarehouseInput reemplazo completo de los campos editables de un lote.
// No es un patch: un campo ausente no conserva el valor anterior.
type UpdateWarehouseInput struct {
	ID             int64
	MaterialName   string
	Qty            decimal.Decimal
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
}

// UpdateWarehouse corrige la cantidad original de un lote de almacén junto con
// sus campos descriptivos. No puede bajar por debajo de lo ya emitido a stock;
// si la cantidad cambia, left_over se recalcula y queda bitácora del par
// viejo/nuevo, todo en un solo update transaccional.
func (e *Engine) UpdateWarehouse(ctx context.Context, callerID int64, in UpdateWarehouseInput) error {
	if !in.Qty.GreaterThan(decimal.Zero) {
		return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
			"la cantidad debe ser mayor que cero, se recibió %s", in.Qty)
	}

	txID := uuid.New().String()

	return e.tx.Run(ctx, func(repos Repos) error {
		wh, err := repos.Warehouses.GetForUpdate(in.ID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}

		consumed := wh.Consumed()
		if in.Qty.LessThan(consumed) {
			return domain.NewQuantityError(0, domain.ErrInvalidQuantity,
				"no se puede reducir por debajo de lo ya emitido a stock (%s)", consumed)
		}

		newLeftOver := wh.LeftOver
		if !in.Qty.Equal(wh.Qty) {
			newLeftOver = in.Qty.Sub(consumed)
			if e.policy.Corrections {
				err := repos.Logs.InsertWarehouseLog(&entity.WarehouseMovementLog{
					TransactionID: txID,
					MovementType:  entity.MovementUpdateQty,
					OldQuantity:   wh.Qty,
					OldLeftOver:   wh.LeftOver,
					NewQuantity:   in.Qty,
					NewLeftOver:   newLeftOver,
					WarehouseID:   wh.ID,
					CreatedByID:   callerID,
				})
				if err != nil {
					return err
				}
			}
		}

		updated := &entity.Warehouse{
			ID:             wh.ID,
			MaterialName:   in.MaterialName,
			Qty:            in.Qty,
			LeftOver:       newLeftOver,
			Unit:           in.Unit,
			Price:          in.Price,
			Currency:       in.Currency,
			PONum:          in.PONum,
			DocNum:         in.DocNum,
			ProjectID:      in.ProjectID,
			MaterialCodeID: in.MaterialCodeID,
			CategoryID:     in.CategoryID,
			OrderedID:      in.OrderedID,
			CompanyID:      in.CompanyID,
			CreatedByID:    wh.CreatedByID,
			CreatedAt:      wh.CreatedAt,
		}
		if err := repos.Warehouses.Update(updated); err != nil {
			return err
		}

		e.log.Info().
			Str("tx", txID).
			Int64("almacen", wh.ID).
			Int64("usuario", callerID).
			Msg("corrección de almacén confirmada")
		return nil
	})
}
