package transfer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// IssueLine es una línea del lote de emisión: cuánto retirar de qué lote de almacén.
type IssueLine struct {
	WarehouseID  int64
	Quantity     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	ProjectID    int64
}

// IssueStockInput agrupa las líneas bajo un project_id de cabecera.
type IssueStockInput struct {
	ProjectID int64
	Lines     []IssueLine
}

// IssueStock retira cantidades de lotes de almacén y crea un lote de stock por
// línea (quantity = left_over = lo pedido). El lote completo confirma o
// revierte como unidad; la primera línea inválida aborta todo.
func (e *Engine) IssueStock(ctx context.Context, callerID int64, in IssueStockInput) error {
	if err := checkBatchProject(in.ProjectID, len(in.Lines), func(i int) int64 { return in.Lines[i].ProjectID }); err != nil {
		return err
	}
	// Cantidades no positivas se rechazan antes de tomar ningún bloqueo.
	for idx, line := range in.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.NewQuantityError(idx+1, domain.ErrInvalidQuantity,
				"la cantidad debe ser mayor que cero, se recibió %s", line.Quantity)
		}
	}

	txID := uuid.New().String()

	return e.tx.Run(ctx, func(repos Repos) error {
		lots := make([]*entity.Stock, 0, len(in.Lines))
		issued := make([]*entity.Warehouse, 0, len(in.Lines))

		for idx, line := range in.Lines {
			row := idx + 1
			wh, err := repos.Warehouses.GetForUpdate(line.WarehouseID)
			if err != nil {
				return err
			}
			if wh == nil {
				return domain.NewQuantityError(row, domain.ErrNotFound, "almacén %d no encontrado", line.WarehouseID)
			}
			if wh.LeftOver.LessThan(line.Quantity) {
				return domain.NewQuantityError(row, domain.ErrInsufficientStock,
					"stock insuficiente (hay %s, se pide %s)", wh.LeftOver, line.Quantity)
			}
			if err := repos.Warehouses.AdjustLeftOver(wh.ID, line.Quantity.Neg()); err != nil {
				return err
			}
			issued = append(issued, wh)
			lots = append(lots, &entity.Stock{
				Quantity:     line.Quantity,
				LeftOver:     line.Quantity,
				SerialNumber: line.SerialNumber,
				MaterialID:   line.MaterialID,
				WarehouseID:  line.WarehouseID,
				ProjectID:    line.ProjectID,
				CreatedByID:  callerID,
			})
		}

		if err := repos.Stocks.CreateBatch(lots); err != nil {
			return err
		}

		if e.policy.Issue {
			for i, lot := range lots {
				wh := issued[i]
				err := repos.Logs.InsertStockLog(&entity.StockMovementLog{
					TransactionID:  txID,
					MovementType:   entity.MovementIssueToStock,
					OldQuantity:    wh.Qty,
					OldLeftOver:    wh.LeftOver,
					ReturnQuantity: lot.Quantity,
					NewLeftOver:    wh.LeftOver.Sub(lot.Quantity),
					StockID:        lot.ID,
					WarehouseID:    wh.ID,
					CreatedByID:    callerID,
				})
				if err != nil {
					return err
				}
			}
		}

		e.log.Info().
			Str("tx", txID).
			Int("lineas", len(lots)).
			Int64("usuario", callerID).
			Msg("emisión almacén->stock confirmada")
		return nil
	})
}

// checkBatchProject valida el lote antes de bloquear filas: no vacío, todas
// las líneas del mismo proyecto y cabecera autorizada para ese proyecto
// (la cabecera global opera sobre cualquiera).
func checkBatchProject(headerProject int64, n int, lineProject func(i int) int64) error {
	if n == 0 {
		return domain.NewQuantityError(0, domain.ErrInvalidInput, "agregue al menos un ítem para la operación")
	}
	first := lineProject(0)
	for i := 0; i < n; i++ {
		if lineProject(i) != first {
			return domain.NewQuantityError(i+1, domain.ErrInvalidInput, "todas las líneas deben ser del mismo proyecto")
		}
		if headerProject != domain.GlobalProjectID && headerProject != lineProject(i) {
			return domain.NewQuantityError(i+1, domain.ErrForbidden, "proyecto no autorizado para esta operación")
		}
	}
	return nil
}
