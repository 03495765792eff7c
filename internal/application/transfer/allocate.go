package transfer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AllocateLine es una línea del reparto: cuánto entregar desde qué lote de stock.
type AllocateLine struct {
	StockID      int64
	Quantity     decimal.Decimal
	SerialNumber *string
	MaterialID   *string
	ProvideType  string
	ProjectID    int64
}

// AllocateAreaInput agrupa las líneas bajo la cabecera común del receptor.
type AllocateAreaInput struct {
	ProjectID  int64
	CardNumber string
	Username   string
	GroupID    int64
	Lines      []AllocateLine
}

// AllocateArea reparte cantidades de lotes de stock a registros de área con la
// cabecera común (tarjeta, usuario, grupo). Lote atómico, falla rápida.
func (e *Engine) AllocateArea(ctx context.Context, callerID int64, in AllocateAreaInput) error {
	if err := checkBatchProject(in.ProjectID, len(in.Lines), func(i int) int64 { return in.Lines[i].ProjectID }); err != nil {
		return err
	}
	for idx, line := range in.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return domain.NewQuantityError(idx+1, domain.ErrInvalidQuantity,
				"la cantidad debe ser mayor que cero, se recibió %s", line.Quantity)
		}
	}

	// La cabecera se normaliza igual que el sistema de captura en campo.
	cardNumber := strings.ToLower(strings.TrimSpace(in.CardNumber))
	username := strings.ToLower(strings.TrimSpace(in.Username))

	txID := uuid.New().String()

	return e.tx.Run(ctx, func(repos Repos) error {
		records := make([]*entity.Area, 0, len(in.Lines))
		sources := make([]*entity.Stock, 0, len(in.Lines))

		for idx, line := range in.Lines {
			row := idx + 1
			lot, err := repos.Stocks.GetForUpdate(line.StockID)
			if err != nil {
				return err
			}
			if lot == nil {
				return domain.NewQuantityError(row, domain.ErrNotFound, "stock %d no encontrado", line.StockID)
			}
			if lot.LeftOver.LessThan(line.Quantity) {
				return domain.NewQuantityError(row, domain.ErrInsufficientStock,
					"stock insuficiente (hay %s, se pide %s)", lot.LeftOver, line.Quantity)
			}
			if err := repos.Stocks.AdjustLeftOver(lot.ID, line.Quantity.Neg()); err != nil {
				return err
			}
			sources = append(sources, lot)
			records = append(records, &entity.Area{
				Quantity:     line.Quantity,
				SerialNumber: line.SerialNumber,
				MaterialID:   line.MaterialID,
				ProvideType:  strings.ToLower(line.ProvideType),
				CardNumber:   cardNumber,
				Username:     username,
				StockID:      line.StockID,
				ProjectID:    line.ProjectID,
				GroupID:      in.GroupID,
				CreatedByID:  callerID,
			})
		}

		if err := repos.Areas.CreateBatch(records); err != nil {
			return err
		}

		if e.policy.Allocate {
			for i, rec := range records {
				err := repos.Logs.InsertAreaLog(&entity.AreaMovementLog{
					TransactionID:  txID,
					MovementType:   entity.MovementProvideToArea,
					OldQuantity:    sources[i].LeftOver,
					ReturnQuantity: rec.Quantity,
					AreaID:         rec.ID,
					StockID:        rec.StockID,
					CreatedByID:    callerID,
				})
				if err != nil {
					return err
				}
			}
		}

		e.log.Info().
			Str("tx", txID).
			Int("lineas", len(records)).
			Int64("usuario", callerID).
			Msg("reparto stock->área confirmado")
		return nil
	})
}
