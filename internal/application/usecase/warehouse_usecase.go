package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// WarehouseUseCase intake de lotes de almacén y lecturas del libro. Las
// correcciones de cantidad pasan por el motor de movimientos; el resto opera
// sobre el repositorio directamente.
type WarehouseUseCase struct {
	repo   repository.WarehouseRepository
	engine *transfer.Engine
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, engine *transfer.Engine) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, engine: engine}
}

// validateUnitCurrency normaliza la unidad a minúsculas y la moneda a
// mayúsculas, validando ambas contra las listas permitidas.
func validateUnitCurrency(row int, unit string, currency *string) (string, *string, error) {
	u := strings.ToLower(strings.TrimSpace(unit))
	if !entity.ValidUnit(u) {
		return "", nil, domain.NewQuantityError(row, domain.ErrInvalidInput, "unidad %q no permitida", unit)
	}
	if currency == nil {
		return u, nil, nil
	}
	c := strings.ToUpper(strings.TrimSpace(*currency))
	if !entity.ValidCurrency(c) {
		return "", nil, domain.NewQuantityError(row, domain.ErrInvalidInput, "moneda %q no permitida", *currency)
	}
	return u, &c, nil
}

// CreateList da de alta un lote de líneas de almacén bajo una cabecera común.
// Cada línea nace con left_over = qty. Inserción multi-fila: o entran todas
// o ninguna.
func (uc *WarehouseUseCase) CreateList(callerID int64, in dto.CreateWarehouseListRequest) error {
	if len(in.DataList) == 0 {
		return domain.NewQuantityError(0, domain.ErrInvalidInput, "agregue al menos un ítem para la operación")
	}
	if _, err := domain.ScopeForProject(in.ProjectID); err != nil {
		return err
	}

	lots := make([]*entity.Warehouse, 0, len(in.DataList))
	for idx, item := range in.DataList {
		row := idx + 1
		if !item.Qty.GreaterThan(decimal.Zero) {
			return domain.NewQuantityError(row, domain.ErrInvalidQuantity,
				"la cantidad debe ser mayor que cero, se recibió %s", item.Qty)
		}
		unit, currency, err := validateUnitCurrency(row, item.Unit, item.Currency)
		if err != nil {
			return err
		}
		if strings.TrimSpace(item.MaterialName) == "" {
			return domain.NewQuantityError(row, domain.ErrInvalidInput, "material_name es obligatorio")
		}
		lots = append(lots, &entity.Warehouse{
			MaterialName:   strings.TrimSpace(item.MaterialName),
			Qty:            item.Qty,
			LeftOver:       item.Qty,
			Unit:           unit,
			Price:          item.Price,
			Currency:       currency,
			PONum:          in.PONum,
			DocNum:         in.DocNum,
			ProjectID:      in.ProjectID,
			MaterialCodeID: item.MaterialCodeID,
			CategoryID:     item.CategoryID,
			OrderedID:      in.OrderedID,
			CompanyID:      in.CompanyID,
			CreatedByID:    callerID,
		})
	}
	return uc.repo.CreateBatch(lots)
}

// Update corrige un lote de almacén vía el motor de movimientos (valida
// contra lo ya emitido, recalcula left_over, deja bitácora).
func (uc *WarehouseUseCase) Update(ctx context.Context, callerID int64, in dto.UpdateWarehouseRequest) error {
	unit, currency, err := validateUnitCurrency(0, in.Unit, in.Currency)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.MaterialName) == "" {
		return fmt.Errorf("material_name es obligatorio: %w", domain.ErrInvalidInput)
	}
	return uc.engine.UpdateWarehouse(ctx, callerID, transfer.UpdateWarehouseInput{
		ID:             in.ID,
		MaterialName:   strings.TrimSpace(in.MaterialName),
		Qty:            in.Qty,
		Unit:           unit,
		Price:          in.Price,
		Currency:       currency,
		PONum:          in.PONum,
		DocNum:         in.DocNum,
		ProjectID:      in.ProjectID,
		MaterialCodeID: in.MaterialCodeID,
		CategoryID:     in.CategoryID,
		OrderedID:      in.OrderedID,
		CompanyID:      in.CompanyID,
	})
}

// Fetch lista los lotes visibles para el proyecto, limitados al tope fijo.
func (uc *WarehouseUseCase) Fetch(projectID int64) ([]*dto.WarehouseResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.Fetch(scope, dto.DefaultFetchLimit)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(views), nil
}

// FetchByIDs lista los lotes pedidos que el proyecto puede ver; los ajenos
// simplemente no aparecen.
func (uc *WarehouseUseCase) FetchByIDs(projectID int64, ids []int64) ([]*dto.WarehouseResponse, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids no puede estar vacío: %w", domain.ErrInvalidInput)
	}
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.FetchByIDs(scope, ids)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(views), nil
}

// GetByID devuelve un lote visible o ErrNotFound (fuera del proyecto es
// indistinguible de inexistente).
func (uc *WarehouseUseCase) GetByID(projectID, id int64) (*dto.WarehouseResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(scope, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(v), nil
}

// Filter aplica los criterios tipados bajo el scope del proyecto; los
// criterios nunca amplían la visibilidad.
func (uc *WarehouseUseCase) Filter(projectID int64, in dto.WarehouseFilterData) ([]*dto.WarehouseResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseFilterDate(in.CreatedAt)
	if err != nil {
		return nil, err
	}
	var unit *string
	if in.Unit != nil {
		u := strings.ToLower(strings.TrimSpace(*in.Unit))
		unit = &u
	}
	views, err := uc.repo.Filter(scope, view.WarehouseFilter{
		MaterialName:   in.MaterialName,
		Qty:            in.Qty,
		Unit:           unit,
		Price:          in.Price,
		Currency:       in.Currency,
		CategoryID:     in.CategoryID,
		PONum:          in.PONum,
		DocNum:         in.DocNum,
		MaterialCodeID: in.MaterialCodeID,
		ProjectID:      in.ProjectID,
		OrderedID:      in.OrderedID,
		CompanyID:      in.CompanyID,
		CreatedAt:      createdAt,
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(views), nil
}

// parseFilterDate interpreta el criterio de fecha YYYY-MM-DD.
func parseFilterDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("fecha %q inválida, se espera YYYY-MM-DD: %w", *s, domain.ErrInvalidInput)
	}
	return &t, nil
}

func toWarehouseResponse(v *view.WarehouseView) *dto.WarehouseResponse {
	if v == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:           v.ID,
		MaterialName: v.MaterialName,
		Qty:          v.Qty,
		LeftOver:     v.LeftOver,
		Unit:         v.Unit,
		Price:        v.Price,
		Currency:     v.Currency,
		PONum:        v.PONum,
		DocNum:       v.DocNum,
		MaterialCode: v.MaterialCode,
		Category:     v.Category,
		Project:      v.Project,
		Ordered:      v.Ordered,
		Company:      v.Company,
		ProjectID:    v.ProjectID,
		CreatedAt:    v.CreatedAt,
	}
}

func toWarehouseResponses(views []*view.WarehouseView) []*dto.WarehouseResponse {
	out := make([]*dto.WarehouseResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toWarehouseResponse(v))
	}
	return out
}
