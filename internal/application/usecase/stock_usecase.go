package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// StockUseCase emisión almacén->stock, devolución a almacén y lecturas.
// Las mutaciones pasan por el motor de movimientos; las lecturas van directo
// al repositorio y no toman bloqueos.
type StockUseCase struct {
	repo   repository.StockRepository
	engine *transfer.Engine
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, engine *transfer.Engine) *StockUseCase {
	return &StockUseCase{repo: repo, engine: engine}
}

// AddList emite un lote de líneas almacén->stock como una sola transacción.
func (uc *StockUseCase) AddList(ctx context.Context, callerID int64, in dto.AddStockListRequest) error {
	lines := make([]transfer.IssueLine, 0, len(in.StockDataList))
	for _, item := range in.StockDataList {
		lines = append(lines, transfer.IssueLine{
			WarehouseID:  item.WarehouseID,
			Quantity:     item.Quantity,
			SerialNumber: item.SerialNumber,
			MaterialID:   item.MaterialID,
			ProjectID:    item.ProjectID,
		})
	}
	return uc.engine.IssueStock(ctx, callerID, transfer.IssueStockInput{
		ProjectID: in.ProjectID,
		Lines:     lines,
	})
}

// ReturnToWarehouse devuelve cantidad de un lote de stock a su lote de almacén.
func (uc *StockUseCase) ReturnToWarehouse(ctx context.Context, callerID int64, in dto.ReturnToWarehouseRequest) error {
	return uc.engine.ReturnStockToWarehouse(ctx, callerID, transfer.ReturnStockInput{
		StockID:     in.StockID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
	})
}

// Fetch lista los lotes de stock visibles para el proyecto.
func (uc *StockUseCase) Fetch(projectID int64) ([]*dto.StockResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.Fetch(scope, dto.DefaultFetchLimit)
	if err != nil {
		return nil, err
	}
	return toStockResponses(views), nil
}

// FetchByIDs lista los lotes pedidos visibles para el proyecto.
func (uc *StockUseCase) FetchByIDs(projectID int64, ids []int64) ([]*dto.StockResponse, error) {
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
	return toStockResponses(views), nil
}

// GetByID devuelve un lote visible o ErrNotFound.
func (uc *StockUseCase) GetByID(projectID, id int64) (*dto.StockResponse, error) {
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
	return toStockResponse(v), nil
}

// Filter aplica los criterios tipados bajo el scope del proyecto.
func (uc *StockUseCase) Filter(projectID int64, in dto.StockFilterData) ([]*dto.StockResponse, error) {
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
	views, err := uc.repo.Filter(scope, view.StockFilter{
		MaterialName:   in.MaterialName,
		Quantity:       in.Quantity,
		Unit:           unit,
		Price:          in.Price,
		Currency:       in.Currency,
		PONum:          in.PONum,
		DocNum:         in.DocNum,
		CategoryID:     in.CategoryID,
		MaterialCodeID: in.MaterialCodeID,
		ProjectID:      in.ProjectID,
		OrderedID:      in.OrderedID,
		CompanyID:      in.CompanyID,
		SerialNumber:   in.SerialNumber,
		MaterialID:     in.MaterialID,
		CreatedAt:      createdAt,
	})
	if err != nil {
		return nil, err
	}
	return toStockResponses(views), nil
}

func toStockResponse(v *view.StockView) *dto.StockResponse {
	if v == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:           v.ID,
		Quantity:     v.Quantity,
		LeftOver:     v.LeftOver,
		SerialNumber: v.SerialNumber,
		MaterialID:   v.MaterialID,
		MaterialName: v.MaterialName,
		Unit:         v.Unit,
		MaterialCode: v.MaterialCode,
		Category:     v.Category,
		Ordered:      v.Ordered,
		Company:      v.Company,
		Project:      v.Project,
		WarehouseID:  v.WarehouseID,
		ProjectID:    v.ProjectID,
		CreatedAt:    v.CreatedAt,
	}
}

func toStockResponses(views []*view.StockView) []*dto.StockResponse {
	out := make([]*dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toStockResponse(v))
	}
	return out
}
