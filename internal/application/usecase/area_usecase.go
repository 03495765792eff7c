package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// AreaUseCase reparto stock->área, devolución a stock y lecturas.
type AreaUseCase struct {
	repo   repository.AreaRepository
	engine *transfer.Engine
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(repo repository.AreaRepository, engine *transfer.Engine) *AreaUseCase {
	return &AreaUseCase{repo: repo, engine: engine}
}

// Add reparte un lote de líneas stock->área bajo la cabecera común.
func (uc *AreaUseCase) Add(ctx context.Context, callerID int64, in dto.AddAreaRequest) error {
	lines := make([]transfer.AllocateLine, 0, len(in.Datas))
	for _, item := range in.Datas {
		lines = append(lines, transfer.AllocateLine{
			StockID:      item.StockID,
			Quantity:     item.Quantity,
			SerialNumber: item.SerialNumber,
			MaterialID:   item.MaterialID,
			ProvideType:  item.ProvideType,
			ProjectID:    item.ProjectID,
		})
	}
	return uc.engine.AllocateArea(ctx, callerID, transfer.AllocateAreaInput{
		ProjectID:  in.ProjectID,
		CardNumber: in.CardNumber,
		Username:   in.Username,
		GroupID:    in.GroupID,
		Lines:      lines,
	})
}

// ReturnToStock devuelve cantidad de un registro de área a su lote de stock.
// El registro se busca bajo el scope del token del caller (projectID), nunca
// bajo el project_id del body: fuera de su proyecto es 404. El project_id del
// body solo lo consume el guard de roles.
func (uc *AreaUseCase) ReturnToStock(ctx context.Context, callerID, projectID int64, in dto.ReturnToStockRequest) error {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return err
	}
	return uc.engine.ReturnAreaToStock(ctx, callerID, scope, transfer.ReturnAreaInput{
		AreaID:   in.ID,
		StockID:  in.StockID,
		Quantity: in.Quantity,
	})
}

// Fetch lista los registros de área visibles para el proyecto.
func (uc *AreaUseCase) Fetch(projectID int64) ([]*dto.AreaResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.Fetch(scope, dto.DefaultFetchLimit)
	if err != nil {
		return nil, err
	}
	return toAreaResponses(views), nil
}

// GetByID devuelve un registro visible o ErrNotFound.
func (uc *AreaUseCase) GetByID(projectID, id int64) (*dto.AreaResponse, error) {
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
	return toAreaResponse(v), nil
}

// Filter aplica los criterios tipados bajo el scope del proyecto.
func (uc *AreaUseCase) Filter(projectID int64, in dto.AreaFilterData) ([]*dto.AreaResponse, error) {
	scope, err := domain.ScopeForProject(projectID)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseFilterDate(in.CreatedAt)
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.Filter(scope, view.AreaFilter{
		MaterialName: in.MaterialName,
		Quantity:     in.Quantity,
		SerialNumber: in.SerialNumber,
		MaterialID:   in.MaterialID,
		Username:     in.Username,
		ProvideType:  in.ProvideType,
		CardNumber:   in.CardNumber,
		GroupID:      in.GroupID,
		StockID:      in.StockID,
		ProjectID:    in.ProjectID,
		CategoryID:   in.CategoryID,
		CreatedAt:    createdAt,
	})
	if err != nil {
		return nil, err
	}
	return toAreaResponses(views), nil
}

func toAreaResponse(v *view.AreaView) *dto.AreaResponse {
	if v == nil {
		return nil
	}
	return &dto.AreaResponse{
		ID:           v.ID,
		MaterialName: v.MaterialName,
		Quantity:     v.Quantity,
		SerialNumber: v.SerialNumber,
		MaterialID:   v.MaterialID,
		Username:     v.Username,
		ProvideType:  v.ProvideType,
		CardNumber:   v.CardNumber,
		GroupName:    v.GroupName,
		ProjectName:  v.ProjectName,
		StockID:      v.StockID,
		ProjectID:    v.ProjectID,
		CreatedAt:    v.CreatedAt,
	}
}

func toAreaResponses(views []*view.AreaView) []*dto.AreaResponse {
	out := make([]*dto.AreaResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toAreaResponse(v))
	}
	return out
}
