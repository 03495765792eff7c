package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/view"
)

// fakeWarehouseRepo registra los argumentos con los que se le llama y
// devuelve vistas precargadas.
type fakeWarehouseRepo struct {
	created []*entity.Warehouse

	fetchScope domain.Scope
	fetchLimit int
	fetchIDs   []int64
	filterCrit view.WarehouseFilter

	views  []*view.WarehouseView
	single *view.WarehouseView
}

func (f *fakeWarehouseRepo) CreateBatch(lots []*entity.Warehouse) error {
	f.created = lots
	return nil
}
func (f *fakeWarehouseRepo) GetForUpdate(int64) (*entity.Warehouse, error) { return nil, nil }
func (f *fakeWarehouseRepo) AdjustLeftOver(int64, decimal.Decimal) error   { return nil }
func (f *fakeWarehouseRepo) Update(*entity.Warehouse) error                { return nil }
func (f *fakeWarehouseRepo) Fetch(scope domain.Scope, limit int) ([]*view.WarehouseView, error) {
	f.fetchScope = scope
	f.fetchLimit = limit
	return f.views, nil
}
func (f *fakeWarehouseRepo) FetchByIDs(scope domain.Scope, ids []int64) ([]*view.WarehouseView, error) {
	f.fetchScope = scope
	f.fetchIDs = ids
	return f.views, nil
}
func (f *fakeWarehouseRepo) GetByID(scope domain.Scope, id int64) (*view.WarehouseView, error) {
	f.fetchScope = scope
	return f.single, nil
}
func (f *fakeWarehouseRepo) Filter(scope domain.Scope, criteria view.WarehouseFilter) ([]*view.WarehouseView, error) {
	f.fetchScope = scope
	f.filterCrit = criteria
	return f.views, nil
}

func strPtr(s string) *string { return &s }

func validItem() dto.WarehouseItemRequest {
	return dto.WarehouseItemRequest{
		MaterialName:   "cable 3x2.5",
		Qty:            decimal.RequireFromString("100"),
		Unit:           "Meter",
		Currency:       strPtr("usd"),
		MaterialCodeID: 1,
		CategoryID:     2,
	}
}

func TestCreateList_NormalizaYCompartirCabecera(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, nil)

	err := uc.CreateList(9, dto.CreateWarehouseListRequest{
		PONum:     strPtr("PO-1"),
		DocNum:    strPtr("DOC-1"),
		ProjectID: 7,
		DataList:  []dto.WarehouseItemRequest{validItem(), validItem()},
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 2)

	for _, lot := range repo.created {
		assert.True(t, lot.LeftOver.Equal(lot.Qty), "left_over nace igual a qty")
		assert.Equal(t, "meter", lot.Unit, "la unidad se normaliza a minúsculas")
		require.NotNil(t, lot.Currency)
		assert.Equal(t, "USD", *lot.Currency, "la moneda se normaliza a mayúsculas")
		assert.Equal(t, "PO-1", *lot.PONum, "la cabecera se comparte entre líneas")
		assert.Equal(t, int64(7), lot.ProjectID)
		assert.Equal(t, int64(9), lot.CreatedByID)
	}
}

func TestCreateList_ListaVacia(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)
	err := uc.CreateList(9, dto.CreateWarehouseListRequest{ProjectID: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateList_CantidadInvalidaReportaFila(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, nil)

	bad := validItem()
	bad.Qty = decimal.Zero
	err := uc.CreateList(9, dto.CreateWarehouseListRequest{
		ProjectID: 7,
		DataList:  []dto.WarehouseItemRequest{validItem(), bad},
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	var qtyErr *domain.QuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, 2, qtyErr.Row)
	assert.Nil(t, repo.created, "nada se persiste si una línea falla")
}

func TestCreateList_UnidadYMonedaNoPermitidas(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)

	badUnit := validItem()
	badUnit.Unit = "furlong"
	err := uc.CreateList(9, dto.CreateWarehouseListRequest{
		ProjectID: 7, DataList: []dto.WarehouseItemRequest{badUnit},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badCurrency := validItem()
	badCurrency.Currency = strPtr("XXX")
	err = uc.CreateList(9, dto.CreateWarehouseListRequest{
		ProjectID: 7, DataList: []dto.WarehouseItemRequest{badCurrency},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetch_AplicaScopeYTope(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, nil)

	_, err := uc.Fetch(7)
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultFetchLimit, repo.fetchLimit)
	assert.False(t, repo.fetchScope.All)
	assert.Equal(t, int64(7), repo.fetchScope.ProjectID)

	_, err = uc.Fetch(domain.GlobalProjectID)
	require.NoError(t, err)
	assert.True(t, repo.fetchScope.All, "el proyecto global ve todo")
}

func TestFetch_ProyectoInvalido(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)
	_, err := uc.Fetch(0)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFetchByIDs_IDsVacios(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)
	_, err := uc.FetchByIDs(7, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_NoVisibleEsNotFound(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)
	_, err := uc.GetByID(7, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFilter_FechaInvalida(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&fakeWarehouseRepo{}, nil)
	_, err := uc.Filter(7, dto.WarehouseFilterData{CreatedAt: strPtr("01/02/2025")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilter_NormalizaUnidadYParseaFecha(t *testing.T) {
	repo := &fakeWarehouseRepo{}
	uc := usecase.NewWarehouseUseCase(repo, nil)

	_, err := uc.Filter(7, dto.WarehouseFilterData{
		Unit:      strPtr(" Meter "),
		CreatedAt: strPtr("2025-03-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.filterCrit.Unit)
	assert.Equal(t, "meter", *repo.filterCrit.Unit)
	require.NotNil(t, repo.filterCrit.CreatedAt)
	assert.Equal(t, "2025-03-15", repo.filterCrit.CreatedAt.Format("2006-01-02"))
}

func TestFetch_ProyectaVistas(t *testing.T) {
	repo := &fakeWarehouseRepo{views: []*view.WarehouseView{{
		ID:           1,
		MaterialName: "cable 3x2.5",
		Qty:          decimal.RequireFromString("100"),
		LeftOver:     decimal.RequireFromString("60"),
		Unit:         "meter",
		MaterialCode: "100000",
		Category:     "ELECTRICAL",
		Project:      "PLANTA NORTE",
		Ordered:      view.NotAvailable,
		Company:      view.NotAvailable,
		ProjectID:    7,
	}}}
	uc := usecase.NewWarehouseUseCase(repo, nil)

	out, err := uc.Fetch(7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "N/A", out[0].Ordered, "relación ausente se proyecta como centinela")
	assert.Equal(t, "PLANTA NORTE", out[0].Project)
}
