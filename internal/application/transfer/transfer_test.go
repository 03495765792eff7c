package transfer_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/transfer"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/view"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: estado compartido + TxRunner con semántica de rollback real
// (copia el estado, ejecuta y solo publica si la operación entera tuvo éxito).
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	warehouses map[int64]*entity.Warehouse
	stocks     map[int64]*entity.Stock
	areas      map[int64]*entity.Area

	warehouseLogs []*entity.WarehouseMovementLog
	stockLogs     []*entity.StockMovementLog
	areaLogs      []*entity.AreaMovementLog

	nextStockID int64
	nextAreaID  int64
}

func newMemState() *memState {
	return &memState{
		warehouses:  map[int64]*entity.Warehouse{},
		stocks:      map[int64]*entity.Stock{},
		areas:       map[int64]*entity.Area{},
		nextStockID: 1,
		nextAreaID:  1,
	}
}

func (s *memState) clone() *memState {
	c := newMemState()
	for id, w := range s.warehouses {
		cp := *w
		c.warehouses[id] = &cp
	}
	for id, st := range s.stocks {
		cp := *st
		c.stocks[id] = &cp
	}
	for id, a := range s.areas {
		cp := *a
		c.areas[id] = &cp
	}
	c.warehouseLogs = append(c.warehouseLogs, s.warehouseLogs...)
	c.stockLogs = append(c.stockLogs, s.stockLogs...)
	c.areaLogs = append(c.areaLogs, s.areaLogs...)
	c.nextStockID = s.nextStockID
	c.nextAreaID = s.nextAreaID
	return c
}

type memTxRunner struct {
	state *memState
}

func (r *memTxRunner) Run(_ context.Context, fn func(repos transfer.Repos) error) error {
	work := r.state.clone()
	repos := transfer.Repos{
		Warehouses: &memWarehouseRepo{s: work},
		Stocks:     &memStockRepo{s: work},
		Areas:      &memAreaRepo{s: work},
		Logs:       &memLogRepo{s: work},
	}
	if err := fn(repos); err != nil {
		return err // rollback: se descarta la copia
	}
	r.state = work
	return nil
}

type memWarehouseRepo struct{ s *memState }

func (r *memWarehouseRepo) CreateBatch(lots []*entity.Warehouse) error {
	for _, w := range lots {
		r.s.warehouses[w.ID] = w
	}
	return nil
}

func (r *memWarehouseRepo) GetForUpdate(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWarehouseRepo) AdjustLeftOver(id int64, delta decimal.Decimal) error {
	r.s.warehouses[id].LeftOver = r.s.warehouses[id].LeftOver.Add(delta)
	return nil
}

func (r *memWarehouseRepo) Update(lot *entity.Warehouse) error {
	cp := *lot
	r.s.warehouses[lot.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) Fetch(domain.Scope, int) ([]*view.WarehouseView, error) {
	return nil, nil
}
func (r *memWarehouseRepo) FetchByIDs(domain.Scope, []int64) ([]*view.WarehouseView, error) {
	return nil, nil
}
func (r *memWarehouseRepo) GetByID(domain.Scope, int64) (*view.WarehouseView, error) {
	return nil, nil
}
func (r *memWarehouseRepo) Filter(domain.Scope, view.WarehouseFilter) ([]*view.WarehouseView, error) {
	return nil, nil
}

type memStockRepo struct{ s *memState }

func (r *memStockRepo) CreateBatch(lots []*entity.Stock) error {
	for _, lot := range lots {
		lot.ID = r.s.nextStockID
		r.s.nextStockID++
		cp := *lot
		r.s.stocks[lot.ID] = &cp
	}
	return nil
}

func (r *memStockRepo) GetForUpdate(id int64) (*entity.Stock, error) {
	lot, ok := r.s.stocks[id]
	if !ok {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

func (r *memStockRepo) AdjustLeftOver(id int64, delta decimal.Decimal) error {
	r.s.stocks[id].LeftOver = r.s.stocks[id].LeftOver.Add(delta)
	return nil
}

func (r *memStockRepo) ReduceOnReturn(id int64, qty decimal.Decimal) error {
	lot := r.s.stocks[id]
	lot.LeftOver = lot.LeftOver.Sub(qty)
	lot.Quantity = lot.Quantity.Sub(qty)
	return nil
}

func (r *memStockRepo) Fetch(domain.Scope, int) ([]*view.StockView, error)          { return nil, nil }
func (r *memStockRepo) FetchByIDs(domain.Scope, []int64) ([]*view.StockView, error) { return nil, nil }
func (r *memStockRepo) GetByID(domain.Scope, int64) (*view.StockView, error)        { return nil, nil }
func (r *memStockRepo) Filter(domain.Scope, view.StockFilter) ([]*view.StockView, error) {
	return nil, nil
}

type memAreaRepo struct{ s *memState }

func (r *memAreaRepo) CreateBatch(records []*entity.Area) error {
	for _, a := range records {
		a.ID = r.s.nextAreaID
		r.s.nextAreaID++
		cp := *a
		r.s.areas[a.ID] = &cp
	}
	return nil
}

func (r *memAreaRepo) GetForUpdate(scope domain.Scope, id int64) (*entity.Area, error) {
	a, ok := r.s.areas[id]
	if !ok || !scope.Admits(a.ProjectID) {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAreaRepo) AdjustQuantity(id int64, delta decimal.Decimal) error {
	r.s.areas[id].Quantity = r.s.areas[id].Quantity.Add(delta)
	return nil
}

func (r *memAreaRepo) Fetch(domain.Scope, int) ([]*view.AreaView, error)   { return nil, nil }
func (r *memAreaRepo) GetByID(domain.Scope, int64) (*view.AreaView, error) { return nil, nil }
func (r *memAreaRepo) Filter(domain.Scope, view.AreaFilter) ([]*view.AreaView, error) {
	return nil, nil
}

type memLogRepo struct{ s *memState }

func (r *memLogRepo) InsertWarehouseLog(log *entity.WarehouseMovementLog) error {
	r.s.warehouseLogs = append(r.s.warehouseLogs, log)
	return nil
}
func (r *memLogRepo) InsertStockLog(log *entity.StockMovementLog) error {
	r.s.stockLogs = append(r.s.stockLogs, log)
	return nil
}
func (r *memLogRepo) InsertAreaLog(log *entity.AreaMovementLog) error {
	r.s.areaLogs = append(r.s.areaLogs, log)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newEngine(state *memState, policy transfer.LogPolicy) (*transfer.Engine, *memTxRunner) {
	runner := &memTxRunner{state: state}
	return transfer.NewEngine(runner, policy, testLogger()), runner
}

func seedWarehouse(s *memState, id int64, qty, leftOver string, projectID int64) {
	s.warehouses[id] = &entity.Warehouse{
		ID: id, MaterialName: "cable 3x2.5", Qty: dec(qty), LeftOver: dec(leftOver),
		Unit: "meter", ProjectID: projectID, MaterialCodeID: 1, CategoryID: 1, CreatedByID: 1,
	}
}

func seedStock(s *memState, id, warehouseID int64, quantity, leftOver string, projectID int64) {
	s.stocks[id] = &entity.Stock{
		ID: id, Quantity: dec(quantity), LeftOver: dec(leftOver),
		WarehouseID: warehouseID, ProjectID: projectID, CreatedByID: 1,
	}
	if id >= s.nextStockID {
		s.nextStockID = id + 1
	}
}

func seedArea(s *memState, id, stockID int64, quantity string, projectID int64) {
	s.areas[id] = &entity.Area{
		ID: id, Quantity: dec(quantity), ProvideType: "permanent", CardNumber: "c-100",
		Username: "jgarcia", StockID: stockID, ProjectID: projectID, GroupID: 1, CreatedByID: 1,
	}
	if id >= s.nextAreaID {
		s.nextAreaID = id + 1
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión almacén -> stock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: lote qty=100/left_over=100, se emiten 40 -> almacén queda en 60
// y nace un lote de stock quantity=40/left_over=40.
func TestIssueStock_EscenarioBasico(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "100", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 10, Quantity: dec("40"), ProjectID: 7}},
	})
	require.NoError(t, err)

	wh := runner.state.warehouses[10]
	assert.True(t, wh.LeftOver.Equal(dec("60")), "left_over del almacén debe quedar en 60, quedó %s", wh.LeftOver)
	assert.True(t, wh.Qty.Equal(dec("100")), "qty original no se toca")

	require.Len(t, runner.state.stocks, 1)
	for _, lot := range runner.state.stocks {
		assert.True(t, lot.Quantity.Equal(dec("40")))
		assert.True(t, lot.LeftOver.Equal(dec("40")))
		assert.Equal(t, int64(10), lot.WarehouseID)
		assert.Equal(t, int64(5), lot.CreatedByID)
	}
}

// Conservación: lo que baja en el origen sube exactamente en el destino.
func TestIssueStock_Conservacion(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "73.5", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 10, Quantity: dec("12.25"), ProjectID: 7}},
	})
	require.NoError(t, err)

	delta := dec("73.5").Sub(runner.state.warehouses[10].LeftOver)
	var created decimal.Decimal
	for _, lot := range runner.state.stocks {
		created = created.Add(lot.Quantity)
	}
	assert.True(t, delta.Equal(created), "Δ origen (%s) debe igualar Δ destino (%s)", delta, created)
}

// Lote de 3 líneas donde la 2 excede el left_over: cero filas mutadas.
func TestIssueStock_LoteAtomicoFallaRapida(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "50", "50", 7)
	seedWarehouse(state, 2, "10", "10", 7)
	seedWarehouse(state, 3, "30", "30", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines: []transfer.IssueLine{
			{WarehouseID: 1, Quantity: dec("20"), ProjectID: 7},
			{WarehouseID: 2, Quantity: dec("999"), ProjectID: 7}, // excede
			{WarehouseID: 3, Quantity: dec("5"), ProjectID: 7},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var qtyErr *domain.QuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, 2, qtyErr.Row, "debe reportar la primera línea que falla")

	// Nada se aplicó: ni la línea 1 que ya había pasado su validación.
	assert.True(t, runner.state.warehouses[1].LeftOver.Equal(dec("50")))
	assert.True(t, runner.state.warehouses[2].LeftOver.Equal(dec("10")))
	assert.True(t, runner.state.warehouses[3].LeftOver.Equal(dec("30")))
	assert.Empty(t, runner.state.stocks)
}

func TestIssueStock_CantidadNoPositiva(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "50", "50", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	for _, q := range []string{"0", "-3"} {
		err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
			ProjectID: 7,
			Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec(q), ProjectID: 7}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %s debe rechazarse", q)
	}
	assert.True(t, runner.state.warehouses[1].LeftOver.Equal(dec("50")))
}

func TestIssueStock_LoteVacio(t *testing.T) {
	engine, _ := newEngine(newMemState(), transfer.DefaultLogPolicy())
	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{ProjectID: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssueStock_ProyectosMezclados(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "50", "50", 7)
	seedWarehouse(state, 2, "50", "50", 8)
	engine, _ := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines: []transfer.IssueLine{
			{WarehouseID: 1, Quantity: dec("1"), ProjectID: 7},
			{WarehouseID: 2, Quantity: dec("1"), ProjectID: 8},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "líneas de proyectos distintos deben rechazarse")
}

func TestIssueStock_CabeceraDeOtroProyecto(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "50", "50", 8)
	engine, _ := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec("1"), ProjectID: 8}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// La cabecera del proyecto global opera sobre líneas de cualquier proyecto.
func TestIssueStock_CabeceraGlobal(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "50", "50", 8)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: domain.GlobalProjectID,
		Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec("10"), ProjectID: 8}},
	})
	require.NoError(t, err)
	assert.True(t, runner.state.warehouses[1].LeftOver.Equal(dec("40")))
}

// Con la política por defecto la emisión no deja bitácora; con la completa sí.
func TestIssueStock_PoliticaDeBitacora(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "100", "100", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	require.NoError(t, engine.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec("10"), ProjectID: 7}},
	}))
	assert.Empty(t, runner.state.stockLogs, "política por defecto: emisión sin bitácora")

	engineFull, runnerFull := newEngine(runner.state, transfer.FullLogPolicy())
	require.NoError(t, engineFull.IssueStock(context.Background(), 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec("10"), ProjectID: 7}},
	}))
	require.Len(t, runnerFull.state.stockLogs, 1)
	log := runnerFull.state.stockLogs[0]
	assert.Equal(t, entity.MovementIssueToStock, log.MovementType)
	assert.True(t, log.OldLeftOver.Equal(dec("90")))
	assert.True(t, log.ReturnQuantity.Equal(dec("10")))
	assert.True(t, log.NewLeftOver.Equal(dec("80")))
	assert.NotEmpty(t, log.TransactionID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reparto stock -> área
// ──────────────────────────────────────────────────────────────────────────────

// Escenario B: stock quantity=40/left_over=40, se reparten 15 -> stock left_over=25,
// área quantity=15.
func TestAllocateArea_EscenarioBasico(t *testing.T) {
	state := newMemState()
	seedStock(state, 20, 10, "40", "40", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.AllocateArea(context.Background(), 5, transfer.AllocateAreaInput{
		ProjectID:  7,
		CardNumber: "  C-4411 ",
		Username:   " JGarcia ",
		GroupID:    3,
		Lines: []transfer.AllocateLine{
			{StockID: 20, Quantity: dec("15"), ProvideType: "Permanent", ProjectID: 7},
		},
	})
	require.NoError(t, err)

	lot := runner.state.stocks[20]
	assert.True(t, lot.LeftOver.Equal(dec("25")))
	assert.True(t, lot.Quantity.Equal(dec("40")), "quantity del stock no cambia al repartir")

	require.Len(t, runner.state.areas, 1)
	for _, rec := range runner.state.areas {
		assert.True(t, rec.Quantity.Equal(dec("15")))
		assert.Equal(t, "c-4411", rec.CardNumber, "la cabecera se normaliza")
		assert.Equal(t, "jgarcia", rec.Username)
		assert.Equal(t, "permanent", rec.ProvideType)
		assert.Equal(t, int64(3), rec.GroupID)
		assert.Equal(t, int64(5), rec.CreatedByID)
	}
}

func TestAllocateArea_LoteAtomicoFallaRapida(t *testing.T) {
	state := newMemState()
	seedStock(state, 1, 10, "40", "40", 7)
	seedStock(state, 2, 10, "5", "5", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.AllocateArea(context.Background(), 5, transfer.AllocateAreaInput{
		ProjectID: 7, CardNumber: "c-1", Username: "u", GroupID: 1,
		Lines: []transfer.AllocateLine{
			{StockID: 1, Quantity: dec("10"), ProvideType: "temp", ProjectID: 7},
			{StockID: 2, Quantity: dec("6"), ProvideType: "temp", ProjectID: 7}, // excede
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, runner.state.stocks[1].LeftOver.Equal(dec("40")), "rollback completo")
	assert.True(t, runner.state.stocks[2].LeftOver.Equal(dec("5")))
	assert.Empty(t, runner.state.areas)
}

func TestAllocateArea_StockInexistente(t *testing.T) {
	engine, _ := newEngine(newMemState(), transfer.DefaultLogPolicy())
	err := engine.AllocateArea(context.Background(), 5, transfer.AllocateAreaInput{
		ProjectID: 7, CardNumber: "c", Username: "u", GroupID: 1,
		Lines: []transfer.AllocateLine{{StockID: 99, Quantity: dec("1"), ProvideType: "t", ProjectID: 7}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAllocateArea_BitacoraConPoliticaCompleta(t *testing.T) {
	state := newMemState()
	seedStock(state, 1, 10, "40", "40", 7)
	engine, runner := newEngine(state, transfer.FullLogPolicy())

	require.NoError(t, engine.AllocateArea(context.Background(), 5, transfer.AllocateAreaInput{
		ProjectID: 7, CardNumber: "c", Username: "u", GroupID: 1,
		Lines: []transfer.AllocateLine{{StockID: 1, Quantity: dec("15"), ProvideType: "t", ProjectID: 7}},
	}))

	require.Len(t, runner.state.areaLogs, 1)
	log := runner.state.areaLogs[0]
	assert.Equal(t, entity.MovementProvideToArea, log.MovementType)
	assert.True(t, log.OldQuantity.Equal(dec("40")))
	assert.True(t, log.ReturnQuantity.Equal(dec("15")))
	assert.Equal(t, int64(1), log.StockID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devolución área -> stock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario C: área quantity=15, se devuelven 5 -> área 10, stock left_over +5,
// y una fila de bitácora con old_quantity=15 y return_quantity=5.
func TestReturnAreaToStock_EscenarioBasico(t *testing.T) {
	state := newMemState()
	seedStock(state, 20, 10, "40", "25", 7)
	seedArea(state, 30, 20, "15", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	scope, err := domain.ScopeForProject(7)
	require.NoError(t, err)

	err = engine.ReturnAreaToStock(context.Background(), 5, scope, transfer.ReturnAreaInput{
		AreaID: 30, StockID: 20, Quantity: dec("5"),
	})
	require.NoError(t, err)

	assert.True(t, runner.state.areas[30].Quantity.Equal(dec("10")))
	assert.True(t, runner.state.stocks[20].LeftOver.Equal(dec("30")))
	assert.True(t, runner.state.stocks[20].Quantity.Equal(dec("40")), "quantity del stock no cambia en esta devolución")

	require.Len(t, runner.state.areaLogs, 1)
	log := runner.state.areaLogs[0]
	assert.Equal(t, entity.MovementReturnToStock, log.MovementType)
	assert.True(t, log.OldQuantity.Equal(dec("15")))
	assert.True(t, log.ReturnQuantity.Equal(dec("5")))
	assert.Equal(t, int64(30), log.AreaID)
	assert.Equal(t, int64(5), log.CreatedByID)
}

func TestReturnAreaToStock_MasDeLoRepartido(t *testing.T) {
	state := newMemState()
	seedStock(state, 20, 10, "40", "25", 7)
	seedArea(state, 30, 20, "15", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	scope, _ := domain.ScopeForProject(7)
	err := engine.ReturnAreaToStock(context.Background(), 5, scope, transfer.ReturnAreaInput{
		AreaID: 30, StockID: 20, Quantity: dec("16"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.True(t, runner.state.areas[30].Quantity.Equal(dec("15")))
	assert.True(t, runner.state.stocks[20].LeftOver.Equal(dec("25")))
	assert.Empty(t, runner.state.areaLogs, "un intento fallido no deja bitácora")
}

// Un área de otro proyecto es invisible para el caller: 404, no 403.
func TestReturnAreaToStock_AislamientoPorProyecto(t *testing.T) {
	state := newMemState()
	seedStock(state, 20, 10, "40", "25", 8)
	seedArea(state, 30, 20, "15", 8)
	engine, _ := newEngine(state, transfer.DefaultLogPolicy())

	scope, _ := domain.ScopeForProject(7)
	err := engine.ReturnAreaToStock(context.Background(), 5, scope, transfer.ReturnAreaInput{
		AreaID: 30, StockID: 20, Quantity: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El scope global sí admite áreas de cualquier proyecto.
func TestReturnAreaToStock_ScopeGlobal(t *testing.T) {
	state := newMemState()
	seedStock(state, 20, 10, "40", "25", 8)
	seedArea(state, 30, 20, "15", 8)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	scope, _ := domain.ScopeForProject(domain.GlobalProjectID)
	err := engine.ReturnAreaToStock(context.Background(), 5, scope, transfer.ReturnAreaInput{
		AreaID: 30, StockID: 20, Quantity: dec("5"),
	})
	require.NoError(t, err)
	assert.True(t, runner.state.areas[30].Quantity.Equal(dec("10")))
}

func TestReturnAreaToStock_CantidadNoPositiva(t *testing.T) {
	engine, _ := newEngine(newMemState(), transfer.DefaultLogPolicy())
	scope, _ := domain.ScopeForProject(7)
	err := engine.ReturnAreaToStock(context.Background(), 5, scope, transfer.ReturnAreaInput{
		AreaID: 1, StockID: 1, Quantity: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devolución stock -> almacén
// ──────────────────────────────────────────────────────────────────────────────

// La devolución a almacén retira parte del retiro original: baja quantity Y
// left_over del stock, y sube left_over del almacén.
func TestReturnStockToWarehouse_RetiraElRetiro(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	seedStock(state, 20, 10, "40", "40", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.ReturnStockToWarehouse(context.Background(), 5, transfer.ReturnStockInput{
		StockID: 20, WarehouseID: 10, Quantity: dec("10"),
	})
	require.NoError(t, err)

	lot := runner.state.stocks[20]
	assert.True(t, lot.Quantity.Equal(dec("30")), "quantity también baja")
	assert.True(t, lot.LeftOver.Equal(dec("30")))
	assert.True(t, runner.state.warehouses[10].LeftOver.Equal(dec("70")))

	require.Len(t, runner.state.stockLogs, 1)
	log := runner.state.stockLogs[0]
	assert.Equal(t, entity.MovementReturnToWarehouse, log.MovementType)
	assert.True(t, log.OldQuantity.Equal(dec("40")))
	assert.True(t, log.OldLeftOver.Equal(dec("40")))
	assert.True(t, log.ReturnQuantity.Equal(dec("10")))
	assert.True(t, log.NewLeftOver.Equal(dec("30")))
	assert.Equal(t, int64(10), log.WarehouseID)
}

func TestReturnStockToWarehouse_Conservacion(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	seedStock(state, 20, 10, "40", "33.75", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.ReturnStockToWarehouse(context.Background(), 5, transfer.ReturnStockInput{
		StockID: 20, WarehouseID: 10, Quantity: dec("3.75"),
	})
	require.NoError(t, err)

	deltaStock := dec("33.75").Sub(runner.state.stocks[20].LeftOver)
	deltaWarehouse := runner.state.warehouses[10].LeftOver.Sub(dec("60"))
	assert.True(t, deltaStock.Equal(deltaWarehouse), "magnitudes exactas, sin deriva")
}

func TestReturnStockToWarehouse_MasQueLeftOver(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	seedStock(state, 20, 10, "40", "25", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.ReturnStockToWarehouse(context.Background(), 5, transfer.ReturnStockInput{
		StockID: 20, WarehouseID: 10, Quantity: dec("26"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.True(t, runner.state.stocks[20].LeftOver.Equal(dec("25")))
	assert.True(t, runner.state.warehouses[10].LeftOver.Equal(dec("60")))
}

func TestReturnStockToWarehouse_StockOAlmacenInexistente(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	seedStock(state, 20, 10, "40", "40", 7)
	engine, _ := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.ReturnStockToWarehouse(context.Background(), 5, transfer.ReturnStockInput{
		StockID: 99, WarehouseID: 10, Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = engine.ReturnStockToWarehouse(context.Background(), 5, transfer.ReturnStockInput{
		StockID: 20, WarehouseID: 99, Quantity: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Corrección de cantidad de almacén
// ──────────────────────────────────────────────────────────────────────────────

func updInput(id int64, qty string) transfer.UpdateWarehouseInput {
	return transfer.UpdateWarehouseInput{
		ID: id, MaterialName: "cable 3x2.5", Qty: dec(qty), Unit: "meter",
		ProjectID: 7, MaterialCodeID: 1, CategoryID: 1,
	}
}

// Escenario D: qty=100/left_over=60 (40 emitidos); corrección a 80 se acepta
// porque 80 >= 40, y left_over queda en 80-40=40.
func TestUpdateWarehouse_RecalculaLeftOver(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.UpdateWarehouse(context.Background(), 5, updInput(10, "80"))
	require.NoError(t, err)

	wh := runner.state.warehouses[10]
	assert.True(t, wh.Qty.Equal(dec("80")))
	assert.True(t, wh.LeftOver.Equal(dec("40")))

	require.Len(t, runner.state.warehouseLogs, 1)
	log := runner.state.warehouseLogs[0]
	assert.Equal(t, entity.MovementUpdateQty, log.MovementType)
	assert.True(t, log.OldQuantity.Equal(dec("100")))
	assert.True(t, log.OldLeftOver.Equal(dec("60")))
	assert.True(t, log.NewQuantity.Equal(dec("80")))
	assert.True(t, log.NewLeftOver.Equal(dec("40")))
}

func TestUpdateWarehouse_NoPuedeBajarDeLoEmitido(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7) // 40 ya emitidos
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	err := engine.UpdateWarehouse(context.Background(), 5, updInput(10, "39"))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.True(t, runner.state.warehouses[10].Qty.Equal(dec("100")), "sin cambios tras el rechazo")
	assert.Empty(t, runner.state.warehouseLogs)
}

// Si la cantidad no cambia, es un update descriptivo: sin bitácora y sin tocar left_over.
func TestUpdateWarehouse_SinCambioDeCantidad(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "60", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	in := updInput(10, "100")
	in.MaterialName = "cable 3x4"
	require.NoError(t, engine.UpdateWarehouse(context.Background(), 5, in))

	wh := runner.state.warehouses[10]
	assert.Equal(t, "cable 3x4", wh.MaterialName)
	assert.True(t, wh.LeftOver.Equal(dec("60")))
	assert.Empty(t, runner.state.warehouseLogs)
}

// El update es reemplazo completo: un campo opcional ausente se pierde.
func TestUpdateWarehouse_ReemplazoCompleto(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 10, "100", "100", 7)
	price := dec("12.5")
	state.warehouses[10].Price = &price
	po := "PO-778"
	state.warehouses[10].PONum = &po
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())

	require.NoError(t, engine.UpdateWarehouse(context.Background(), 5, updInput(10, "100")))

	wh := runner.state.warehouses[10]
	assert.Nil(t, wh.Price, "el precio no reenviado no se conserva")
	assert.Nil(t, wh.PONum)
}

func TestUpdateWarehouse_Inexistente(t *testing.T) {
	engine, _ := newEngine(newMemState(), transfer.DefaultLogPolicy())
	err := engine.UpdateWarehouse(context.Background(), 5, updInput(99, "10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes tras secuencias de operaciones
// ──────────────────────────────────────────────────────────────────────────────

// Cadena completa emitir -> repartir -> devolver -> devolver: en cada paso se
// conservan las cantidades y ningún contador queda negativo.
func TestCadenaCompleta_InvariantesDelLibro(t *testing.T) {
	state := newMemState()
	seedWarehouse(state, 1, "100", "100", 7)
	engine, runner := newEngine(state, transfer.DefaultLogPolicy())
	ctx := context.Background()
	scope, _ := domain.ScopeForProject(7)

	require.NoError(t, engine.IssueStock(ctx, 5, transfer.IssueStockInput{
		ProjectID: 7,
		Lines:     []transfer.IssueLine{{WarehouseID: 1, Quantity: dec("40"), ProjectID: 7}},
	}))
	require.NoError(t, engine.AllocateArea(ctx, 5, transfer.AllocateAreaInput{
		ProjectID: 7, CardNumber: "c-1", Username: "u", GroupID: 1,
		Lines: []transfer.AllocateLine{{StockID: 1, Quantity: dec("15"), ProvideType: "t", ProjectID: 7}},
	}))
	require.NoError(t, engine.ReturnAreaToStock(ctx, 5, scope, transfer.ReturnAreaInput{
		AreaID: 1, StockID: 1, Quantity: dec("5"),
	}))
	require.NoError(t, engine.ReturnStockToWarehouse(ctx, 5, transfer.ReturnStockInput{
		StockID: 1, WarehouseID: 1, Quantity: dec("10"),
	}))

	wh := runner.state.warehouses[1]
	lot := runner.state.stocks[1]
	rec := runner.state.areas[1]

	// warehouse: 100 -40 +10 = 70; stock: 40 -10 = 30 qty, left 40-15+5-10 = 20; área: 15-5 = 10
	assert.True(t, wh.LeftOver.Equal(dec("70")))
	assert.True(t, lot.Quantity.Equal(dec("30")))
	assert.True(t, lot.LeftOver.Equal(dec("20")))
	assert.True(t, rec.Quantity.Equal(dec("10")))

	// Invariantes de no-negatividad y cota superior.
	assert.False(t, wh.LeftOver.IsNegative())
	assert.True(t, wh.LeftOver.LessThanOrEqual(wh.Qty))
	assert.False(t, lot.LeftOver.IsNegative())
	assert.True(t, lot.LeftOver.LessThanOrEqual(lot.Quantity))
	assert.False(t, rec.Quantity.IsNegative())

	// Todo lo emitido está repartido entre stock.left_over, área y lo devuelto.
	total := wh.LeftOver.Add(lot.LeftOver).Add(rec.Quantity)
	assert.True(t, total.Equal(dec("100")), "la masa total se conserva, quedó %s", total)
}
