package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appreport "github.com/tu-usuario/hotelstock-api/internal/application/report"
	"github.com/tu-usuario/hotelstock-api/internal/domain"
	"github.com/tu-usuario/hotelstock-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con fakes
// ──────────────────────────────────────────────────────────────────────────────

type ucFixture struct {
	uc         *appreport.UseCase
	reportRepo *fakeReportRepo
	products   *fakeProductRepo
	movements  *fakeMovementRepo
	deliveries *fakeDeliveryRepo
	snapshots  *fakeSnapshotRepo
}

func newFixture() *ucFixture {
	f := &ucFixture{
		reportRepo: newFakeReportRepo(),
		snapshots:  &fakeSnapshotRepo{},
		movements:  &fakeMovementRepo{net: map[string]decimal.Decimal{}, purchases: map[string]decimal.Decimal{}},
		deliveries: &fakeDeliveryRepo{},
		products: &fakeProductRepo{products: []*entity.Product{
			{ID: "prod-1", PropertyID: "prop-1", Name: "Café molido", CurrentStock: d("80")},
			{ID: "prod-2", PropertyID: "prop-1", Name: "Detergente", CurrentStock: d("40")},
		}},
	}
	log := testLogger()
	resolver := appreport.NewSnapshotResolver(f.snapshots, f.products, f.movements)
	aggregator := appreport.NewMovementAggregator(f.movements, f.deliveries, &fakeTransferRepo{}, log)
	properties := &fakePropertyRepo{properties: []*entity.Property{{ID: "prop-1", Name: "Hotel Centro"}}}
	f.uc = appreport.NewUseCase(
		f.reportRepo, f.products, properties, resolver, aggregator,
		appreport.Options{ChunkSize: 1, ChunkDelay: 0}, log,
	)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_CreaFilasPorProducto(t *testing.T) {
	f := newFixture()
	f.snapshots.snapshot = &entity.StockSnapshot{
		PropertyID: "prop-1",
		Date:       periodStart.AddDate(0, 0, -1),
		Quantities: map[string]decimal.Decimal{"prod-1": d("100"), "prod-2": d("50")},
	}
	f.movements.purchases["prod-1"] = d("40")
	f.deliveries.deliveries = []*entity.SectorDelivery{
		{PropertyID: "prop-1", ProductID: "prod-1", SectorID: "s1", SectorName: "Cocina", Quantity: d("55"), CompletedAt: periodStart.AddDate(0, 0, 2)},
	}

	full, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)
	require.Len(t, full.Items, 2)
	assert.False(t, full.Reused)
	assert.Equal(t, periodStart, full.PeriodStart)
	assert.Equal(t, periodStart.AddDate(0, 0, appreport.PeriodDays), full.PeriodEnd)

	row := full.Items[0]
	assert.Equal(t, "prod-1", row.ProductID)
	assert.True(t, d("100").Equal(row.InitialStock))
	assert.True(t, d("40").Equal(row.Purchases))
	assert.True(t, row.Sales.IsZero(), "ventas nacen en cero")
	assert.True(t, row.Losses.IsZero(), "mermas nacen en cero")
	assert.True(t, d("80").Equal(row.FinalStock), "final = stock actual del producto")
	require.Len(t, row.SectorMovements, 1)
	assert.True(t, d("55").Equal(row.SectorMovements[0].Quantity))
}

// Identidad de balance: calculated_final_stock == inicial + compras - Σ(entregas).
func TestGenerate_IdentidadDeBalanceDeBodega(t *testing.T) {
	f := newFixture()
	f.snapshots.snapshot = &entity.StockSnapshot{
		PropertyID: "prop-1",
		Date:       periodStart,
		Quantities: map[string]decimal.Decimal{"prod-1": d("100"), "prod-2": d("50")},
	}
	f.movements.purchases["prod-1"] = d("40")
	f.deliveries.deliveries = []*entity.SectorDelivery{
		{PropertyID: "prop-1", ProductID: "prod-1", SectorID: "s1", SectorName: "Cocina", Quantity: d("55"), CompletedAt: periodStart.AddDate(0, 0, 1)},
	}

	full, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)

	for _, item := range full.Items {
		delivered := decimal.Zero
		for _, m := range item.SectorMovements {
			delivered = delivered.Add(m.Quantity)
		}
		expected := item.InitialStock.Add(item.Purchases).Sub(delivered)
		assert.True(t, expected.Equal(item.CalculatedFinalStock),
			"producto %s: esperado %s, obtenido %s", item.ProductID, expected, item.CalculatedFinalStock)
		assert.True(t, item.FinalStock.Sub(item.CalculatedFinalStock).Equal(item.Loss))
	}
}

// Idempotencia: generar dos veces el mismo período devuelve el mismo reporte
// con las mismas filas, sin duplicar nada.
func TestGenerate_Idempotente(t *testing.T) {
	f := newFixture()

	first, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)
	second, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "el id del reporte debe ser el mismo")
	assert.True(t, second.Reused, "la segunda llamada debe reutilizar")
	require.Equal(t, len(first.Items), len(second.Items), "no deben duplicarse filas")

	firstIDs := map[string]bool{}
	for _, item := range first.Items {
		firstIDs[item.ID] = true
	}
	for _, item := range second.Items {
		assert.True(t, firstIDs[item.ID], "la fila %s debe ser una de las originales", item.ID)
	}
}

// Falla blanda por producto: si la resolución de inicial falla para un
// producto, su fila queda en ceros (marcada) y el resto se genera normal.
func TestGenerate_FallaPorProducto_FilaEnCeros(t *testing.T) {
	f := newFixture()
	f.snapshots.snapshot = &entity.StockSnapshot{
		PropertyID: "prop-1",
		Date:       periodStart,
		Quantities: map[string]decimal.Decimal{"prod-1": d("100")},
	}
	// prod-2 no está en el snapshot y la reconstrucción inversa falla
	f.movements.netErr = errors.New("historial inaccesible")

	full, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err, "una falla por producto no debe abortar la generación")
	require.Len(t, full.Items, 2)

	byProduct := map[string]bool{}
	for _, item := range full.Items {
		byProduct[item.ProductID] = item.ZeroFilled
		if item.ProductID == "prod-2" {
			assert.True(t, item.InitialStock.IsZero())
			assert.True(t, item.FinalStock.IsZero())
		}
	}
	assert.False(t, byProduct["prod-1"], "prod-1 resuelve por snapshot, no debe marcarse")
	assert.True(t, byProduct["prod-2"], "prod-2 debe quedar marcado como fila en ceros")
}

// Falla de nivel superior: el fetch del catálogo aborta la generación completa.
func TestGenerate_FallaDeCatalogo_Aborta(t *testing.T) {
	f := newFixture()
	f.products.listErr = errors.New("catálogo caído")

	_, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	assert.Error(t, err)
}

func TestGenerate_PropiedadInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Generate(context.Background(), "prop-999", periodStart)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_EntradaInvalida(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Generate(context.Background(), "", periodStart)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.Generate(context.Background(), "prop-1", time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura, edición manual y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestGetReportData_ReporteInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.GetReportData(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_FijaVentasYMermas(t *testing.T) {
	f := newFixture()
	full, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)

	itemID := full.Items[0].ID
	require.NoError(t, f.uc.UpdateItem(context.Background(), itemID, d("12"), d("-2")))

	reread, err := f.uc.GetReportData(context.Background(), full.ID)
	require.NoError(t, err)
	for _, item := range reread.Items {
		if item.ID != itemID {
			continue
		}
		assert.True(t, d("12").Equal(item.Sales))
		assert.True(t, d("-2").Equal(item.Losses), "una merma negativa (sobrante) debe almacenarse tal cual")
	}
}

func TestUpdateItem_VentasNegativas_Invalido(t *testing.T) {
	f := newFixture()
	err := f.uc.UpdateItem(context.Background(), "item-1", d("-1"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_EliminaYPermiteRegenerar(t *testing.T) {
	f := newFixture()
	full, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), full.ID))

	_, err = f.uc.GetReportData(context.Background(), full.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Tras borrar, el período vuelve a estar libre: regenerar crea un reporte nuevo
	again, err := f.uc.Generate(context.Background(), "prop-1", periodStart)
	require.NoError(t, err)
	assert.False(t, again.Reused)
	assert.NotEqual(t, full.ID, again.ID)
}
