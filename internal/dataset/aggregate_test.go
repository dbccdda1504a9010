package dataset

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCounts(t *testing.T) {
	table := fixture(t)

	biomas := table.GroupCounts(models.ColBioma)
	assert.Equal(t, []string{"Amazonia", "Cerrado"}, biomas.Keys())
	n, _ := biomas.Get("Cerrado")
	assert.Equal(t, 3, n)

	riscos := table.GroupCounts(models.ColRisco)
	assert.Equal(t, []string{"Alto", "Baixo", "Crítico", "Médio"}, riscos.Keys())
	n, _ = riscos.Get("Alto")
	assert.Equal(t, 3, n)

	unknown := table.GroupCounts("inexistente")
	assert.Equal(t, models.Counts{{Key: models.Desconhecido, Value: 6}}, unknown)
}

func TestCountsByDay_AllRows(t *testing.T) {
	table := fixture(t)

	counts := table.CountsByDay(0)
	assert.Equal(t, []string{"2025-11-01", "2025-11-02", "2025-11-03", "2025-11-04", "2025-11-05"}, counts.Keys())

	total := 0
	for _, e := range counts {
		total += e.Value
	}
	withTimestamp := 0
	for _, r := range table.Records() {
		if r.DataHora != nil {
			withTimestamp++
		}
	}
	assert.Equal(t, withTimestamp, total)
}

func TestCountsByDay_TrailingWindow(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2025, 11, 5, 20, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	table := fixture(t)

	counts := table.CountsByDay(2)
	assert.Equal(t, []string{"2025-11-04", "2025-11-05"}, counts.Keys())

	counts = table.CountsByDay(30)
	assert.Len(t, counts, 5)

	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, table.CountsByDay(7))
}

func TestCountsByDay_VeryLargeWindow(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	table := fixture(t)
	all := table.CountsByDay(0)
	require.Len(t, all, 5)

	for _, dias := range []int{100_000, 200_000, 1_000_000, maxWindowDays + 1, math.MaxInt} {
		assert.Equal(t, all, table.CountsByDay(dias), "dias=%d", dias)
	}
}

func TestCountsByDay_NoTimestampsFallback(t *testing.T) {
	table := loadString(t, "estado,frp\nPA,1\nMT,2\n")

	assert.Equal(t, models.Counts{{Key: PlaceholderDate, Value: 2}}, table.CountsByDay(30))
}

func TestMeanFRPByState(t *testing.T) {
	table := fixture(t)

	means := table.MeanFRPByState(0)
	assert.Equal(t, []string{"MT", "PA", "MA"}, means.Keys())
	mt, _ := means.Get("MT")
	pa, _ := means.Get("PA")
	assert.Equal(t, models.Float(85), mt)
	assert.Equal(t, models.Float(35), pa)

	for _, e := range means {
		v := float64(e.Value)
		assert.Equal(t, math.Round(v*10)/10, v)
	}

	assert.Equal(t, []string{"MT", "PA"}, table.MeanFRPByState(2).Keys())
}

func TestMeanFRPByState_EmptyFallback(t *testing.T) {
	table := loadString(t, "estado,frp\n")

	assert.Equal(t, models.Means{{Key: models.Desconhecido, Value: 0}}, table.MeanFRPByState(10))
}

func TestDistinctValues(t *testing.T) {
	table := fixture(t)

	assert.Equal(t, []string{"MA", "MT", "PA"}, table.DistinctValues(models.ColEstado))
	assert.Equal(t, []string{"Amazonia", "Cerrado"}, table.DistinctValues(models.ColBioma))
	assert.Equal(t, []string{models.Desconhecido}, table.DistinctValues("inexistente"))
}

func TestOverallStatistics(t *testing.T) {
	table := fixture(t)

	m := table.OverallStatistics()
	assert.Equal(t, 6, m.TotalFocos)
	assert.Equal(t, 3, m.TotalEstados)
	assert.Equal(t, 2, m.TotalBiomas)
	assert.Equal(t, models.Float(120), m.MaiorFRP)
	assert.Equal(t, models.Float(5), m.MenorFRP)

	values := []float64{5, 50, 50.01, 120, 50, 10}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	sq := 0.0
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	assert.InDelta(t, mean, float64(m.MediaFRP), 1e-9)
	assert.InDelta(t, math.Sqrt(sq/float64(len(values)-1)), float64(m.DesvioFRP), 1e-9)

	require.NotNil(t, m.DataMaisRecente)
	assert.Equal(t, "2025-11-05T14:00:00Z", *m.DataMaisRecente)

	pa, _ := m.FocosPorEstado.Get("PA")
	assert.Equal(t, 3, pa)
}

func TestOverallStatistics_EmptyTable(t *testing.T) {
	table := loadString(t, "municipio,estado,bioma,frp,data_hora_gmt\n")

	m := table.OverallStatistics()
	assert.Equal(t, 0, m.TotalFocos)
	assert.Equal(t, models.Float(0), m.MediaFRP)
	assert.Equal(t, models.Float(0), m.DesvioFRP)
	assert.Nil(t, m.DataMaisRecente)
}

func TestOverallStatistics_SingleRowStdIsNull(t *testing.T) {
	table := loadString(t, "estado,frp\nPA,7\n")

	body, err := json.Marshal(table.OverallStatistics())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"desvio_frp":null`)
	assert.Contains(t, string(body), `"media_frp":7`)
}

func TestTopAlerts(t *testing.T) {
	table := fixture(t)

	assert.Equal(t, []string{"D", "C"}, municipios(table.TopAlerts(true, DefaultAlertCap)))
	assert.Equal(t, []string{"D", "C", "B"}, municipios(table.TopAlerts(false, 3)))
	assert.Len(t, table.TopAlerts(false, DefaultAlertCap), 6)
}

func TestCoverageAndMemory(t *testing.T) {
	table := fixture(t)

	first, last := table.Coverage()
	require.NotNil(t, first)
	require.NotNil(t, last)
	assert.Equal(t, time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC), *first)
	assert.Equal(t, time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC), *last)
	assert.Positive(t, table.MemoryEstimate())
}
