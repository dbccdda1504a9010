package dataset

import (
	"testing"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestQuery_SortedByFRPDescendingStable(t *testing.T) {
	table := fixture(t)

	rows, err := table.Query(Filter{})
	require.NoError(t, err)
	// B e E têm FRP 50: a ordem original é mantida
	assert.Equal(t, []string{"D", "C", "B", "E", "F", "A"}, municipios(rows))
}

func TestQuery_Limit(t *testing.T) {
	table := fixture(t)

	tests := []struct {
		name  string
		limit *int
		want  []string
	}{
		{"padrão", nil, []string{"D", "C", "B", "E", "F", "A"}},
		{"dois", intPtr(2), []string{"D", "C"}},
		{"zero", intPtr(0), []string{}},
		{"maior que a tabela", intPtr(5000), []string{"D", "C", "B", "E", "F", "A"}},
		{"negativo remove do fim", intPtr(-2), []string{"D", "C", "B", "E"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := table.Query(Filter{Limit: tt.limit})
			require.NoError(t, err)
			assert.NotNil(t, rows)
			assert.Equal(t, tt.want, municipios(rows))
			if tt.limit != nil && *tt.limit >= 0 {
				assert.LessOrEqual(t, len(rows), *tt.limit)
			}
		})
	}
}

func TestQuery_SentinelMatchesUnfiltered(t *testing.T) {
	table := fixture(t)

	all, err := table.Query(Filter{})
	require.NoError(t, err)
	sentinel, err := table.Query(Filter{Estado: models.TodosEstados, Bioma: models.TodosBiomas})
	require.NoError(t, err)

	assert.Equal(t, municipios(all), municipios(sentinel))
}

func TestQuery_ExactCaseSensitiveMatch(t *testing.T) {
	table := fixture(t)

	rows, err := table.Query(Filter{Estado: "PA", Bioma: "Amazonia"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, municipios(rows))

	rows, err = table.Query(Filter{Estado: "pa"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuery_SeverityBoundaries(t *testing.T) {
	table := fixture(t)

	tests := []struct {
		severity string
		want     []string
	}{
		{"baixa", []string{"A"}},
		{"media", []string{"B", "E", "F"}},
		{"medium", []string{"B", "E", "F"}},
		{"alta", []string{"C"}},
		{"high", []string{"C"}},
		{"critica", []string{"D"}},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			sev, ok := ParseSeverity(tt.severity)
			require.True(t, ok)

			rows, err := table.Query(Filter{Criticidade: sev})
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, municipios(rows))
		})
	}
}

func TestSeverity_FiftyBoundary(t *testing.T) {
	assert.True(t, SeverityMedia.Contains(50))
	assert.False(t, SeverityAlta.Contains(50))
	assert.True(t, SeverityAlta.Contains(50.01))
	assert.True(t, SeverityMedia.Contains(10))
	assert.False(t, SeverityBaixa.Contains(10))
	assert.True(t, SeverityAlta.Contains(100))
	assert.False(t, SeverityCritica.Contains(100))

	_, ok := ParseSeverity("extrema")
	assert.False(t, ok)
}

func TestQuery_DateBounds(t *testing.T) {
	table := fixture(t)

	rows, err := table.Query(Filter{DataInicio: "2025-11-02", DataFim: "2025-11-04"})
	require.NoError(t, err)
	// data_fim sem hora é meia-noite: D (04/11 13h) fica de fora; F não tem data
	assert.ElementsMatch(t, []string{"B", "C"}, municipios(rows))

	rows, err = table.Query(Filter{DataInicio: "2025-11-04 13:00:00"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"D", "E"}, municipios(rows))
}

func TestQuery_UnparseableDateBoundIsIgnored(t *testing.T) {
	table := fixture(t)

	rows, err := table.Query(Filter{DataInicio: "ontem", DataFim: "amanhã"})
	require.NoError(t, err)
	assert.Len(t, rows, table.Len())
}

func TestQuery_FRPBoundsInclusive(t *testing.T) {
	table := fixture(t)

	rows, err := table.Query(Filter{FRPMin: floatPtr(50), FRPMax: floatPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "E"}, municipios(rows))
}

func TestQuery_DoesNotMutateTable(t *testing.T) {
	table := fixture(t)
	before := municipios(table.Records())

	rows, err := table.Query(Filter{})
	require.NoError(t, err)
	rows[0].Municipio = "alterado"

	assert.Equal(t, before, municipios(table.Records()))
}

func TestFilter_KeepsOriginalOrderWithoutLimit(t *testing.T) {
	table := fixture(t)

	rows := table.Filter(Filter{Estado: "PA", Limit: intPtr(1)})
	assert.Equal(t, []string{"A", "C", "E"}, municipios(rows))
}
