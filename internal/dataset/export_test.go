package dataset

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 11, 30, 8, 5, 9, 0, time.UTC)
	assert.Equal(t, "incendios_brasil_20251130_080509.csv", ExportFilename(now))
}

func TestWriteCSV_RoundTripKeepsFilteredCount(t *testing.T) {
	table := fixture(t)

	filters := []Filter{
		{},
		{Estado: "PA"},
		{Bioma: "Cerrado", DataInicio: "2025-11-02"},
		{Estado: "MT", DataInicio: "2025-11-01", DataFim: "2025-11-03"},
	}

	for _, f := range filters {
		var buf bytes.Buffer
		require.NoError(t, table.WriteCSV(&buf, table.Filter(f)))

		reloaded, err := LoadReader(&buf)
		require.NoError(t, err)

		f.Limit = intPtr(1 << 20)
		rows, err := table.Query(f)
		require.NoError(t, err)
		assert.Equal(t, len(rows), reloaded.Len(), "filtro %+v", f)
		assert.Equal(t, table.Columns(), reloaded.Columns())
	}
}

func TestWriteCSV_ValuesSurviveReload(t *testing.T) {
	table := loadString(t, "municipio,estado,bioma,frp,data_hora_gmt\nX,PA,Amazonia,\"12,5\",2025-11-01 10:00:00.25\n")

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, table.Records()))

	reloaded, err := LoadReader(&buf)
	require.NoError(t, err)

	orig, again := table.Records()[0], reloaded.Records()[0]
	assert.Equal(t, orig.FRP, again.FRP)
	assert.Equal(t, orig.Estado, again.Estado)
	assert.Equal(t, orig.RiscoFogo, again.RiscoFogo)
	require.NotNil(t, again.DataHora)
	assert.True(t, orig.DataHora.Equal(*again.DataHora))
}
