package dataset

import (
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `municipio,estado,bioma,frp,data_hora_gmt,lat
A,PA,Amazonia,5,2025-11-01 10:00:00,-3.1
B,MT,Cerrado,50,2025-11-02 11:00:00,-12.5
C,PA,Amazonia,50.01,2025-11-03 12:00:00,-4.0
D,MT,Cerrado,120,2025-11-04 13:00:00,-13.2
E,PA,Cerrado,50,2025-11-05 14:00:00,
F,MA,Amazonia,10,,-5.5
`

func loadString(t *testing.T, data string) *Table {
	t.Helper()
	table, err := LoadReader(strings.NewReader(data))
	require.NoError(t, err)
	return table
}

func fixture(t *testing.T) *Table {
	t.Helper()
	return loadString(t, fixtureCSV)
}

func municipios(rows []models.Foco) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Municipio
	}
	return out
}
