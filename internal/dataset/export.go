package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// ExportFilename monta o nome do anexo CSV para o instante informado
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("incendios_brasil_%s.csv", now.Format("20060102_150405"))
}

// WriteCSV escreve as linhas com o cabeçalho da tabela, em formato relido pelo Load
func (t *Table) WriteCSV(w io.Writer, rows []models.Foco) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	record := make([]string, len(t.columns))
	for _, r := range rows {
		for i, col := range t.columns {
			record[i] = r.CSVValue(col)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("erro ao escrever linha: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
