package dataset

import (
	"time"
	"unsafe"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// Table é o dataset limpo, imutável após o carregamento.
// Todas as leituras devolvem cópias; a fatia interna nunca sai do pacote.
type Table struct {
	records  []models.Foco
	columns  []string
	warnings []string
}

// Len retorna o número de registros
func (t *Table) Len() int {
	return len(t.records)
}

// Columns retorna as colunas na ordem de serialização
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn indica se a coluna existe na tabela limpa (inclui colunas sintetizadas)
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

// Warnings retorna os avisos de colunas ausentes gerados no carregamento
func (t *Table) Warnings() []string {
	return append([]string(nil), t.warnings...)
}

// Records retorna uma cópia de todos os registros
func (t *Table) Records() []models.Foco {
	return head(t.records, len(t.records))
}

// Head retorna uma cópia das n primeiras linhas
func (t *Table) Head(n int) []models.Foco {
	return head(t.records, n)
}

// Coverage retorna o menor e o maior data_hora_gmt válidos
func (t *Table) Coverage() (first, last *time.Time) {
	for _, r := range t.records {
		if r.DataHora == nil {
			continue
		}
		if first == nil || r.DataHora.Before(*first) {
			first = r.DataHora
		}
		if last == nil || r.DataHora.After(*last) {
			last = r.DataHora
		}
	}
	return first, last
}

// MemoryEstimate estima o tamanho em bytes dos registros em memória
func (t *Table) MemoryEstimate() int64 {
	var total int64
	for _, r := range t.records {
		total += int64(unsafe.Sizeof(r))
		total += int64(len(r.Municipio) + len(r.Estado) + len(r.Bioma) + len(r.Pais) + len(r.Satelite) + len(r.RiscoFogo))
		if r.DataHora != nil {
			total += int64(unsafe.Sizeof(*r.DataHora))
		}
		for k, v := range r.Extras {
			total += int64(len(k) + len(v) + 2*int(unsafe.Sizeof("")))
		}
	}
	return total
}

// head copia as n primeiras linhas. n negativo mantém todas menos as |n| últimas.
func head(rows []models.Foco, n int) []models.Foco {
	switch {
	case n < 0:
		n = len(rows) + n
		if n < 0 {
			n = 0
		}
	case n > len(rows):
		n = len(rows)
	}
	out := make([]models.Foco, n)
	copy(out, rows[:n])
	return out
}
