package dataset

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// DefaultLimit é o limite de linhas de uma consulta sem limit explícito
const DefaultLimit = 1000

// Severity é a faixa de criticidade usada no filtro de /focos.
// Os limites diferem levemente de RiskFromFRP: media inclui 50, alta começa acima de 50.
type Severity string

const (
	SeverityBaixa   Severity = "baixa"
	SeverityMedia   Severity = "media"
	SeverityAlta    Severity = "alta"
	SeverityCritica Severity = "critica"
)

var severityAliases = map[string]Severity{
	"baixa":    SeverityBaixa,
	"low":      SeverityBaixa,
	"media":    SeverityMedia,
	"medium":   SeverityMedia,
	"alta":     SeverityAlta,
	"high":     SeverityAlta,
	"critica":  SeverityCritica,
	"critical": SeverityCritica,
}

// ParseSeverity reconhece os nomes em português e em inglês
func ParseSeverity(s string) (Severity, bool) {
	sev, ok := severityAliases[strings.ToLower(strings.TrimSpace(s))]
	return sev, ok
}

// Contains indica se o FRP pertence à faixa
func (s Severity) Contains(frp float64) bool {
	switch s {
	case SeverityBaixa:
		return frp < 10
	case SeverityMedia:
		return frp >= 10 && frp <= 50
	case SeverityAlta:
		return frp > 50 && frp <= 100
	case SeverityCritica:
		return frp > 100
	}
	return true
}

// Filter reúne os filtros de consulta, combinados por AND.
// Campos vazios ou nil não filtram.
type Filter struct {
	Estado      string
	Bioma       string
	DataInicio  string
	DataFim     string
	FRPMin      *float64
	FRPMax      *float64
	Criticidade Severity
	// Limit nil usa DefaultLimit
	Limit *int
}

func (f Filter) limit() int {
	if f.Limit == nil {
		return DefaultLimit
	}
	return *f.Limit
}

type compiledFilter struct {
	Filter
	from *time.Time
	to   *time.Time
}

func (f Filter) compile() compiledFilter {
	c := compiledFilter{Filter: f}
	if f.DataInicio != "" {
		c.from = ParseTimestamp(f.DataInicio)
	}
	if f.DataFim != "" {
		c.to = ParseTimestamp(f.DataFim)
	}
	return c
}

func (c compiledFilter) match(r models.Foco) bool {
	if c.Estado != "" && c.Estado != models.TodosEstados && r.Estado != c.Estado {
		return false
	}
	if c.Bioma != "" && c.Bioma != models.TodosBiomas && r.Bioma != c.Bioma {
		return false
	}
	if c.from != nil && (r.DataHora == nil || r.DataHora.Before(*c.from)) {
		return false
	}
	if c.to != nil && (r.DataHora == nil || r.DataHora.After(*c.to)) {
		return false
	}
	if c.FRPMin != nil && r.FRP < *c.FRPMin {
		return false
	}
	if c.FRPMax != nil && r.FRP > *c.FRPMax {
		return false
	}
	if c.Criticidade != "" && !c.Criticidade.Contains(r.FRP) {
		return false
	}
	return true
}

// Filter aplica apenas os filtros, preservando a ordem original e sem limite
func (t *Table) Filter(f Filter) []models.Foco {
	c := f.compile()
	out := make([]models.Foco, 0)
	for _, r := range t.records {
		if c.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Query filtra, ordena por FRP decrescente (estável) e trunca em Limit.
// Falhas internas viram ErrQueryFailed; quem chama decide o fallback.
func (t *Table) Query(f Filter) (result []models.Foco, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrQueryFailed, r)
		}
	}()

	rows := t.Filter(f)
	slices.SortStableFunc(rows, func(a, b models.Foco) int {
		return cmp.Compare(b.FRP, a.FRP)
	})
	return head(rows, f.limit()), nil
}
