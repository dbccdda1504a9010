package dataset

import (
	"cmp"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// PlaceholderDate é a chave usada por CountsByDay quando não há datas válidas
const PlaceholderDate = "2024-01-01"

// DefaultAlertCap é o número máximo de alertas retornados
const DefaultAlertCap = 20

// AlertThreshold é o FRP a partir do qual um foco vira alerta crítico
const AlertThreshold = 50.0

// GroupCounts conta as linhas por valor da coluna, em ordem decrescente de contagem.
// Empates mantêm a ordem da primeira ocorrência.
func (t *Table) GroupCounts(column string) models.Counts {
	if !t.HasColumn(column) {
		return models.Counts{{Key: models.Desconhecido, Value: len(t.records)}}
	}

	counts := make(models.Counts, 0)
	pos := make(map[string]int)
	for _, r := range t.records {
		v, _ := r.Text(column)
		if i, ok := pos[v]; ok {
			counts[i].Value++
			continue
		}
		pos[v] = len(counts)
		counts = append(counts, models.Entry[int]{Key: v, Value: 1})
	}

	slices.SortStableFunc(counts, func(a, b models.Entry[int]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return counts
}

// maxWindowDays limita a janela de CountsByDay; acima disso todas as linhas entram
const maxWindowDays = 3_000_000

// CountsByDay conta focos por dia (UTC) nos últimos windowDays dias.
// windowDays <= 0 considera todas as linhas.
func (t *Table) CountsByDay(windowDays int) models.Counts {
	valid := false
	for _, r := range t.records {
		if r.DataHora != nil {
			valid = true
			break
		}
	}
	if !valid {
		return models.Counts{{Key: PlaceholderDate, Value: len(t.records)}}
	}

	var since *time.Time
	if windowDays > 0 && windowDays <= maxWindowDays {
		limit := Now().AddDate(0, 0, -windowDays)
		since = &limit
	}

	byDay := make(map[string]int)
	for _, r := range t.records {
		if r.DataHora == nil {
			continue
		}
		if since != nil && r.DataHora.Before(*since) {
			continue
		}
		byDay[r.DataHora.UTC().Format(time.DateOnly)]++
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	counts := make(models.Counts, 0, len(days))
	for _, d := range days {
		counts = append(counts, models.Entry[int]{Key: d, Value: byDay[d]})
	}
	return counts
}

// MeanFRPByState calcula a média de FRP por estado com uma casa decimal,
// em ordem decrescente. limit <= 0 retorna todos.
func (t *Table) MeanFRPByState(limit int) models.Means {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[string]*acc)
	for _, r := range t.records {
		if math.IsNaN(r.FRP) || math.IsInf(r.FRP, 0) {
			continue
		}
		g, ok := groups[r.Estado]
		if !ok {
			g = &acc{}
			groups[r.Estado] = g
		}
		g.sum += r.FRP
		g.count++
	}

	means := make(models.Means, 0, len(groups))
	for estado, g := range groups {
		if g.count == 0 {
			continue
		}
		means = append(means, models.Entry[models.Float]{Key: estado, Value: models.Float(round1(g.sum / float64(g.count)))})
	}
	if len(means) == 0 {
		return models.Means{{Key: models.Desconhecido, Value: 0}}
	}

	slices.SortFunc(means, func(a, b models.Entry[models.Float]) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if limit > 0 && len(means) > limit {
		means = means[:limit]
	}
	return means
}

// DistinctValues lista os valores distintos não vazios da coluna em ordem crescente
func (t *Table) DistinctValues(column string) []string {
	if !t.HasColumn(column) {
		return []string{models.Desconhecido}
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range t.records {
		v, _ := r.Text(column)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// OverallStatistics calcula as métricas gerais do painel
func (t *Table) OverallStatistics() models.Metricas {
	m := models.Metricas{
		TotalFocos:     len(t.records),
		FocosPorEstado: t.GroupCounts(models.ColEstado),
		TotalEstados:   len(t.DistinctValues(models.ColEstado)),
		TotalBiomas:    len(t.DistinctValues(models.ColBioma)),
	}

	if n := len(t.records); n > 0 {
		sum, lo, hi := 0.0, math.Inf(1), math.Inf(-1)
		for _, r := range t.records {
			sum += r.FRP
			lo = math.Min(lo, r.FRP)
			hi = math.Max(hi, r.FRP)
		}
		mean := sum / float64(n)

		std := math.NaN()
		if n > 1 {
			var sq float64
			for _, r := range t.records {
				d := r.FRP - mean
				sq += d * d
			}
			std = math.Sqrt(sq / float64(n-1))
		}

		m.MediaFRP = models.Float(mean)
		m.MaiorFRP = models.Float(hi)
		m.MenorFRP = models.Float(lo)
		m.DesvioFRP = models.Float(std)
	}

	if _, last := t.Coverage(); last != nil {
		s := last.UTC().Format(time.RFC3339)
		m.DataMaisRecente = &s
	}
	return m
}

// TopAlerts retorna os focos de maior FRP. Com criticalOnly, apenas FRP > 50.
func (t *Table) TopAlerts(criticalOnly bool, limit int) []models.Foco {
	rows := make([]models.Foco, 0)
	for _, r := range t.records {
		if criticalOnly && !(r.FRP > AlertThreshold) {
			continue
		}
		rows = append(rows, r)
	}

	if t.HasColumn(models.ColFRP) {
		slices.SortStableFunc(rows, func(a, b models.Foco) int {
			return cmp.Compare(b.FRP, a.FRP)
		})
	} else {
		slices.SortStableFunc(rows, func(a, b models.Foco) int {
			return compareTimeDesc(a.DataHora, b.DataHora)
		})
	}

	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func compareTimeDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}

// round1 arredonda para uma casa decimal, metade para longe do zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
