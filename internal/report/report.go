// Package report monta o resumo do dataset em Markdown e o converte para HTML
// ou texto puro com gomarkdown.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

const title = "Relatório de Focos de Incêndio"

// Source é a parte da tabela usada pelo relatório
type Source interface {
	OverallStatistics() models.Metricas
	GroupCounts(column string) models.Counts
	MeanFRPByState(limit int) models.Means
	TopAlerts(criticalOnly bool, limit int) []models.Foco
	Coverage() (first, last *time.Time)
}

// Options controla o tamanho das seções
type Options struct {
	TopEstados int
	TopAlertas int
}

// DefaultOptions são os tamanhos usados por /relatorio
var DefaultOptions = Options{TopEstados: 10, TopAlertas: 5}

// Markdown gera o relatório em Markdown
func Markdown(src Source, opts Options, generatedAt time.Time) string {
	m := src.OverallStatistics()
	first, last := src.Coverage()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Gerado em %s UTC.\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05"))

	b.WriteString("## Resumo\n\n")
	fmt.Fprintf(&b, "- **Total de focos:** %d\n", m.TotalFocos)
	fmt.Fprintf(&b, "- **Estados:** %d\n", m.TotalEstados)
	fmt.Fprintf(&b, "- **Biomas:** %d\n", m.TotalBiomas)
	fmt.Fprintf(&b, "- **FRP médio:** %s\n", number(m.MediaFRP))
	fmt.Fprintf(&b, "- **FRP máximo:** %s\n", number(m.MaiorFRP))
	fmt.Fprintf(&b, "- **Desvio padrão do FRP:** %s\n", number(m.DesvioFRP))
	fmt.Fprintf(&b, "- **Período:** %s a %s\n\n", date(first), date(last))

	b.WriteString("## Focos por bioma\n\n")
	countsTable(&b, "Bioma", src.GroupCounts(models.ColBioma))

	b.WriteString("## Risco de fogo\n\n")
	countsTable(&b, "Risco", src.GroupCounts(models.ColRisco))

	b.WriteString("## Maior FRP médio por estado\n\n")
	b.WriteString("| Estado | FRP médio |\n|---|---:|\n")
	for _, e := range src.MeanFRPByState(opts.TopEstados) {
		fmt.Fprintf(&b, "| %s | %s |\n", cell(e.Key), number(e.Value))
	}
	b.WriteString("\n")

	alertas := src.TopAlerts(true, opts.TopAlertas)
	b.WriteString("## Alertas críticos\n\n")
	if len(alertas) == 0 {
		b.WriteString("Nenhum foco com FRP acima de 50.\n")
		return b.String()
	}
	b.WriteString("| Município | Estado | Bioma | FRP | Data (UTC) |\n|---|---|---|---:|---|\n")
	for _, f := range alertas {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(f.Municipio), cell(f.Estado), cell(f.Bioma), number(models.Float(f.FRP)), date(f.DataHora))
	}

	return b.String()
}

// HTML converte o Markdown em uma página HTML completa
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: title,
	})
	return markdown.Render(doc, renderer)
}

func countsTable(b *strings.Builder, label string, counts models.Counts) {
	fmt.Fprintf(b, "| %s | Focos |\n|---|---:|\n", label)
	for _, e := range counts {
		fmt.Fprintf(b, "| %s | %d |\n", cell(e.Key), e.Value)
	}
	b.WriteString("\n")
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

func number(f models.Float) string {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/d"
	}
	return fmt.Sprintf("%.1f", v)
}

func date(t *time.Time) string {
	if t == nil {
		return "n/d"
	}
	return t.UTC().Format("2006-01-02 15:04")
}
