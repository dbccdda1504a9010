// Command inspect carrega um CSV de focos com o mesmo loader da API,
// imprime um relatório da limpeza e opcionalmente exporta um recorte filtrado.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prefeitura-rio/app-focos-incendio/internal/config"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/prefeitura-rio/app-focos-incendio/internal/report"
)

type InspectConfig struct {
	Path       string
	Estado     string
	Bioma      string
	DataInicio string
	DataFim    string
	Out        string
	Relatorio  bool
}

func main() {
	// Carrega .env
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	// Flags
	path := flag.String("csv", cfg.DatasetPath, "CSV de focos")
	estado := flag.String("estado", "", "Filtrar por estado")
	bioma := flag.String("bioma", "", "Filtrar por bioma")
	inicio := flag.String("inicio", "", "Data/hora inicial inclusiva")
	fim := flag.String("fim", "", "Data/hora final inclusiva")
	out := flag.String("out", "", "Arquivo de saída do recorte (\"-\" para stdout)")
	relatorio := flag.Bool("relatorio", false, "Imprimir o relatório em texto")

	flag.Parse()

	inspectCfg := &InspectConfig{
		Path:       *path,
		Estado:     *estado,
		Bioma:      *bioma,
		DataInicio: *inicio,
		DataFim:    *fim,
		Out:        *out,
		Relatorio:  *relatorio,
	}

	if err := run(inspectCfg, os.Stdout); err != nil {
		log.Fatalf("Erro na inspeção: %v", err)
	}
}

func run(cfg *InspectConfig, stdout io.Writer) error {
	table, err := dataset.Load(cfg.Path)
	if err != nil {
		return err
	}

	printSummary(stdout, table)

	if cfg.Relatorio {
		md := report.Markdown(table, report.DefaultOptions, dataset.Now())
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, report.PlainText(md))
	}

	if cfg.Out == "" {
		return nil
	}

	rows := table.Filter(dataset.Filter{
		Estado:     cfg.Estado,
		Bioma:      cfg.Bioma,
		DataInicio: cfg.DataInicio,
		DataFim:    cfg.DataFim,
	})

	if cfg.Out == "-" {
		return table.WriteCSV(stdout, rows)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", cfg.Out, err)
	}
	defer f.Close()

	if err := table.WriteCSV(f, rows); err != nil {
		return err
	}
	log.Printf("Recorte exportado: %d registros em %s", len(rows), cfg.Out)
	return f.Close()
}

func printSummary(w io.Writer, table *dataset.Table) {
	fmt.Fprintf(w, "Registros: %d\n", table.Len())
	fmt.Fprintf(w, "Colunas: %v\n", table.Columns())

	first, last := table.Coverage()
	fmt.Fprintf(w, "Período: %s a %s\n", formatTime(first), formatTime(last))

	withoutDate := 0
	for _, r := range table.Records() {
		if r.DataHora == nil {
			withoutDate++
		}
	}
	fmt.Fprintf(w, "Sem data_hora_gmt: %d\n", withoutDate)

	for _, col := range []string{models.ColMunicipio, models.ColEstado, models.ColBioma} {
		unknown := 0
		for _, r := range table.Records() {
			if v, _ := r.Text(col); v == models.Desconhecido {
				unknown++
			}
		}
		fmt.Fprintf(w, "%s %q: %d\n", col, models.Desconhecido, unknown)
	}

	for _, warning := range table.Warnings() {
		fmt.Fprintf(w, "Aviso: %s\n", warning)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "n/d"
	}
	return t.UTC().Format(models.TimestampLayout)
}
