package dataset

import (
	"log"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/prefeitura-rio/app-focos-incendio/internal/utils"
)

var expectedColumns = []string{
	models.ColMunicipio,
	models.ColEstado,
	models.ColBioma,
	models.ColFRP,
	models.ColDataHora,
	models.ColRisco,
}

var textColumns = map[string]bool{
	models.ColMunicipio: true,
	models.ColEstado:    true,
	models.ColBioma:     true,
	models.ColPais:      true,
	models.ColSatelite:  true,
}

// requiredTextColumns recebem o sentinela quando ausentes
var requiredTextColumns = []string{models.ColMunicipio, models.ColEstado, models.ColBioma}

// repairs corrige valores corrompidos conhecidos do feed do INPE
var repairs = map[string]map[string]string{
	models.ColEstado: {
		"MARANHÃƒO": "MARANHÃO",
		"PARÃ":      "PARÁ",
		"RONDÃ”NIA": "RONDÔNIA",
	},
	models.ColBioma: {
		"AmazÃ´nia":       "Amazônia",
		"Mata AtlÃ¢ntica": "Mata Atlântica",
	},
	models.ColMunicipio: {
		"SÃƒO RAIMUNDO DO DOCA BEZERRA": "SÃO RAIMUNDO DO DOCA BEZERRA",
	},
}

// primaryTimeLayouts são tentados antes do formato de fallback
var primaryTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// fallbackTimeLayout é o formato mês/dia/ano hora:minuto
const fallbackTimeLayout = "1/2/2006 15:04"

// ParseFRP converte o texto do FRP em número finito e não negativo.
// Aceita vírgula decimal; qualquer falha vira 0.
func ParseFRP(raw string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return 0
	}
	v, ok := models.ParseDecimal(s)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// ParseTimestamp interpreta data_hora_gmt em UTC. Retorna nil quando nenhum formato serve.
func ParseTimestamp(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range primaryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	if t, err := time.Parse(fallbackTimeLayout, s); err == nil {
		t = t.UTC()
		return &t
	}
	return nil
}

// CleanText repara e normaliza um campo de texto livre
func CleanText(column, raw string) string {
	if fixed, ok := repairs[column][raw]; ok {
		raw = fixed
	}
	return utils.NormalizarTexto(raw)
}

// clean monta a tabela a partir do cabeçalho e das linhas brutas do CSV
func clean(header []string, rows [][]string) *Table {
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		columns[i] = name
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	source := make(map[string]bool, len(columns))
	for _, c := range columns {
		source[c] = true
	}

	var warnings []string
	for _, col := range expectedColumns {
		if !source[col] {
			msg := "Coluna '" + col + "' não encontrada no dataset"
			log.Printf("Aviso: %s", msg)
			warnings = append(warnings, msg)
		}
	}

	if !source[models.ColFRP] {
		columns = append(columns, models.ColFRP)
	}
	if !source[models.ColRisco] {
		columns = append(columns, models.ColRisco)
	}
	for _, col := range requiredTextColumns {
		if !source[col] {
			columns = append(columns, col)
		}
	}

	records := make([]models.Foco, 0, len(rows))
	for _, row := range rows {
		records = append(records, cleanRow(row, header, index, source).WithColumns(columns))
	}

	return &Table{
		records:  records,
		columns:  columns,
		warnings: warnings,
	}
}

func cleanRow(row, header []string, index map[string]int, source map[string]bool) models.Foco {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	foco := models.Foco{
		Municipio: CleanText(models.ColMunicipio, get(models.ColMunicipio)),
		Estado:    CleanText(models.ColEstado, get(models.ColEstado)),
		Bioma:     CleanText(models.ColBioma, get(models.ColBioma)),
		Pais:      CleanText(models.ColPais, get(models.ColPais)),
		Satelite:  CleanText(models.ColSatelite, get(models.ColSatelite)),
		FRP:       ParseFRP(get(models.ColFRP)),
		DataHora:  ParseTimestamp(get(models.ColDataHora)),
	}

	if foco.Municipio == "" {
		foco.Municipio = models.Desconhecido
	}
	if foco.Estado == "" {
		foco.Estado = models.Desconhecido
	}
	if foco.Bioma == "" {
		foco.Bioma = models.Desconhecido
	}

	if source[models.ColRisco] {
		foco.RiscoFogo = get(models.ColRisco)
	} else {
		foco.RiscoFogo = string(models.RiskFromFRP(foco.FRP))
	}

	for i, h := range header {
		name := strings.TrimSpace(h)
		if textColumns[name] || name == models.ColFRP || name == models.ColDataHora || name == models.ColRisco {
			continue
		}
		if index[name] != i {
			continue
		}
		if foco.Extras == nil {
			foco.Extras = make(map[string]string)
		}
		if i < len(row) {
			foco.Extras[name] = row[i]
		} else {
			foco.Extras[name] = ""
		}
	}

	return foco
}
