package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Colunas conhecidas do dataset de focos do INPE
const (
	ColMunicipio = "municipio"
	ColEstado    = "estado"
	ColBioma     = "bioma"
	ColPais      = "pais"
	ColSatelite  = "satelite"
	ColFRP       = "frp"
	ColDataHora  = "data_hora_gmt"
	ColRisco     = "risco_fogo"
)

// Valores sentinela
const (
	Desconhecido = "Desconhecido"
	TodosEstados = "Todos os Estados"
	TodosBiomas  = "Todos os Biomas"
)

// TimestampLayout é o formato usado na exportação CSV de data_hora_gmt
const TimestampLayout = "2006-01-02 15:04:05.999999999"

// RiskLevel representa a classificação de risco derivada do FRP
type RiskLevel string

const (
	RiskBaixo   RiskLevel = "Baixo"
	RiskMedio   RiskLevel = "Médio"
	RiskAlto    RiskLevel = "Alto"
	RiskCritico RiskLevel = "Crítico"
)

// RiskFromFRP classifica o risco a partir do FRP (limites 10/50/100)
func RiskFromFRP(frp float64) RiskLevel {
	switch {
	case frp < 10:
		return RiskBaixo
	case frp < 50:
		return RiskMedio
	case frp < 100:
		return RiskAlto
	default:
		return RiskCritico
	}
}

// Foco representa uma linha limpa do dataset.
// As colunas que não têm campo próprio ficam em Extras, com o valor original.
type Foco struct {
	Municipio string
	Estado    string
	Bioma     string
	Pais      string
	Satelite  string
	FRP       float64
	DataHora  *time.Time
	RiscoFogo string
	Extras    map[string]string

	// columns é compartilhado por todas as linhas da mesma tabela
	columns []string
}

// WithColumns associa a ordem de colunas usada na serialização
func (f Foco) WithColumns(columns []string) Foco {
	f.columns = columns
	return f
}

// Text retorna o valor textual de uma coluna categórica
func (f Foco) Text(column string) (string, bool) {
	switch column {
	case ColMunicipio:
		return f.Municipio, true
	case ColEstado:
		return f.Estado, true
	case ColBioma:
		return f.Bioma, true
	case ColPais:
		return f.Pais, true
	case ColSatelite:
		return f.Satelite, true
	case ColRisco:
		return f.RiscoFogo, true
	}
	v, ok := f.Extras[column]
	return v, ok
}

// CSVValue retorna o valor da coluna no formato de exportação
func (f Foco) CSVValue(column string) string {
	switch column {
	case ColFRP:
		return strconv.FormatFloat(f.FRP, 'f', -1, 64)
	case ColDataHora:
		if f.DataHora == nil {
			return ""
		}
		return f.DataHora.UTC().Format(TimestampLayout)
	}
	v, _ := f.Text(column)
	return v
}

// Value retorna o valor da coluna pronto para JSON.
// Campos vazios viram null e textos numéricos viram números.
func (f Foco) Value(column string) any {
	switch column {
	case ColFRP:
		return Float(f.FRP)
	case ColDataHora:
		if f.DataHora == nil {
			return nil
		}
		return f.DataHora.UTC().Format(time.RFC3339)
	case ColMunicipio, ColEstado, ColBioma:
		v, _ := f.Text(column)
		return v
	}
	v, _ := f.Text(column)
	return scalar(v)
}

// MarshalJSON serializa o foco como objeto plano, na ordem das colunas da tabela
func (f Foco) MarshalJSON() ([]byte, error) {
	columns := f.columns
	if len(columns) == 0 {
		columns = []string{ColMunicipio, ColEstado, ColBioma, ColFRP, ColDataHora, ColRisco}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value(col))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func scalar(v string) any {
	if v == "" {
		return nil
	}
	if n, ok := ParseDecimal(v); ok {
		return Float(n)
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil && (math.IsNaN(n) || math.IsInf(n, 0)) {
		return nil
	}
	return v
}
