package models

import (
	"math"
	"regexp"
	"strconv"
)

// decimalPattern aceita só números decimais simples, com expoente opcional.
// Hexadecimais, "_" entre dígitos, NaN e Inf ficam de fora.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseDecimal converte texto decimal em número finito
func ParseDecimal(s string) (float64, bool) {
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
