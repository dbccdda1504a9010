package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoverAcentos decompõe o texto e remove os diacríticos, mantendo apenas ASCII.
// Caracteres sem representação ASCII são descartados.
// Exemplo: "RONDÔNIA" -> "RONDONIA", "Amazônia" -> "Amazonia"
func RemoverAcentos(texto string) string {
	if texto == "" {
		return texto
	}

	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	normalized, _, err := transform.String(t, texto)
	if err != nil {
		return texto
	}
	return normalized
}

// mojibakeCharmaps são tentados em ordem para desfazer a leitura errada.
// Latin-1 cobre os caracteres de controle C1 que o Windows-1252 não representa.
var mojibakeCharmaps = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// CorrigirMojibake desfaz o caso clássico de UTF-8 lido como Windows-1252 ou Latin-1.
// Exemplo: "RONDÃ”NIA" -> "RONDÔNIA", "RONDÃ\u0094NIA" -> "RONDÔNIA".
// Se nenhuma reversão produzir UTF-8 válido, o texto original é mantido.
func CorrigirMojibake(texto string) string {
	if !strings.ContainsAny(texto, "ÃÂ") {
		return texto
	}

	for _, cm := range mojibakeCharmaps {
		raw, err := cm.NewEncoder().String(texto)
		if err != nil || raw == texto || !utf8.ValidString(raw) {
			continue
		}
		return raw
	}
	return texto
}

// NormalizarTexto aplica a correção de mojibake seguida da remoção de acentos
func NormalizarTexto(texto string) string {
	return RemoverAcentos(CorrigirMojibake(texto))
}
