package utils

import (
	"testing"
)

func TestRemoverAcentos(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RONDÔNIA", "RONDONIA"},
		{"Amazônia", "Amazonia"},
		{"Mata Atlântica", "Mata Atlantica"},
		{"SÃO RAIMUNDO DO DOCA BEZERRA", "SAO RAIMUNDO DO DOCA BEZERRA"},
		{"Cerrado", "Cerrado"},
		{"preço – “aspas”", "preco  aspas"},
		{"", ""},
	}

	for _, test := range tests {
		result := RemoverAcentos(test.input)
		if result != test.expected {
			t.Errorf("RemoverAcentos(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestCorrigirMojibake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RONDÃ”NIA", "RONDÔNIA"},
		{"MARANHÃƒO", "MARANHÃO"},
		{"AmazÃ´nia", "Amazônia"},
		{"Mata AtlÃ¢ntica", "Mata Atlântica"},
		// UTF-8 lido como Latin-1: sobram caracteres de controle C1
		{"RONDÃ\u0094NIA", "RONDÔNIA"},
		{"MARANHÃ\u0083O", "MARANHÃO"},
		{"SÃ\u0083O PAULO", "SÃO PAULO"},
		{"SÃO PAULO", "SÃO PAULO"}, // já correto, reversão geraria UTF-8 inválido
		{"PARÃ", "PARÃ"},           // byte perdido, fica para a tabela de reparos
		{"Cerrado", "Cerrado"},
		{"", ""},
	}

	for _, test := range tests {
		result := CorrigirMojibake(test.input)
		if result != test.expected {
			t.Errorf("CorrigirMojibake(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizarTexto(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RONDÃ”NIA", "RONDONIA"},
		{"MARANHÃƒO", "MARANHAO"},
		{"RONDÃ\u0094NIA", "RONDONIA"},
		{"Amazônia", "Amazonia"},
		{"PARA", "PARA"},
	}

	for _, test := range tests {
		result := NormalizarTexto(test.input)
		if result != test.expected {
			t.Errorf("NormalizarTexto(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
