package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Load lê o CSV do disco uma única vez e devolve a tabela limpa.
// Só falha se nenhum encoding da cadeia produzir um CSV legível.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnreadable, err)
	}

	table, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar %s: %w", path, err)
	}

	log.Printf("Dados carregados: %d registros", table.Len())
	log.Printf("Colunas disponíveis: %v", table.Columns())
	return table, nil
}

// LoadReader lê o dataset de um io.Reader
func LoadReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetUnreadable, err)
	}
	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var errs []error
	for _, enc := range encodingChain {
		text, err := enc.decode(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", enc.name, err))
			continue
		}

		header, rows, err := readCSV(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", enc.name, err))
			continue
		}

		if enc.name != encodingChain[0].name {
			log.Printf("Dataset lido com encoding %s", enc.name)
		}
		return clean(header, rows), nil
	}

	return nil, fmt.Errorf("%w: %w", ErrDatasetUnreadable, errors.Join(errs...))
}

func readCSV(text string) ([]string, [][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyDataset
		}
		return nil, nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	// Linhas completamente vazias não viram registros
	filtered := rows[:0]
	for _, row := range rows {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		filtered = append(filtered, row)
	}

	return header, filtered, nil
}

// sniffDelimiter escolhe entre vírgula e ponto e vírgula olhando o cabeçalho
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}
	return ','
}
