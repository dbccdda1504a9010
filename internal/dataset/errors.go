package dataset

import "errors"

var (
	ErrDatasetUnreadable = errors.New("dataset ilegível em todos os encodings suportados")
	ErrEmptyDataset      = errors.New("dataset sem cabeçalho")
	ErrQueryFailed       = errors.New("falha ao processar consulta de focos")
)
