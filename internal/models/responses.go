package models

// Metricas representa as estatísticas gerais do dataset
type Metricas struct {
	TotalFocos      int     `json:"total_focos"`
	FocosPorEstado  Counts  `json:"focos_por_estado" swaggertype:"object"`
	MediaFRP        Float   `json:"media_frp" swaggertype:"number"`
	MaiorFRP        Float   `json:"maior_frp" swaggertype:"number"`
	MenorFRP        Float   `json:"menor_frp" swaggertype:"number"`
	DesvioFRP       Float   `json:"desvio_frp" swaggertype:"number"`
	TotalEstados    int     `json:"total_estados"`
	TotalBiomas     int     `json:"total_biomas"`
	DataMaisRecente *string `json:"data_mais_recente"`
}

// DatasetInfo resume o dataset carregado
type DatasetInfo struct {
	TotalRegistros int      `json:"total_registros"`
	Colunas        []string `json:"colunas"`
	EstadosUnicos  int      `json:"estados_unicos"`
	BiomasUnicos   int      `json:"biomas_unicos"`
}

// RootResponse é a resposta de GET /
type RootResponse struct {
	Message     string      `json:"message"`
	Endpoints   []string    `json:"endpoints"`
	DatasetInfo DatasetInfo `json:"dataset_info"`
}

// Periodo representa o intervalo coberto por data_hora_gmt
type Periodo struct {
	Inicio *string `json:"inicio"`
	Fim    *string `json:"fim"`
}

// StatusResponse é a resposta de GET /status
type StatusResponse struct {
	Status           string   `json:"status"`
	DatasetSize      int      `json:"dataset_size"`
	Colunas          []string `json:"colunas"`
	PeriodoCobertura Periodo  `json:"periodo_cobertura"`
	MemoriaUsage     string   `json:"memoria_usage"`
}

// EstadosResponse lista os estados disponíveis
type EstadosResponse struct {
	Estados []string `json:"estados"`
}

// BiomasResponse lista os biomas disponíveis
type BiomasResponse struct {
	Biomas []string `json:"biomas"`
}

// HealthResponse representa a resposta do liveness
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
