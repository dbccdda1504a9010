package models

// FocosRequest representa os parâmetros de GET /focos.
// Todos os campos chegam como texto: valores inválidos são ignorados, nunca rejeitados.
type FocosRequest struct {
	// Estado exato (case-sensitive). "Todos os Estados" desativa o filtro.
	Estado string `form:"estado" example:"PARA"`
	// Bioma exato (case-sensitive). "Todos os Biomas" desativa o filtro.
	Bioma string `form:"bioma" example:"Amazonia"`
	// Limite inferior inclusivo de data_hora_gmt
	DataInicio string `form:"data_inicio" example:"2025-11-01"`
	// Limite superior inclusivo de data_hora_gmt
	DataFim string `form:"data_fim" example:"2025-11-30"`
	// FRP mínimo inclusivo
	FRPMin string `form:"frp_min" validate:"omitempty,numeric" example:"10"`
	// FRP máximo inclusivo
	FRPMax string `form:"frp_max" validate:"omitempty,numeric" example:"500"`
	// Criticidade: baixa, media, alta, critica (ou low, medium, high, critical)
	Criticidade string `form:"criticidade" validate:"omitempty,criticidade" example:"alta" enums:"baixa,media,alta,critica,low,medium,high,critical"`
	// Quantidade máxima de linhas (default 1000, sem máximo)
	Limit string `form:"limit" validate:"omitempty,numeric" example:"1000"`
}

// ExportRequest representa os parâmetros de GET /exportar/csv
type ExportRequest struct {
	Estado     string `form:"estado"`
	Bioma      string `form:"bioma"`
	DataInicio string `form:"data_inicio"`
	DataFim    string `form:"data_fim"`
}
