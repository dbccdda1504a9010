package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
)

// Endpoints lista as rotas publicadas em GET /
var Endpoints = []string{
	"/metricas",
	"/focos",
	"/focos_por_bioma",
	"/focos_por_dia",
	"/risco_fogo",
	"/frp_estados",
	"/estados",
	"/biomas",
	"/alertas",
	"/exportar/csv",
	"/status",
	"/relatorio",
}

// HealthHandler gerencia os endpoints de status e metadados
type HealthHandler struct {
	table *dataset.Table
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(table *dataset.Table) *HealthHandler {
	return &HealthHandler{
		table: table,
	}
}

// Root godoc
// @Summary Metadados da API
// @Description Mensagem de boas-vindas, rotas disponíveis e resumo do dataset carregado
// @Tags health
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message:   "API Dashboard de Incêndios",
		Endpoints: Endpoints,
		DatasetInfo: models.DatasetInfo{
			TotalRegistros: h.table.Len(),
			Colunas:        h.table.Columns(),
			EstadosUnicos:  len(h.table.DistinctValues(models.ColEstado)),
			BiomasUnicos:   len(h.table.DistinctValues(models.ColBioma)),
		},
	})
}

// Status godoc
// @Summary Status da API e do dataset
// @Description Tamanho, colunas, período coberto por data_hora_gmt e memória estimada da tabela
// @Tags health
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	first, last := h.table.Coverage()

	c.JSON(http.StatusOK, models.StatusResponse{
		Status:      "online",
		DatasetSize: h.table.Len(),
		Colunas:     h.table.Columns(),
		PeriodoCobertura: models.Periodo{
			Inicio: isoTime(first),
			Fim:    isoTime(last),
		},
		MemoriaUsage: fmt.Sprintf("%.2f MB", float64(h.table.MemoryEstimate())/1024/1024),
	})
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
