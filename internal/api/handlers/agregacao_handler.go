package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-focos-incendio/internal/cache"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/prefeitura-rio/app-focos-incendio/internal/observability"
)

// AgregacaoHandler gerencia os endpoints de estatísticas do dashboard
type AgregacaoHandler struct {
	table   *dataset.Table
	cache   *cache.LRUCache[any]
	metrics *observability.Metrics
}

// NewAgregacaoHandler cria um novo handler de agregações.
// cache pode ser nil.
func NewAgregacaoHandler(table *dataset.Table, c *cache.LRUCache[any], metrics *observability.Metrics) *AgregacaoHandler {
	return &AgregacaoHandler{
		table:   table,
		cache:   c,
		metrics: metrics,
	}
}

// cached devolve o resultado guardado para key ou calcula e guarda
func cached[V any](h *AgregacaoHandler, key string, compute func() V) V {
	v, hit := h.cache.GetOrCompute(key, func() any { return compute() })
	h.metrics.CacheResult(hit)
	if typed, ok := v.(V); ok {
		return typed
	}
	typed := compute()
	h.cache.Set(key, typed)
	return typed
}

// Metricas godoc
// @Summary Métricas gerais
// @Description Total de focos, focos por estado, média/máximo/mínimo/desvio padrão amostral do FRP, estados e biomas distintos e data mais recente.
// @Tags agregacoes
// @Produce json
// @Success 200 {object} models.Metricas
// @Router /metricas [get]
func (h *AgregacaoHandler) Metricas(c *gin.Context) {
	c.JSON(http.StatusOK, cached(h, "metricas", h.table.OverallStatistics))
}

// FocosPorBioma godoc
// @Summary Contagem de focos por bioma
// @Description Objeto bioma → quantidade, do maior para o menor.
// @Tags agregacoes
// @Produce json
// @Success 200 {object} map[string]int
// @Router /focos_por_bioma [get]
func (h *AgregacaoHandler) FocosPorBioma(c *gin.Context) {
	c.JSON(http.StatusOK, cached(h, "focos_por_bioma", func() models.Counts {
		return h.table.GroupCounts(models.ColBioma)
	}))
}

// FocosPorDia godoc
// @Summary Contagem de focos por dia
// @Description Objeto data ISO → quantidade, em ordem crescente, nos últimos `dias` dias. dias <= 0 considera todo o período.
// @Tags agregacoes
// @Produce json
// @Param dias query int false "Janela em dias" default(30)
// @Success 200 {object} map[string]int
// @Router /focos_por_dia [get]
func (h *AgregacaoHandler) FocosPorDia(c *gin.Context) {
	dias := parseIntQuery(c, "dias", 30)
	c.JSON(http.StatusOK, cached(h, fmt.Sprintf("focos_por_dia:%d", dias), func() models.Counts {
		return h.table.CountsByDay(dias)
	}))
}

// RiscoFogo godoc
// @Summary Distribuição do risco de fogo
// @Description Objeto nível de risco → quantidade, do maior para o menor.
// @Tags agregacoes
// @Produce json
// @Success 200 {object} map[string]int
// @Router /risco_fogo [get]
func (h *AgregacaoHandler) RiscoFogo(c *gin.Context) {
	c.JSON(http.StatusOK, cached(h, "risco_fogo", func() models.Counts {
		return h.table.GroupCounts(models.ColRisco)
	}))
}

// FRPEstados godoc
// @Summary Média de FRP por estado
// @Description Objeto estado → média de FRP (1 casa decimal), da maior para a menor. limit <= 0 devolve todos.
// @Tags agregacoes
// @Produce json
// @Param limit query int false "Número de estados" default(10)
// @Success 200 {object} map[string]number
// @Router /frp_estados [get]
func (h *AgregacaoHandler) FRPEstados(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 10)
	c.JSON(http.StatusOK, cached(h, fmt.Sprintf("frp_estados:%d", limit), func() models.Means {
		return h.table.MeanFRPByState(limit)
	}))
}

// Estados godoc
// @Summary Lista os estados
// @Tags agregacoes
// @Produce json
// @Success 200 {object} models.EstadosResponse
// @Router /estados [get]
func (h *AgregacaoHandler) Estados(c *gin.Context) {
	c.JSON(http.StatusOK, cached(h, "estados", func() models.EstadosResponse {
		return models.EstadosResponse{Estados: h.table.DistinctValues(models.ColEstado)}
	}))
}

// Biomas godoc
// @Summary Lista os biomas
// @Tags agregacoes
// @Produce json
// @Success 200 {object} models.BiomasResponse
// @Router /biomas [get]
func (h *AgregacaoHandler) Biomas(c *gin.Context) {
	c.JSON(http.StatusOK, cached(h, "biomas", func() models.BiomasResponse {
		return models.BiomasResponse{Biomas: h.table.DistinctValues(models.ColBioma)}
	}))
}
