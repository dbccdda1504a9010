package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/models"
	"github.com/prefeitura-rio/app-focos-incendio/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// FocoStore é a parte da tabela usada pelos endpoints de registros
type FocoStore interface {
	Query(f dataset.Filter) ([]models.Foco, error)
	Filter(f dataset.Filter) []models.Foco
	Head(n int) []models.Foco
	TopAlerts(criticalOnly bool, limit int) []models.Foco
	WriteCSV(w io.Writer, rows []models.Foco) error
}

// FocosOptions controla limites dos endpoints de registros
type FocosOptions struct {
	DefaultLimit int
	FallbackSize int
	AlertCap     int
}

// FocosHandler gerencia os endpoints que devolvem registros
type FocosHandler struct {
	store     FocoStore
	opts      FocosOptions
	metrics   *observability.Metrics
	validator *validator.Validate
}

// NewFocosHandler cria um novo handler de focos
func NewFocosHandler(store FocoStore, opts FocosOptions, metrics *observability.Metrics) *FocosHandler {
	if opts.FallbackSize <= 0 {
		opts.FallbackSize = 100
	}
	if opts.AlertCap <= 0 {
		opts.AlertCap = dataset.DefaultAlertCap
	}
	if opts.DefaultLimit == 0 {
		opts.DefaultLimit = dataset.DefaultLimit
	}
	return &FocosHandler{
		store:     store,
		opts:      opts,
		metrics:   metrics,
		validator: newValidator(),
	}
}

// Focos godoc
// @Summary Lista focos filtrados
// @Description Aplica os filtros (AND), ordena por FRP decrescente e limita o número de linhas.
// @Description Parâmetros inválidos são ignorados. Em caso de falha interna, devolve as primeiras 100 linhas da tabela.
// @Description **Atenção:** não há limite máximo para `limit`.
// @Tags focos
// @Produce json
// @Param estado query string false "Estado exato (\"Todos os Estados\" desativa o filtro)"
// @Param bioma query string false "Bioma exato (\"Todos os Biomas\" desativa o filtro)"
// @Param data_inicio query string false "Data/hora inicial inclusiva (ex: 2025-11-01)"
// @Param data_fim query string false "Data/hora final inclusiva (ex: 2025-11-30 23:59:59)"
// @Param frp_min query number false "FRP mínimo inclusivo"
// @Param frp_max query number false "FRP máximo inclusivo"
// @Param criticidade query string false "Faixa de criticidade" Enums(baixa, media, alta, critica)
// @Param limit query int false "Número máximo de linhas" default(1000)
// @Success 200 {array} models.Foco
// @Router /focos [get]
func (h *FocosHandler) Focos(c *gin.Context) {
	var req models.FocosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Printf("Erro ao ler parâmetros de /focos: %v", err)
	}
	dropInvalid(h.validator, &req, "/focos")

	filter := dataset.Filter{
		Estado:     req.Estado,
		Bioma:      req.Bioma,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		FRPMin:     optionalFloat(req.FRPMin),
		FRPMax:     optionalFloat(req.FRPMax),
		Limit:      optionalInt(req.Limit),
	}
	if sev, ok := dataset.ParseSeverity(req.Criticidade); ok {
		filter.Criticidade = sev
	}
	if filter.Limit == nil {
		limit := h.opts.DefaultLimit
		filter.Limit = &limit
	}

	_, span := observability.Tracer("handlers").Start(c.Request.Context(), "dataset.Query")
	defer span.End()
	span.SetAttributes(
		attribute.String("focos.estado", filter.Estado),
		attribute.String("focos.bioma", filter.Bioma),
		attribute.String("focos.criticidade", string(filter.Criticidade)),
		attribute.Int("focos.limit", *filter.Limit),
	)

	rows, err := h.store.Query(filter)
	if err != nil {
		log.Printf("Erro em /focos: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fallback")
		if h.metrics != nil {
			h.metrics.QueryFallbacks.Inc()
		}
		rows = h.store.Head(h.opts.FallbackSize)
	}
	span.SetAttributes(attribute.Int("focos.rows", len(rows)))

	c.JSON(http.StatusOK, rows)
}

// Alertas godoc
// @Summary Lista focos para alerta
// @Description Com critico=true (padrão) devolve apenas focos com FRP > 50, do maior para o menor, limitados a 20.
// @Tags focos
// @Produce json
// @Param critico query bool false "Apenas focos críticos" default(true)
// @Success 200 {array} models.Foco
// @Router /alertas [get]
func (h *FocosHandler) Alertas(c *gin.Context) {
	critico := parseBoolQuery(c, "critico", true)
	c.JSON(http.StatusOK, h.store.TopAlerts(critico, h.opts.AlertCap))
}

// ExportarCSV godoc
// @Summary Exporta focos filtrados em CSV
// @Description Aplica estado, bioma, data_inicio e data_fim (sem ordenação nem limite) e devolve um anexo CSV.
// @Tags focos
// @Produce text/csv
// @Param estado query string false "Estado exato"
// @Param bioma query string false "Bioma exato"
// @Param data_inicio query string false "Data/hora inicial inclusiva"
// @Param data_fim query string false "Data/hora final inclusiva"
// @Success 200 {file} file "incendios_brasil_<timestamp>.csv"
// @Router /exportar/csv [get]
func (h *FocosHandler) ExportarCSV(c *gin.Context) {
	var req models.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Printf("Erro ao ler parâmetros de /exportar/csv: %v", err)
	}

	rows := h.store.Filter(dataset.Filter{
		Estado:     req.Estado,
		Bioma:      req.Bioma,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
	})

	var buf bytes.Buffer
	if err := h.store.WriteCSV(&buf, rows); err != nil {
		log.Printf("Erro ao gerar CSV: %v", err)
	}

	filename := dataset.ExportFilename(dataset.Now())
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
