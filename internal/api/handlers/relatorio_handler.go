package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/report"
)

// RelatorioHandler serve o resumo do dataset como página
type RelatorioHandler struct {
	source report.Source
}

// NewRelatorioHandler cria um novo handler de relatório
func NewRelatorioHandler(source report.Source) *RelatorioHandler {
	return &RelatorioHandler{source: source}
}

// Relatorio godoc
// @Summary Relatório resumido do dataset
// @Description Resumo com métricas gerais, focos por bioma, risco de fogo, FRP médio por estado e alertas críticos.
// @Description Por padrão devolve HTML; formato=markdown devolve o Markdown e formato=texto devolve texto puro.
// @Tags relatorio
// @Produce html
// @Produce plain
// @Param formato query string false "Formato da resposta" Enums(html, markdown, texto) default(html)
// @Success 200 {string} string "Relatório"
// @Router /relatorio [get]
func (h *RelatorioHandler) Relatorio(c *gin.Context) {
	md := report.Markdown(h.source, report.DefaultOptions, dataset.Now())

	switch c.DefaultQuery("formato", "html") {
	case "markdown", "md":
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "texto", "text":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.PlainText(md)))
	default:
		c.Data(http.StatusOK, "text/html; charset=utf-8", report.HTML(md))
	}
}
