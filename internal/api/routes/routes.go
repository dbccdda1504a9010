package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-focos-incendio/internal/api/handlers"
	"github.com/prefeitura-rio/app-focos-incendio/internal/cache"
	"github.com/prefeitura-rio/app-focos-incendio/internal/config"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	middlewares "github.com/prefeitura-rio/app-focos-incendio/internal/middleware"
	"github.com/prefeitura-rio/app-focos-incendio/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config, table *dataset.Table, metrics *observability.Metrics) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())
	r.Use(middlewares.Metrics(metrics))

	aggregations := cache.NewLRUCache[any](cfg.CacheMaxSize, cacheTTL(cfg))

	focosHandler := handlers.NewFocosHandler(table, handlers.FocosOptions{
		DefaultLimit: cfg.DefaultQueryLimit,
		FallbackSize: cfg.FallbackSampleSize,
		AlertCap:     cfg.AlertCap,
	}, metrics)
	agregacaoHandler := handlers.NewAgregacaoHandler(table, aggregations, metrics)
	healthHandler := handlers.NewHealthHandler(table)
	relatorioHandler := handlers.NewRelatorioHandler(table)

	r.GET("/", healthHandler.Root)
	r.GET("/status", healthHandler.Status)
	r.GET("/liveness", healthHandler.Liveness)

	r.GET("/metricas", agregacaoHandler.Metricas)
	r.GET("/focos_por_bioma", agregacaoHandler.FocosPorBioma)
	r.GET("/focos_por_dia", agregacaoHandler.FocosPorDia)
	r.GET("/risco_fogo", agregacaoHandler.RiscoFogo)
	r.GET("/frp_estados", agregacaoHandler.FRPEstados)
	r.GET("/estados", agregacaoHandler.Estados)
	r.GET("/biomas", agregacaoHandler.Biomas)

	r.GET("/focos", focosHandler.Focos)
	r.GET("/alertas", focosHandler.Alertas)
	r.GET("/exportar/csv", focosHandler.ExportarCSV)

	r.GET("/relatorio", relatorioHandler.Relatorio)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func cacheTTL(cfg *config.Config) time.Duration {
	if cfg.CacheTTL <= 0 {
		return time.Minute
	}
	return cfg.CacheTTL
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
