package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/prefeitura-rio/app-focos-incendio/docs"
	"github.com/prefeitura-rio/app-focos-incendio/internal/api/routes"
	"github.com/prefeitura-rio/app-focos-incendio/internal/config"
	"github.com/prefeitura-rio/app-focos-incendio/internal/dataset"
	"github.com/prefeitura-rio/app-focos-incendio/internal/observability"
)

// @title           API Dashboard de Incêndios
// @version         1.0
// @description     API somente leitura sobre os focos de incêndio detectados pelo INPE
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {

	cfg := config.LoadConfig()

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		log.Printf("GIN_MODE inválido: %q, usando %s", cfg.GinMode, gin.ReleaseMode)
		gin.SetMode(gin.ReleaseMode)
	}

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer(context.Background())

	metrics := observability.NewMetrics()

	start := time.Now()
	table, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("Erro ao carregar dataset %s: %v", cfg.DatasetPath, err)
	}
	metrics.DatasetLoadSeconds.Set(time.Since(start).Seconds())
	metrics.DatasetRows.Set(float64(table.Len()))
	metrics.DatasetWarnings.Set(float64(len(table.Warnings())))

	r := routes.SetupRouter(cfg, table, metrics)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Erro ao iniciar servidor: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Erro ao encerrar servidor: %v", err)
	}

	log.Println("Servidor encerrado")
}
