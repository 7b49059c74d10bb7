package router

import (
	"database/sql"
	"encoding/json"
	"net/http"

	mem "medications-api/internal/adapters/storage/memory"
	pg "medications-api/internal/adapters/storage/postgres"
	_ "medications-api/internal/docs"
	"medications-api/internal/domain/medications"
	"medications-api/internal/metrics"
	"medications-api/internal/middleware"
	"medications-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

const msgHealthy = "Backend API está funcionando!"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: reemplaza el repo elegido por DB (tests).
	Repository medications.Repository

	Logger logger.Logger // nil => descarta logs

	// Registry de métricas; nil crea uno nuevo por router.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, metrics.NewCollector(reg)))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS)

	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.NotFound)

	// No consulta la base: responde UP aunque Postgres esté caído.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(healthResponse{Status: "UP", Message: msgHealthy})
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repository
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewMedicationsRepo(opts.DB)
		} else {
			repo = mem.NewMedicationRepo()
		}
	}

	medications.RegisterRoutes(r, medications.NewService(repo), log)

	return r
}
