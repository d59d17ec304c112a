package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "drug-treatments/internal/adapters/storage/memory"
	pg "drug-treatments/internal/adapters/storage/postgres"
	"drug-treatments/internal/domain/dosages"
	"drug-treatments/internal/domain/drugs"
	"drug-treatments/internal/domain/treatments"
	"drug-treatments/internal/middleware"
	"drug-treatments/internal/observability/metrics"
	"drug-treatments/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales; nil los desactiva (modo tests).
	Log     logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.RequestLog(opts.Log))
	r.Use(metrics.Middleware(opts.Metrics))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		drugRepo      drugs.Repository
		dosageRepo    dosages.Repository
		treatmentRepo treatments.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		drugRepo = pg.NewDrugsRepo(db)
		dosageRepo = pg.NewDosagesRepo(db)
		treatmentRepo = pg.NewTreatmentsRepo(db)
	} else {
		drugRepo = mem.NewDrugsRepo()
		dosageRepo = mem.NewDosagesRepo()
		treatmentRepo = mem.NewTreatmentsRepo()
	}

	// Services por módulo
	drugsSvc := drugs.NewService(drugRepo)
	dosagesSvc := dosages.NewService(dosageRepo)
	treatmentsSvc := treatments.NewService(treatmentRepo, drugRepo, dosageRepo)

	// Rutas por módulo
	drugs.RegisterRoutes(r, drugsSvc)
	dosages.RegisterRoutes(r, dosagesSvc)
	treatments.RegisterRoutes(r, treatmentsSvc, opts.Metrics)

	return r
}
