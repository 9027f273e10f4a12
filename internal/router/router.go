package router

import (
	"database/sql"
	"net/http"

	_ "dogshelter/docs" // registra la documentación swagger generada
	mem "dogshelter/internal/adapters/storage/memory"
	pg "dogshelter/internal/adapters/storage/postgres"
	lite "dogshelter/internal/adapters/storage/sqlite"
	"dogshelter/internal/domain/breeds"
	"dogshelter/internal/domain/dogs"
	"dogshelter/internal/middleware"
	"dogshelter/internal/platform/config"
	"dogshelter/internal/platform/logger"
	"dogshelter/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Repos explícitos (tests). Si faltan, se arman desde DB/Driver.
	Dogs   dogs.Repository
	Breeds breeds.Repository

	// DB abierta por el caller; Driver indica el dialecto (sqlite | postgres).
	// Sin DB se usa un store en memoria vacío.
	DB     *sql.DB
	Driver string

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Manager // nil => sin /metrics
	Swagger bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, opts.Metrics))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	dogRepo, breedRepo := opts.Dogs, opts.Breeds
	if dogRepo == nil || breedRepo == nil {
		d, b := reposFor(opts.DB, opts.Driver)
		if dogRepo == nil {
			dogRepo = d
		}
		if breedRepo == nil {
			breedRepo = b
		}
	}

	dogs.RegisterRoutes(r, dogs.NewService(dogRepo), log)
	breeds.RegisterRoutes(r, breeds.NewService(breedRepo), log)

	return r
}

func reposFor(db *sql.DB, driver string) (dogs.Repository, breeds.Repository) {
	if db == nil {
		s := mem.NewStore()
		return mem.NewDogRepo(s), mem.NewBreedRepo(s)
	}
	if driver == config.DriverPostgres {
		return pg.NewDogsRepo(db), pg.NewBreedsRepo(db)
	}
	return lite.NewDogsRepo(db), lite.NewBreedsRepo(db)
}
