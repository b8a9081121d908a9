package router

import (
	"database/sql"
	"net/http"

	_ "customer-contract-portal/docs"
	mem "customer-contract-portal/internal/adapters/storage/memory"
	"customer-contract-portal/internal/adapters/storage/sqlstore"
	"customer-contract-portal/internal/domain/actions"
	"customer-contract-portal/internal/domain/contracts"
	"customer-contract-portal/internal/domain/customers"
	"customer-contract-portal/internal/domain/events"
	"customer-contract-portal/internal/domain/notes"
	"customer-contract-portal/internal/middleware"
	"customer-contract-portal/internal/platform/httpjson"
	"customer-contract-portal/internal/platform/logger"
	"customer-contract-portal/internal/platform/paging"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa el store SQL con ese dialecto. Si no, in-memory.
	DB      *sql.DB
	Dialect sqlstore.Dialect

	Logger logger.Logger // nil => Nop
	Paging paging.Bounds // cero => DefaultBounds

	CORSOrigins []string // vacío => "*"
	Version     string
}

type repos struct {
	customers customers.Repository
	contracts contracts.Repository
	actions   actions.Repository
	notes     notes.Repository
	events    events.Repository
}

func newRepos(opts Options) repos {
	if opts.DB != nil {
		s := sqlstore.New(opts.DB, opts.Dialect)
		return repos{
			customers: sqlstore.NewCustomersRepo(s),
			contracts: sqlstore.NewContractsRepo(s),
			actions:   sqlstore.NewActionsRepo(s),
			notes:     sqlstore.NewNotesRepo(s),
			events:    sqlstore.NewEventsRepo(s),
		}
	}

	db := mem.New()
	return repos{
		customers: mem.NewCustomersRepo(db),
		contracts: mem.NewContractsRepo(db),
		actions:   mem.NewActionsRepo(db),
		notes:     mem.NewNotesRepo(db),
		events:    mem.NewEventsRepo(db),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	bounds := opts.Paging
	if bounds.Max <= 0 {
		bounds = paging.DefaultBounds()
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.ActorHeader},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.ActorContext)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]string{
			"message": "Customer Contract Portal API",
			"version": opts.Version,
			"docs":    "/swagger/index.html",
		})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	rp := newRepos(opts)

	// Services por módulo
	customersSvc := customers.NewService(rp.customers)
	contractsSvc := contracts.NewService(rp.contracts, log)
	actionsSvc := actions.NewService(rp.actions, log)
	notesSvc := notes.NewService(rp.notes)
	eventsSvc := events.NewService(rp.events)

	// Rutas por módulo
	customers.RegisterRoutes(r, customersSvc, bounds)
	contracts.RegisterRoutes(r, contractsSvc, bounds)
	actions.RegisterRoutes(r, actionsSvc, bounds)
	notes.RegisterRoutes(r, notesSvc, bounds)
	events.RegisterRoutes(r, eventsSvc, bounds)

	return r
}
