package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/friendgraph/internal/api/http/handler"
	"github.com/dtroode/friendgraph/internal/api/http/middleware"
	"github.com/dtroode/friendgraph/internal/logger"
)

// Options configures the HTTP router.
type Options struct {
	ReadOnly     bool
	CORSOrigins  []string
	SnapshotPath string
}

// Router wires the graph handlers into a chi mux.
type Router struct {
	service handler.NetworkService
	opts    Options
	logger  *logger.Logger
}

// New creates new HTTP Router instance.
func New(service handler.NetworkService, opts Options, logger *logger.Logger) *Router {
	return &Router{
		service: service,
		opts:    opts,
		logger:  logger,
	}
}

// Register builds the handler tree with middleware, API routes, health and metrics.
func (rt *Router) Register() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLogging(rt.logger).Handle)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewNetwork(rt.service, rt.opts.SnapshotPath, rt.logger)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.ReadOnly(rt.opts.ReadOnly))
			r.Post("/add_user", h.AddUser)
			r.Post("/add_user_with_id", h.AddUserWithID)
			r.Post("/remove_user", h.RemoveUser)
			r.Post("/add_friend", h.AddFriend)
			r.Post("/remove_friend", h.RemoveFriend)
			r.Post("/add_interests", h.AddInterests)
			r.Post("/set_interests", h.SetInterests)
			r.Post("/load", h.Load)
		})

		// save is allowed in read-only mode
		r.Post("/save", h.Save)

		r.Get("/get_interests/{id}", h.GetInterests)
		r.Get("/list_users", h.ListUsers)
		r.Get("/user/{id}", h.GetUser)
		r.Get("/friends/{id}", h.Friends)
		r.Get("/find", h.FindByName)
		r.Get("/recommend_mutual/{id}/{k}", h.RecommendMutual)
		r.Get("/recommend_weighted/{id}/{k}", h.RecommendWeighted)
		r.Get("/shortest_path/{a}/{b}", h.ShortestPath)
		r.Get("/communities", h.Communities)
		r.Get("/influencer", h.Influencer)
		r.Get("/suggest", h.Suggest)
		r.Get("/suggest/{prefix}/{k}", h.Suggest)
		r.Get("/stats", h.Stats)
		r.Get("/export/dot", h.ExportDOT)
	})

	return r
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
