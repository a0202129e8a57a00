package http

import (
	"net/http"

	_ "github.com/DRSN-tech/kasir-api/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/kasir-api/internal/usecase"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/DRSN-tech/kasir-api/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router      *chi.Mux
	logger      logger.Logger
	metrics     *metrics.Metrics
	swaggerHost string
}

func NewRouter(router *chi.Mux, logger logger.Logger, metrics *metrics.Metrics, swaggerHost string) *Router {
	return &Router{router: router, logger: logger, metrics: metrics, swaggerHost: swaggerHost}
}

func (r *Router) Init(catUC usecase.CategoryUC, prUC usecase.ProductUC, healthUC usecase.HealthUC) {
	r.router.Use(
		middleware.RealIP,
		requestID,
		r.metrics.Middleware,
		requestLogger(r.logger),
		recoverer(r.logger),
	)

	r.router.Get("/", root)
	r.router.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+r.swaggerHost+"/swagger/doc.json"), // ссылка на JSON
	))

	r.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusNotFound, NewErrorResponse(http.StatusNotFound, "route not found"))
	})
	r.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusMethodNotAllowed, NewErrorResponse(http.StatusMethodNotAllowed, "method not allowed"))
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCategoryRoutes(v1, NewCategoryHandler(catUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
		v1.Get("/health", NewHealthHandler(healthUC, r.logger).getHealth)
	})
}

// root отвечает приветствием на GET /.
func root(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"Hello": "World"})
}
