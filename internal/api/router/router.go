package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registra a especificação OpenAPI servida em /swagger/doc.json.
	_ "estoque/docs"

	"estoque/internal/api/auth"
	"estoque/internal/api/delivery"
	"estoque/internal/api/product"
	"estoque/internal/api/report"
	"estoque/internal/api/respond"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/cache"
	"estoque/internal/pkg/logger"
	"estoque/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Product  *product.Handler
	Report   *report.Handler
	Delivery *delivery.Handler
	Auth     *auth.Handler
}

// Options controla os middlewares aplicados pelo roteador.
type Options struct {
	Tokens middleware.TokenService
	// Listing memoriza GET /products e /produtos. Nil desliga o cache.
	Listing middleware.ResponseCache
	// RateLimitClient nil (ou RateLimitMax <= 0) desliga o limite de requisições.
	RateLimitClient  cache.Client
	RateLimitMax     int
	RateLimitPeriod  time.Duration
	ProtectAllWrites bool
	Logger           logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
// As rotas em inglês ficam na raiz; as rotas originais em português ficam
// na raiz e sob /api.
func NewRouter(h Handlers, opts Options) http.Handler {
	log := opts.Logger
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.TraceID)
	r.Use(middleware.RequestLogger(log))
	if opts.RateLimitClient != nil && opts.RateLimitMax > 0 {
		r.Use(middleware.RateLimiter(opts.RateLimitClient, opts.RateLimitMax, opts.RateLimitPeriod, log))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, log, apperror.NewNotFoundError("Rota não encontrada."))
	})

	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	requireAuth := middleware.NewAuthMiddleware(opts.Tokens, log)
	writes := func(next http.Handler) http.Handler { return next }
	if opts.ProtectAllWrites {
		writes = requireAuth
	}
	listing := func(next http.Handler) http.Handler { return next }
	if opts.Listing != nil {
		listing = middleware.CacheResponse(opts.Listing, log)
	}

	m := mounter{h: h, requireAuth: requireAuth, writes: writes, listing: listing}

	// --- Rotas em inglês ---
	r.Post("/login", h.Auth.LoginHandler)
	r.With(listing).Get("/products", h.Product.ListProductsHandler)
	r.With(requireAuth).Post("/products", h.Product.CreateProductHandler)
	r.Get("/products/{id}", h.Product.GetProductHandler)
	r.With(writes).Put("/products/{id}", h.Product.UpdateProductHandler)
	r.With(writes).Delete("/products/{id}", h.Product.DeleteProductHandler)
	r.With(writes).Put("/products/{id}/stock", h.Product.AdjustStockHandler)
	r.Get("/product/{name}", h.Product.GetProductByNameHandler)
	r.Get("/reports/stock", h.Report.StockReportHandler)
	r.Get("/reports/products", h.Report.ProductReportHandler)
	r.Get("/reports/sales", h.Report.SalesReportHandler)
	r.With(writes).Post("/deliveries", h.Delivery.ScheduleDeliveryHandler)

	// --- Rotas originais ---
	m.legacy(r)
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Auth.LoginHandler)
		m.legacy(r)
	})

	return r
}

type mounter struct {
	h           Handlers
	requireAuth func(http.Handler) http.Handler
	writes      func(http.Handler) http.Handler
	listing     func(http.Handler) http.Handler
}

func (m mounter) legacy(r chi.Router) {
	legacyReports := m.h.Report.WithLegacyShape()

	r.With(m.listing).Get("/produtos", m.h.Product.ListProductsHandler)
	r.With(m.requireAuth).Post("/produtos", m.h.Product.CreateProductHandler)
	r.With(m.writes).Put("/produtos/{id}", m.h.Product.UpdateProductHandler)
	r.With(m.writes).Delete("/produtos/{id}", m.h.Product.DeleteProductHandler)
	r.With(m.writes).Put("/produtos/{id}/atualizar_estoque", m.h.Product.AdjustStockHandler)
	r.Get("/produto/{name}", m.h.Product.GetProductByNameHandler)
	r.Get("/relatorios", legacyReports.StockReportHandler)
	r.Get("/relatorio_produtos", legacyReports.ProductReportHandler)
	r.Get("/relatorios/vendas", legacyReports.SalesReportHandler)
	r.With(m.writes).Post("/entregas", m.h.Delivery.ScheduleDeliveryHandler)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
