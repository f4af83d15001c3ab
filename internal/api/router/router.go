package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gosupply/internal/api/category"
	"gosupply/internal/api/product"
	"gosupply/internal/api/purchase"
	"gosupply/internal/api/response"
	"gosupply/internal/api/supplier"
	"gosupply/internal/api/user"
	"gosupply/internal/domain"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/metrics"
	"gosupply/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Category *category.Handler
	Supplier *supplier.Handler
	Purchase *purchase.Handler
	Product  *product.Handler
	User     *user.Handler
	// Health e Metrics são opcionais; nil omite a rota.
	Health  http.Handler
	Metrics http.Handler
}

// Options controla os middlewares aplicados às rotas da API.
type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics
	// Auth, quando definido, protege as rotas de escrita; as rotas
	// administrativas exigem ainda a role admin.
	Auth func(http.Handler) http.Handler
	// RateLimit, quando definido, é aplicado a todas as rotas sob /api.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	api := apiRoutes{mux: mux, opts: opts}

	// --- 1. Rotas operacionais ---
	mux.HandleFunc("GET /ping", PingHandler)
	if h.Health != nil {
		mux.Handle("GET /health", h.Health)
	}
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Fornecedores ---
	api.read("GET /api/supplier", h.Supplier.ListSuppliers)
	api.read("GET /api/supplier/export", h.Supplier.ExportSuppliers)
	api.read("GET /api/supplier/{id}", h.Supplier.GetSupplier)
	api.write("POST /api/supplier", h.Supplier.CreateSupplier)
	api.admin("POST /api/supplier/import", h.Supplier.ImportSuppliers)
	api.write("PUT /api/supplier/{id}", h.Supplier.UpdateSupplier)
	api.admin("DELETE /api/supplier/{id}", h.Supplier.DeleteSupplier)

	// --- 3. Compras ---
	api.write("POST /api/purchase", h.Purchase.CreatePurchase)
	api.read("GET /api/purchase/{id}", h.Purchase.GetPurchase)

	// --- 4. Catálogo de produtos ---
	api.read("GET /api/product", h.Product.ListProductsHandler)
	api.read("GET /api/product/{id}", h.Product.GetProductByIDHandler)
	api.admin("POST /api/product", h.Product.CreateProductHandler)

	// --- 5. Categorias ---
	api.read("GET /api/category", h.Category.ListCategories)
	api.read("GET /api/category/{id}", h.Category.GetCategory)
	api.admin("POST /api/category", h.Category.CreateCategory)
	api.admin("PUT /api/category/{id}", h.Category.UpdateCategory)
	api.admin("DELETE /api/category/{id}", h.Category.DeleteCategory)

	// --- 6. Usuários ---
	api.read("POST /api/register", h.User.RegisterUserHandler)
	api.read("POST /api/login", h.User.LoginUserHandler)

	// --- 7. Qualquer outra rota ---
	mux.HandleFunc("/", response.NotFound)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.AccessLog(opts.Logger, opts.Metrics),
	)
}

// apiRoutes registra as rotas sob /api com os middlewares configurados.
type apiRoutes struct {
	mux  *http.ServeMux
	opts Options
}

// Níveis de acesso das rotas da API.
const (
	accessPublic = iota
	accessUser
	accessAdmin
)

func (a apiRoutes) read(pattern string, fn http.HandlerFunc) {
	a.mux.Handle(pattern, a.wrap(fn, accessPublic))
}

func (a apiRoutes) write(pattern string, fn http.HandlerFunc) {
	a.mux.Handle(pattern, a.wrap(fn, accessUser))
}

func (a apiRoutes) admin(pattern string, fn http.HandlerFunc) {
	a.mux.Handle(pattern, a.wrap(fn, accessAdmin))
}

func (a apiRoutes) wrap(fn http.HandlerFunc, access int) http.Handler {
	var mws []func(http.Handler) http.Handler
	if a.opts.RateLimit != nil {
		mws = append(mws, a.opts.RateLimit)
	}
	if access > accessPublic && a.opts.Auth != nil {
		mws = append(mws, a.opts.Auth)
		if access == accessAdmin {
			mws = append(mws, middleware.PermissionMiddleware(domain.RoleAdmin))
		}
	}
	return middleware.Chain(fn, mws...)
}

// PingHandler responde "pong" para checagens simples de vida.
func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
