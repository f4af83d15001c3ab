// @title GoSupply API
// @version 1.0
// @description Cadastro de fornecedores e registro de compras com entrada de estoque.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gosupply/config"
	_ "gosupply/docs"
	"gosupply/internal/domain"
	"gosupply/internal/pkg/cache"
	"gosupply/internal/pkg/database"
	"gosupply/internal/pkg/health"
	"gosupply/internal/pkg/logger"
	"gosupply/internal/pkg/metrics"
	"gosupply/internal/pkg/middleware"
	"gosupply/internal/pkg/ordercode"
	"gosupply/internal/pkg/token"
	"gosupply/internal/pkg/validation"

	"gosupply/internal/api/category"
	"gosupply/internal/api/product"
	"gosupply/internal/api/purchase"
	"gosupply/internal/api/router"
	"gosupply/internal/api/supplier"
	"gosupply/internal/api/user"
	"gosupply/internal/repository/categoryrepo"
	"gosupply/internal/repository/memory"
	"gosupply/internal/repository/productrepo"
	"gosupply/internal/repository/purchaserepo"
	"gosupply/internal/repository/supplierrepo"
	"gosupply/internal/repository/userrepo"
	"gosupply/internal/service/categoryservice"
	"gosupply/internal/service/productservice"
	"gosupply/internal/service/purchaseservice"
	"gosupply/internal/service/supplierservice"
	"gosupply/internal/service/userservice"
)

// repositories agrupa as implementações escolhidas pelo STORAGE_DRIVER.
type repositories struct {
	suppliers  domain.SupplierRepository
	purchases  domain.PurchaseRepository
	products   domain.ProductRepository
	users      domain.UserRepository
	categories domain.CategoryRepository
	// sqlDB é nil no driver memory.
	sqlDB *sql.DB
}

// demoCatalog é o catálogo inicial do driver memory.
var demoCatalog = []domain.Product{
	{Name: "Arroz 5kg"},
	{Name: "Feijão 1kg"},
	{Name: "Café 500g"},
	{Name: "Açúcar 1kg"},
}

func main() {
	// 0. Variáveis de ambiente (.env é opcional; em Docker vêm do sistema)
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}
	logg := logger.NewLogger(cfg.LogLevel)
	logg.Info("Configurações carregadas.", map[string]interface{}{
		"env":     cfg.Environment,
		"storage": cfg.StorageDriver,
	})

	// 1. Armazenamento
	repos, err := buildRepositories(cfg, logg)
	if err != nil {
		logg.Fatal("Falha ao inicializar o armazenamento.", err)
	}
	if repos.sqlDB != nil {
		defer func() {
			if err := repos.sqlDB.Close(); err != nil {
				logg.Error("Falha ao fechar o pool do PostgreSQL.", err)
			}
		}()
	}

	// 2. Health check e métricas
	healthHandler := health.NewHandler(2 * time.Second)
	if repos.sqlDB != nil {
		healthHandler.RegisterChecker("database", health.FuncChecker{Name: "database", Fn: repos.sqlDB.PingContext})
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// 3. Cache (Redis) opcional: cache-aside de fornecedores e rate limit
	var rateLimit func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			logg.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		logg.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})

		repos.suppliers = supplierrepo.NewCachedRepository(repos.suppliers, redisClient, cfg.CacheTTL, logg)
		rateLimit = middleware.RateLimiter(redisClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, logg)
		healthHandler.RegisterChecker("redis", health.FuncChecker{Name: "redis", Optional: true, Fn: redisClient.Ping})
	}

	// 4. Serviços (Repository -> Service -> Handler)
	v := validation.New()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	codes, err := ordercode.NewGenerator(cfg.NodeID)
	if err != nil {
		logg.Fatal("Falha ao inicializar o gerador de códigos.", err)
	}

	supplierSvc := supplierservice.NewService(repos.suppliers, v, logg)
	purchaseSvc := purchaseservice.NewService(repos.purchases, codes, v, appMetrics, logg)
	productSvc := productservice.NewService(repos.products, v, logg)
	categorySvc := categoryservice.NewService(repos.categories, v, logg)
	userSvc := userservice.NewService(repos.users, tokenSvc, v, logg)

	if cfg.AdminEmail != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := userSvc.EnsureAdmin(ctx, domain.UserRegistration{Email: cfg.AdminEmail, Password: cfg.AdminPassword})
		cancel()
		if err != nil {
			logg.Fatal("Falha ao criar o administrador inicial.", err)
		}
	}

	// 5. Roteador
	opts := router.Options{
		Logger:    logg,
		Metrics:   appMetrics,
		RateLimit: rateLimit,
	}
	if cfg.AuthEnabled {
		opts.Auth = middleware.NewAuthMiddleware(tokenSvc)
		logg.Info("Autenticação habilitada nas rotas de escrita.", nil)
	}

	handler := router.NewRouter(router.Handlers{
		Category: category.NewHandler(categorySvc, logg),
		Supplier: supplier.NewHandler(supplierSvc, logg),
		Purchase: purchase.NewHandler(purchaseSvc, logg),
		Product:  product.NewHandler(productSvc, logg),
		User:     user.NewHandler(userSvc, logg),
		Health:   healthHandler,
		Metrics:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, opts)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Execução e Graceful Shutdown
	go func() {
		logg.Info("Servidor GoSupply ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Error("Desligamento do servidor forçado.", err)
	}
	logg.Info("Servidor encerrado com sucesso.", nil)
}

// buildRepositories monta os repositórios do driver configurado.
func buildRepositories(cfg *config.Config, logg logger.Logger) (repositories, error) {
	if cfg.StorageDriver == config.StorageMemory {
		store := memory.NewStore()
		for _, p := range demoCatalog {
			store.PutProduct(p)
		}
		logg.Warn("Usando armazenamento em memória; os dados são perdidos ao encerrar.", map[string]interface{}{
			"products": len(demoCatalog),
		})
		return repositories{
			suppliers:  memory.NewSupplierRepository(store),
			purchases:  memory.NewPurchaseRepository(store),
			products:   memory.NewProductRepository(store),
			users:      memory.NewUserRepository(store),
			categories: memory.NewCategoryRepository(store),
		}, nil
	}

	sqlDB, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		return repositories{}, err
	}
	logg.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		if err := database.Migrate(sqlDB); err != nil {
			sqlDB.Close()
			return repositories{}, err
		}
		logg.Info("Migrações aplicadas.", nil)
	}

	gormDB, err := database.NewGorm(sqlDB, logg)
	if err != nil {
		sqlDB.Close()
		return repositories{}, err
	}

	return repositories{
		suppliers:  supplierrepo.NewSupplierRepository(gormDB, cfg.DBTimeout, logg),
		purchases:  purchaserepo.NewPurchaseRepository(gormDB, cfg.DBTimeout, logg),
		products:   productrepo.NewProductRepository(gormDB, cfg.DBTimeout, logg),
		users:      userrepo.NewUserRepository(gormDB, cfg.DBTimeout, logg),
		categories: categoryrepo.NewCategoryRepository(gormDB, cfg.DBTimeout, logg),
		sqlDB:      sqlDB,
	}, nil
}
