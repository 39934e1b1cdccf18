package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Nossos pacotes de infraestrutura e utilitários
	"estoque/config"
	"estoque/internal/pkg/cache"
	"estoque/internal/pkg/database"
	"estoque/internal/pkg/logger"
	"estoque/internal/pkg/token"
	"estoque/migrations"

	// Camadas da aplicação para Injeção de Dependências
	"estoque/internal/api/auth"
	"estoque/internal/api/delivery"
	"estoque/internal/api/product"
	"estoque/internal/api/report"
	"estoque/internal/api/router"
	"estoque/internal/repository/deliveryrepo"
	"estoque/internal/repository/productrepo"
	"estoque/internal/repository/salerepo"
	"estoque/internal/service/authservice"
	"estoque/internal/service/deliveryservice"
	"estoque/internal/service/productservice"
	"estoque/internal/service/reportservice"
	"estoque/internal/validator"
)

// @title Estoque API
// @version 1.0
// @description API REST de controle de estoque: produtos, vendas e entregas.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// overrides recebe as flags da linha de comando; campos não-zero sobrescrevem o ambiente.
var overrides config.Config

var rootCmd = &cobra.Command{
	Use:   "estoque",
	Short: "API REST de controle de estoque",
	Long: `Servidor HTTP da API de estoque (produtos, vendas e entregas).

As configurações vêm do ambiente (e de um arquivo .env, se existir).
As flags abaixo têm precedência sobre o ambiente.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&overrides.Port, "port", "p", "", "porta HTTP (PORT)")
	f.StringVar(&overrides.LogLevel, "log-level", "", "nível de log: debug, info, warn, error (LOG_LEVEL)")
	f.StringVar(&overrides.DatabaseURL, "database-url", "", "DSN do PostgreSQL (DATABASE_URL)")
	f.StringVar(&overrides.RedisAddr, "redis-addr", "", "endereço do Redis (REDIS_ADDR)")
	f.BoolVar(&overrides.AutoMigrate, "auto-migrate", false, "aplica as migrações pendentes na inicialização (AUTO_MIGRATE)")
	f.BoolVar(&overrides.AuthProtectAllWrites, "protect-all-writes", false, "exige token em todas as rotas de escrita (AUTH_PROTECT_ALL_WRITES)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço de estoque...")
	if err := godotenv.Load(); err != nil {
		// As variáveis essenciais podem estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := config.Merge(cfg, overrides); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout())
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPool)
	cancel()
	if err != nil {
		appLog.Error("Falha ao conectar ao banco de dados.", err)
		return err
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		if err := migrations.Migrate(context.Background(), db); err != nil {
			appLog.Error("Falha ao aplicar as migrações.", err)
			return err
		}
		appLog.Info("Migrações aplicadas.", nil)
	}

	// B. Cache (Redis). Sem Redis a API segue funcionando, sem cache e sem rate limit efetivo.
	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout())
	if err != nil {
		appLog.Warn("Redis indisponível; listagens serão servidas sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		appLog.Info("Conexão Redis estabelecida.", nil)
	}
	defer cacheClient.Close()

	listing := cache.NewListingCache(cacheClient, "estoque:produtos", cfg.ListingTTL())
	var invalidator productservice.CacheInvalidator
	if cfg.CacheInvalidateOnWrite {
		invalidator = listing
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	v := validator.New()
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry())

	productRepo := productrepo.NewProductRepository(db, cfg.DBTimeout(), appLog)
	saleRepo := salerepo.NewSaleRepository(db, cfg.DBTimeout(), appLog)
	deliveryRepo := deliveryrepo.NewDeliveryRepository(db, cfg.DBTimeout(), appLog)
	appLog.Debug("Repositórios inicializados.", nil)

	passwordHash, err := authservice.ResolvePasswordHash(cfg.AuthPasswordHash, cfg.AuthPassword)
	if err != nil {
		appLog.Error("Credencial de autenticação inválida.", err)
		return err
	}

	productSvc := productservice.NewService(productRepo, invalidator, appLog)
	reportSvc := reportservice.NewService(productRepo, saleRepo, reportservice.Thresholds{
		Low:  cfg.LowStockThreshold,
		High: cfg.HighStockThreshold,
	}, appLog)
	deliverySvc := deliveryservice.NewService(deliveryRepo, appLog)
	authSvc := authservice.NewService(cfg.AuthUsername, passwordHash, tokenSvc, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Handlers{
		Product:  product.NewHandler(productSvc, v, appLog),
		Report:   report.NewHandler(reportSvc, v, appLog),
		Delivery: delivery.NewHandler(deliverySvc, v, appLog),
		Auth:     auth.NewHandler(authSvc, v, appLog),
	}, router.Options{
		Tokens:           tokenSvc,
		Listing:          listing,
		RateLimitClient:  cacheClient,
		RateLimitMax:     cfg.RateLimitMaxRequests,
		RateLimitPeriod:  cfg.RateLimitPeriod(),
		ProtectAllWrites: cfg.AuthProtectAllWrites,
		Logger:           appLog,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	serverErr := make(chan error, 1)
	go func() {
		appLog.Info("Servidor de estoque ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		appLog.Error("Servidor falhou.", err)
		return err
	case <-quit:
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
		return err
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
	return nil
}
