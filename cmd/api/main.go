package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/auth"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	infrapdf "github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/infrastructure/pdf"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/infrastructure/postgres"
	httpRouter "github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/interfaces/http"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/pkg/config"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := fiado.NewCustomerUseCase(customerRepo)
	saleUC := fiado.NewSaleUseCase(txRunner, customerRepo, saleRepo)
	paymentUC := fiado.NewPaymentUseCase(txRunner, customerRepo, paymentRepo)
	dashboardUC := fiado.NewDashboardUseCase(customerRepo, saleRepo)

	// PDF: comprovante imprimível de compra fiado
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := fiado.NewReceiptUseCase(saleRepo, customerRepo, receiptGenerator, fiado.MarketInfo{
		Name: cfg.Market.Name,
		CNPJ: cfg.Market.CNPJ,
	})

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mercado Fiado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		PaymentUC:   paymentUC,
		DashboardUC: dashboardUC,
		ReceiptUC:   receiptUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
