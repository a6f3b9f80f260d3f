package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/auth"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC  *fiado.CustomerUseCase
	SaleUC      *fiado.SaleUseCase
	PaymentUC   *fiado.PaymentUseCase
	DashboardUC *fiado.DashboardUseCase
	ReceiptUC   *fiado.ReceiptUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SaleUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/sales", customerHandler.ListSales)
	customers.Get("/:id/payments", paymentHandler.ListByCustomer)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Post("/:id/sign", saleHandler.Sign)
	sales.Get("/:id/receipt", receiptHandler.Get)
	sales.Get("/:id/receipt/pdf", receiptHandler.Download)

	// Payments (protegido)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Create)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/alerts", dashboardHandler.Alerts)
	dashboard.Get("/birthdays", dashboardHandler.Birthdays)
}
