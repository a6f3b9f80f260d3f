package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
)

// PaymentHandler trata as requisições HTTP de pagamento de dívida.
type PaymentHandler struct {
	uc *fiado.PaymentUseCase
}

// NewPaymentHandler constrói o handler.
func NewPaymentHandler(uc *fiado.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pagamento de dívida
// @Description  Abate o saldo devedor com piso em zero. Métodos: dinheiro, pix, cartao, cheque.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayDebtRequest  true  "customer_id, amount, payment_method"
// @Success      201   {object}  dto.PayDebtResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PayDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.PayDebt(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, amount positivo e payment_method válido são obrigatórios"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCustomer godoc
// @Summary      Histórico de pagamentos do cliente
// @Tags         payments
// @Produce      json
// @Param        id   path     string  true  "ID do cliente"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      404  {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id}/payments [get]
func (h *PaymentHandler) ListByCustomer(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.ListByCustomer(userID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
