package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/fiado"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain"
)

// ReceiptHandler trata a emissão do comprovante de compra fiado.
type ReceiptHandler struct {
	uc *fiado.ReceiptUseCase
}

// NewReceiptHandler constrói o handler.
func NewReceiptHandler(uc *fiado.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Get godoc
// @Summary      Comprovante da venda (JSON)
// @Description  View-model do comprovante imprimível: valores em R$ e datas dd/MM/yyyy.
// @Tags         receipts
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  dto.ReceiptDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/sales/{id}/receipt [get]
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	receipt, err := h.uc.BuildReceipt(userID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// Download godoc
// @Summary      Comprovante da venda (PDF)
// @Tags         receipts
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/sales/{id}/receipt/pdf [get]
func (h *ReceiptHandler) Download(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, filename, err := h.uc.DownloadReceiptPDF(c.Context(), userID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
