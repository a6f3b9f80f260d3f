package fiado

import (
	"context"

	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/application/dto"
	"github.com/MatheusFerreira-MDF/mercado-fiado-manager-main/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação com os repositórios do
// caderno atados à mesma tx. Venda (cabeçalho + itens + saldo) e pagamento
// (registro + saldo) são unidades atômicas: qualquer erro dentro de fn
// desfaz tudo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// ReceiptPDFGenerator gera o PDF imprimível de um comprovante de fiado.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *dto.ReceiptDTO) ([]byte, error)
}
