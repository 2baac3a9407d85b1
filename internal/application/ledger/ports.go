package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error no se persiste nada.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		partners repository.PartnerRepository,
		products repository.ProductRepository,
		employees repository.EmployeeRepository,
		records repository.RecordRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de un registro.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, rec *repository.RecordView, issuedAt time.Time) ([]byte, error)
}
