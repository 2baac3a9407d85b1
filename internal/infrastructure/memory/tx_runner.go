package memory

import (
	"context"

	"github.com/jhoicas/asoadmin-api/internal/application/ledger"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones del ledger. Los registros creados dentro
// de fn quedan pendientes y solo se publican si fn no devuelve error.
type TxRunner struct {
	s *Store
}

func (t *TxRunner) RunLedger(ctx context.Context, fn func(
	partners repository.PartnerRepository,
	products repository.ProductRepository,
	employees repository.EmployeeRepository,
	records repository.RecordRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	staged := &stagedRecords{RecordRepo: t.s.Records}
	if err := fn(t.s.Partners, t.s.Products, t.s.Employees, staged); err != nil {
		return err
	}
	for i := range staged.pending {
		if err := t.s.Records.Create(ctx, &staged.pending[i]); err != nil {
			return err
		}
	}
	return nil
}

// stagedRecords acumula las altas hasta el commit; las lecturas van al store.
type stagedRecords struct {
	*RecordRepo
	pending []entity.Record
}

func (s *stagedRecords) Create(_ context.Context, rec *entity.Record) error {
	s.pending = append(s.pending, *rec)
	return nil
}
