package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
	"github.com/jhoicas/asoadmin-api/internal/pkg/clock"
)

// Config parámetros de despliegue del ledger.
type Config struct {
	// EmployeeIsPrincipal: el empleado del registro es siempre el principal autenticado.
	// En otro caso el empleado es opcional y viene en el cuerpo.
	EmployeeIsPrincipal bool
	// Location zona horaria para el filtro por día; nil = time.Local.
	Location *time.Location
}

// UseCase registra consumos y consulta el historial.
type UseCase struct {
	tx       TxRunner
	records  repository.RecordRepository
	receipts ReceiptGenerator
	clock    clock.Clock
	cfg      Config
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(tx TxRunner, records repository.RecordRepository, receipts ReceiptGenerator, clk clock.Clock, cfg Config) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &UseCase{tx: tx, records: records, receipts: receipts, clock: clk, cfg: cfg}
}

// CreateRecord registra el canje de un producto por un socio. Socio, producto y empleado
// se resuelven activos dentro de una misma transacción y el total se calcula aquí.
func (uc *UseCase) CreateRecord(ctx context.Context, actingPrincipalID string, in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}

	employeeID := in.Employee
	if uc.cfg.EmployeeIsPrincipal {
		if actingPrincipalID == "" {
			return nil, domain.ErrUnauthorized
		}
		employeeID = actingPrincipalID
	}

	rec := &entity.Record{
		ID:        uuid.New().String(),
		Quantity:  in.Quantity,
		CreatedAt: uc.clock.Now(),
	}
	err := uc.tx.RunLedger(ctx, func(
		partners repository.PartnerRepository,
		products repository.ProductRepository,
		employees repository.EmployeeRepository,
		records repository.RecordRepository,
	) error {
		partner, err := partners.GetActiveByID(ctx, in.Partner)
		if err != nil {
			return err
		}
		if partner == nil {
			return domain.ErrPartnerNotFound
		}
		product, err := products.GetActiveByID(ctx, in.Product)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if employeeID != "" {
			emp, err := employees.GetActiveByID(ctx, employeeID)
			if err != nil {
				return err
			}
			if emp == nil {
				return domain.ErrEmployeeNotFound
			}
			rec.EmployeeID = emp.ID
			rec.EmployeeName = emp.Name
		}

		rec.PartnerID = partner.ID
		rec.PartnerName = partner.Name
		rec.ProductID = product.ID
		rec.ProductName = product.Name
		rec.TotalCredits = product.Cost(in.Quantity)
		return records.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.records.GetByID(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("registro %s no visible tras commit", rec.ID)
	}
	out := toRecordResponse(view)
	return &out, nil
}

// ListRecords historial paginado, opcionalmente filtrado por día local y por socio.
func (uc *UseCase) ListRecords(ctx context.Context, in dto.ListRecordsRequest) (*dto.RecordListResponse, error) {
	in.PageRequest.Normalize()

	var f repository.RecordFilter
	if in.PartnerID != "" {
		if err := dto.ValidateID("partner", in.PartnerID); err != nil {
			return nil, err
		}
		f.PartnerID = in.PartnerID
	}
	if in.Date != "" {
		from, to, err := uc.dayRange(in.Date)
		if err != nil {
			return nil, err
		}
		f.From, f.To = from, to
	}

	total, err := uc.records.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.RecordListResponse{
		Records:    []dto.RecordResponse{},
		Pagination: dto.NewPagination(in.PageRequest, total),
	}
	// Página posterior a la última: vacía sin consultar el store.
	if in.Page > out.Pagination.TotalPages {
		return out, nil
	}
	views, err := uc.records.List(ctx, f, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		out.Records = append(out.Records, toRecordResponse(v))
	}
	return out, nil
}

// ListPartnerRecords historial de un socio. Un socio sin registros devuelve lista vacía.
func (uc *UseCase) ListPartnerRecords(ctx context.Context, partnerID string, page dto.PageRequest) (*dto.RecordListResponse, error) {
	if err := dto.ValidateID("partnerId", partnerID); err != nil {
		return nil, err
	}
	return uc.ListRecords(ctx, dto.ListRecordsRequest{PageRequest: page, PartnerID: partnerID})
}

// GetRecord obtiene un registro enriquecido.
func (uc *UseCase) GetRecord(ctx context.Context, id string) (*dto.RecordResponse, error) {
	view, err := uc.getView(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toRecordResponse(view)
	return &out, nil
}

// GetStats totales del ledger y top de productos por cantidad canjeada.
func (uc *UseCase) GetStats(ctx context.Context) (*dto.RecordStatsDTO, error) {
	stats, err := uc.records.Stats(ctx, TopProducts)
	if err != nil {
		return nil, err
	}
	out := &dto.RecordStatsDTO{
		TotalRecords: stats.TotalRecords,
		TotalCredits: stats.TotalCredits,
		TopProducts:  make([]dto.TopProductDTO, 0, len(stats.TopProducts)),
	}
	for _, p := range stats.TopProducts {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID:     p.ProductID,
			Name:          p.Name,
			TotalQuantity: p.TotalQuantity,
			TotalCredits:  p.TotalCredits,
			Count:         p.Count,
		})
	}
	return out, nil
}

// Receipt genera el comprobante PDF del registro.
func (uc *UseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	view, err := uc.getView(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(ctx, view, uc.clock.Now().In(uc.cfg.Location))
}

func (uc *UseCase) getView(ctx context.Context, id string) (*repository.RecordView, error) {
	if err := dto.ValidateID("id", id); err != nil {
		return nil, err
	}
	view, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrRecordNotFound
	}
	return view, nil
}

// dayRange devuelve [00:00:00.000, 23:59:59.999] del día local indicado.
func (uc *UseCase) dayRange(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dto.DateLayout, date, uc.cfg.Location)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("date", "date debe tener formato YYYY-MM-DD")
	}
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end, nil
}

func toRecordResponse(v *repository.RecordView) dto.RecordResponse {
	out := dto.RecordResponse{
		ID:           v.ID,
		Partner:      dto.RecordPartner{ID: v.Partner.ID, Name: v.Partner.Name, Email: v.Partner.Email},
		Product:      dto.RecordProduct{ID: v.Product.ID, Name: v.Product.Name, Credits: v.Product.Credits},
		PartnerName:  v.PartnerName,
		ProductName:  v.ProductName,
		EmployeeName: v.EmployeeName,
		Quantity:     v.Quantity,
		TotalCredits: v.TotalCredits,
		CreatedAt:    v.CreatedAt,
	}
	if v.Employee != nil {
		out.Employee = &dto.RecordEmployee{ID: v.Employee.ID, Name: v.Employee.Name, Username: v.Employee.Username}
	}
	return out
}
