package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/asoadmin-api/internal/domain/entity"
	"github.com/jhoicas/asoadmin-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// Lectura enriquecida: instantáneas del registro más los datos actuales de sus referencias.
const recordViewSelect = `
	SELECT r.id, r.partner_id, r.product_id, COALESCE(r.employee_id::text, ''),
		r.partner_name, r.product_name, COALESCE(r.employee_name, ''),
		r.quantity, r.total_credits, r.created_at,
		p.name, COALESCE(p.email, ''),
		pr.name, pr.credits,
		e.id::text, e.name, COALESCE(e.username, '')
	FROM records r
	JOIN partners p ON p.id = r.partner_id
	JOIN products pr ON pr.id = r.product_id
	LEFT JOIN employees e ON e.id = r.employee_id`

// RecordRepo ledger append-only sobre PostgreSQL.
type RecordRepo struct {
	q Querier
}

func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

// Create inserta el registro. No existe operación de actualización ni borrado.
func (r *RecordRepo) Create(ctx context.Context, rec *entity.Record) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO records (id, partner_id, product_id, employee_id, partner_name, product_name,
			employee_name, quantity, total_credits, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.PartnerID, rec.ProductID, nullIfEmpty(rec.EmployeeID), rec.PartnerName,
		rec.ProductName, nullIfEmpty(rec.EmployeeName), rec.Quantity, rec.TotalCredits, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (r *RecordRepo) GetByID(ctx context.Context, id string) (*repository.RecordView, error) {
	v, err := scanRecordView(r.q.QueryRow(ctx, recordViewSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return v, nil
}

func (r *RecordRepo) List(ctx context.Context, f repository.RecordFilter, limit, offset int) ([]*repository.RecordView, error) {
	where, args := recordWhere(f)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s%s ORDER BY r.created_at DESC, r.id DESC LIMIT $%d OFFSET $%d`,
		recordViewSelect, where, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()
	list := make([]*repository.RecordView, 0)
	for rows.Next() {
		v, err := scanRecordView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *RecordRepo) Count(ctx context.Context, f repository.RecordFilter) (int, error) {
	where, args := recordWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM records r`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Stats totales globales y ranking por producto. Usa COALESCE para devolver cero sin registros.
func (r *RecordRepo) Stats(ctx context.Context, topN int) (*repository.RecordStats, error) {
	var stats repository.RecordStats
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_credits), 0) FROM records`,
	).Scan(&stats.TotalRecords, &stats.TotalCredits); err != nil {
		return nil, fmt.Errorf("record totals: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT r.product_id, pr.name, SUM(r.quantity)::bigint, COALESCE(SUM(r.total_credits), 0), COUNT(*)
		FROM records r
		JOIN products pr ON pr.id = r.product_id
		GROUP BY r.product_id, pr.name
		ORDER BY SUM(r.quantity) DESC, r.product_id ASC
		LIMIT $1`, topN)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	stats.TopProducts = make([]repository.ProductRanking, 0, topN)
	for rows.Next() {
		var pr repository.ProductRanking
		if err := rows.Scan(&pr.ProductID, &pr.Name, &pr.TotalQuantity, &pr.TotalCredits, &pr.Count); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		stats.TopProducts = append(stats.TopProducts, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func recordWhere(f repository.RecordFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PartnerID != "" {
		args = append(args, f.PartnerID)
		conds = append(conds, fmt.Sprintf("r.partner_id = $%d", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		conds = append(conds, fmt.Sprintf("r.created_at >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		conds = append(conds, fmt.Sprintf("r.created_at <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRecordView(row pgx.Row) (*repository.RecordView, error) {
	var v repository.RecordView
	var empID, empName *string
	var empUsername string
	if err := row.Scan(
		&v.ID, &v.PartnerID, &v.ProductID, &v.EmployeeID,
		&v.PartnerName, &v.ProductName, &v.EmployeeName,
		&v.Quantity, &v.TotalCredits, &v.CreatedAt,
		&v.Partner.Name, &v.Partner.Email,
		&v.Product.Name, &v.Product.Credits,
		&empID, &empName, &empUsername,
	); err != nil {
		return nil, err
	}
	v.Partner.ID = v.PartnerID
	v.Product.ID = v.ProductID
	if empID != nil {
		v.Employee = &repository.EmployeeSummary{ID: *empID, Username: empUsername}
		if empName != nil {
			v.Employee.Name = *empName
		}
	}
	return &v, nil
}
