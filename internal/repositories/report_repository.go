package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

// ReportRepository holds the read-only projections behind the reporting routes.
type ReportRepository interface {
	SalesInRange(ctx context.Context, rng models.DateRange) ([]models.ReportSale, error)
	LinesInRange(ctx context.Context, rng models.DateRange) ([]models.ReportLine, error)
	RepairsGroupedBy(ctx context.Context, grouping models.RepairGrouping, rng models.DateRange) ([]models.RepairGroup, error)
	ProductsSoldPerDay(ctx context.Context, rng models.DateRange) ([]models.DailyQuantity, error)
	ProductSoldOverTime(ctx context.Context, productID uuid.UUID, rng models.DateRange, unit models.TimeBucket) ([]models.PeriodQuantity, error)
	ProductsSoldPerCategory(ctx context.Context, rng models.DateRange) ([]models.CategorySales, error)
	RepairTable(ctx context.Context) ([]*models.RepairTableRow, error)
}

type reportRepository struct {
	DB *sql.DB
}

func NewReportRepo(db *sql.DB) ReportRepository {
	return &reportRepository{DB: db}
}

func (r *reportRepository) SalesInRange(ctx context.Context, rng models.DateRange) ([]models.ReportSale, error) {
	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `
		SELECT s.id, s.user_id, COALESCE(u.nombre, ''), s.total, s.metodo_pago
		FROM sales s
		LEFT JOIN users u ON s.user_id = u.id
		WHERE s.fecha BETWEEN $1 AND $2
		ORDER BY s.fecha, s.hora`

	rows, err := r.DB.QueryContext(dbCtx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales in range: %w", err)
	}
	defer rows.Close()

	sales := []models.ReportSale{}

	for rows.Next() {
		var s models.ReportSale
		if err := rows.Scan(&s.ID, &s.UserID, &s.SellerName, &s.Total, &s.PaymentMethod); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *reportRepository) LinesInRange(ctx context.Context, rng models.DateRange) ([]models.ReportLine, error) {
	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `
		SELECT l.sale_id, l.product_id, COALESCE(p.name, ''), p.category_id, COALESCE(c.name, ''), l.cantidad, l.utilidad
		FROM sale_lines l
		JOIN sales s ON l.sale_id = s.id
		LEFT JOIN products p ON l.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE s.fecha BETWEEN $1 AND $2`

	rows, err := r.DB.QueryContext(dbCtx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines in range: %w", err)
	}
	defer rows.Close()

	lines := []models.ReportLine{}

	for rows.Next() {
		var l models.ReportLine
		var categoryID uuid.NullUUID
		if err := rows.Scan(&l.SaleID, &l.ProductID, &l.ProductName, &categoryID, &l.CategoryName, &l.Quantity, &l.Utility); err != nil {
			return nil, err
		}
		l.CategoryID = categoryID.UUID
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

var repairGroupKeys = map[models.RepairGrouping]string{
	models.GroupByStatus:     "r.estatus",
	models.GroupByTechnician: "COALESCE(ut.nombre || ' ' || ut.apellido, 'SIN ASIGNAR')",
	models.GroupByBrand:      "COALESCE(m.name, '')",
	models.GroupByFault:      "f.name",
	models.GroupByDate:       "to_char(r.fecha_ingreso, 'YYYY-MM-DD')",
}

func (r *reportRepository) RepairsGroupedBy(ctx context.Context, grouping models.RepairGrouping, rng models.DateRange) ([]models.RepairGroup, error) {
	key, ok := repairGroupKeys[grouping]
	if !ok {
		return nil, fmt.Errorf("unknown repair grouping %q", grouping)
	}

	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	joins := `
		LEFT JOIN users ut ON r.tecnico_id = ut.id
		LEFT JOIN marcas m ON r.marca_id = m.id`
	if grouping == models.GroupByFault {
		joins += `
		JOIN repair_fallas rf ON rf.repair_id = r.id
		JOIN fallas f ON rf.falla_id = f.id`
	}

	query := fmt.Sprintf(`
		SELECT %s AS grp, COUNT(*), COALESCE(SUM(r.cotizacion), 0), COALESCE(SUM(r.adelanto), 0)
		FROM repairs r %s
		WHERE r.fecha_ingreso BETWEEN $1 AND $2
		GROUP BY grp
		ORDER BY grp`, key, joins)

	rows, err := r.DB.QueryContext(dbCtx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to group repairs by %s: %w", grouping, err)
	}
	defer rows.Close()

	groups := []models.RepairGroup{}

	for rows.Next() {
		var g models.RepairGroup
		if err := rows.Scan(&g.Key, &g.Total, &g.Cotizacion, &g.Adelanto); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r *reportRepository) ProductsSoldPerDay(ctx context.Context, rng models.DateRange) ([]models.DailyQuantity, error) {
	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `
		SELECT to_char(s.fecha, 'YYYY-MM-DD') AS day, SUM(l.cantidad), SUM(l.subtotal)
		FROM sale_lines l
		JOIN sales s ON l.sale_id = s.id
		WHERE s.fecha BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day`

	rows, err := r.DB.QueryContext(dbCtx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query products sold per day: %w", err)
	}
	defer rows.Close()

	days := []models.DailyQuantity{}

	for rows.Next() {
		var d models.DailyQuantity
		if err := rows.Scan(&d.Fecha, &d.Cantidad, &d.Total); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// date_trunc units, never taken from the request as is
var timeBucketUnits = map[models.TimeBucket]string{
	models.BucketDay:   "day",
	models.BucketWeek:  "week",
	models.BucketMonth: "month",
	models.BucketYear:  "year",
}

func (r *reportRepository) ProductSoldOverTime(ctx context.Context, productID uuid.UUID, rng models.DateRange, unit models.TimeBucket) ([]models.PeriodQuantity, error) {
	trunc, ok := timeBucketUnits[unit]
	if !ok {
		return nil, fmt.Errorf("unknown time bucket %q", unit)
	}

	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT to_char(date_trunc('%s', s.fecha), 'YYYY-MM-DD') AS periodo, SUM(l.cantidad)
		FROM sale_lines l
		JOIN sales s ON l.sale_id = s.id
		WHERE l.product_id = $1 AND s.fecha BETWEEN $2 AND $3
		GROUP BY periodo
		ORDER BY periodo`, trunc)

	rows, err := r.DB.QueryContext(dbCtx, query, productID, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query product %s sold per %s: %w", productID, unit, err)
	}
	defer rows.Close()

	periods := []models.PeriodQuantity{}

	for rows.Next() {
		var p models.PeriodQuantity
		if err := rows.Scan(&p.Periodo, &p.TotalProductosVendidos); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}

	return periods, rows.Err()
}

func (r *reportRepository) ProductsSoldPerCategory(ctx context.Context, rng models.DateRange) ([]models.CategorySales, error) {
	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `
		SELECT COALESCE(c.name, 'SIN CATEGORIA') AS cat, SUM(l.cantidad), SUM(l.subtotal)
		FROM sale_lines l
		JOIN sales s ON l.sale_id = s.id
		LEFT JOIN products p ON l.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE s.fecha BETWEEN $1 AND $2
		GROUP BY cat
		ORDER BY SUM(l.cantidad) DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query products sold per category: %w", err)
	}
	defer rows.Close()

	cats := []models.CategorySales{}

	for rows.Next() {
		var c models.CategorySales
		if err := rows.Scan(&c.Categoria, &c.Cantidad, &c.Total); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}

	return cats, rows.Err()
}

func (r *reportRepository) RepairTable(ctx context.Context) ([]*models.RepairTableRow, error) {
	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `
		SELECT r.id, COALESCE(c.first_name || ' ' || c.last_name, ''), COALESCE(m.name, ''), r.modelo,
		       COALESCE(ut.nombre || ' ' || ut.apellido, ''), r.estatus, r.fecha_ingreso, r.fecha_diagnostico,
		       r.cotizacion, r.adelanto
		FROM repairs r
		LEFT JOIN clients c ON r.cliente_id = c.id
		LEFT JOIN marcas m ON r.marca_id = m.id
		LEFT JOIN users ut ON r.tecnico_id = ut.id
		ORDER BY r.fecha_ingreso DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query repair table: %w", err)
	}
	defer rows.Close()

	table := []*models.RepairTableRow{}

	for rows.Next() {
		row := &models.RepairTableRow{}
		if err := rows.Scan(&row.ID, &row.Cliente, &row.Marca, &row.Modelo, &row.Tecnico, &row.Estatus,
			&row.FechaIngreso, &row.Diagnostico, &row.Cotizacion, &row.Adelanto); err != nil {
			return nil, err
		}
		table = append(table, row)
	}

	return table, rows.Err()
}
