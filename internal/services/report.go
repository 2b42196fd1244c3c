package service

import (
	"context"
	"sort"
	"time"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/google/uuid"
)

const topProductsLimit = 3

// openRangeStart stands in for a missing lower bound on range reports.
var openRangeStart = models.NewDate(time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC))

type ReportService interface {
	GeneralSalesReport(ctx context.Context, rng models.DateRange) (*models.SalesReport, error)
	RepairsBy(ctx context.Context, grouping models.RepairGrouping, rng models.DateRange) ([]models.RepairGroup, error)
	ProductsSoldPerDay(ctx context.Context, rng models.DateRange) ([]models.DailyQuantity, error)
	ProductSoldOverTime(ctx context.Context, productID uuid.UUID, rng models.DateRange, unit models.TimeBucket) ([]models.PeriodQuantity, error)
	ProductsPerCategory(ctx context.Context, rng models.DateRange) ([]models.CategorySales, error)
	RepairTable(ctx context.Context) ([]*models.RepairTableRow, error)
}

type reportService struct {
	repo  repository.ReportRepository
	clock func() time.Time
}

func NewReportService(repo repository.ReportRepository, clock func() time.Time) ReportService {
	if clock == nil {
		clock = time.Now
	}

	return &reportService{repo: repo, clock: clock}
}

func checkRange(rng models.DateRange) error {
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.From.After(rng.To.Time) {
		return appErrors.ValidationError("Start date must not be after end date").
			WithDetail(rng.From.String() + " > " + rng.To.String())
	}
	return nil
}

// openRange fills missing bounds so the range covers everything up to today.
func (s *reportService) openRange(rng models.DateRange) (models.DateRange, error) {
	if err := checkRange(rng); err != nil {
		return rng, err
	}

	if rng.From.IsZero() {
		rng.From = openRangeStart
	}

	if rng.To.IsZero() {
		rng.To = models.NewDate(s.clock())
	}

	return rng, nil
}

// GeneralSalesReport summarises sales and their lines between two dates.
// Both bounds are required.
func (s *reportService) GeneralSalesReport(ctx context.Context, rng models.DateRange) (*models.SalesReport, error) {

	if rng.From.IsZero() || rng.To.IsZero() {
		return nil, appErrors.ValidationError("A date range is required")
	}

	if err := checkRange(rng); err != nil {
		return nil, err
	}

	sales, err := s.repo.SalesInRange(ctx, rng)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	lines, err := s.repo.LinesInRange(ctx, rng)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sale lines").WithError(err)
	}

	return buildSalesReport(sales, lines), nil
}

func buildSalesReport(sales []models.ReportSale, lines []models.ReportLine) *models.SalesReport {

	report := &models.SalesReport{
		UtilidadPorProducto:   []models.ProductUtility{},
		UtilidadPorCategoria:  []models.CategoryUtility{},
		ProductosPorCategoria: []models.CategoryQuantity{},
		MetodoPagoTotales:     map[string]float64{},
		VentasPorUsuario:      []models.UserSales{},
		TopProductos:          []models.ProductQuantity{},
	}

	// first-seen order keeps the output stable between calls
	productIdx := map[uuid.UUID]int{}
	categoryIdx := map[uuid.UUID]int{}
	userIdx := map[uuid.UUID]int{}

	saleByID := make(map[uuid.UUID]models.ReportSale, len(sales))
	for _, sale := range sales {
		saleByID[sale.ID] = sale
	}

	var utilities []float64

	for _, line := range lines {
		report.TotalProductosVendidos += line.Quantity
		utilities = append(utilities, line.Utility)

		i, ok := productIdx[line.ProductID]
		if !ok {
			i = len(report.UtilidadPorProducto)
			productIdx[line.ProductID] = i
			report.UtilidadPorProducto = append(report.UtilidadPorProducto, models.ProductUtility{Producto: line.ProductName})
		}
		report.UtilidadPorProducto[i].Utilidad = Sum(report.UtilidadPorProducto[i].Utilidad, line.Utility)
		report.UtilidadPorProducto[i].CantidadVendida += line.Quantity

		c, ok := categoryIdx[line.CategoryID]
		if !ok {
			c = len(report.UtilidadPorCategoria)
			categoryIdx[line.CategoryID] = c
			report.UtilidadPorCategoria = append(report.UtilidadPorCategoria, models.CategoryUtility{Categoria: line.CategoryName})
			report.ProductosPorCategoria = append(report.ProductosPorCategoria, models.CategoryQuantity{Categoria: line.CategoryName})
		}
		report.UtilidadPorCategoria[c].Utilidad = Sum(report.UtilidadPorCategoria[c].Utilidad, line.Utility)
		report.ProductosPorCategoria[c].CantidadVendida += line.Quantity

		sale, ok := saleByID[line.SaleID]
		if !ok {
			continue
		}

		u, ok := userIdx[sale.UserID]
		if !ok {
			u = len(report.VentasPorUsuario)
			userIdx[sale.UserID] = u
			report.VentasPorUsuario = append(report.VentasPorUsuario, models.UserSales{Usuario: sale.SellerName})
		}
		report.VentasPorUsuario[u].TotalProductosVendidos += line.Quantity
	}

	report.TotalUtilidad = Sum(utilities...)

	var totals []float64

	for _, sale := range sales {
		totals = append(totals, sale.Total)

		method := string(sale.PaymentMethod)
		report.MetodoPagoTotales[method] = Sum(report.MetodoPagoTotales[method], sale.Total)

		// sellers without lines in range are left out
		if u, ok := userIdx[sale.UserID]; ok {
			report.VentasPorUsuario[u].TotalVentas = Sum(report.VentasPorUsuario[u].TotalVentas, sale.Total)
		}
	}

	report.TotalVentas = Sum(totals...)

	for _, p := range report.UtilidadPorProducto {
		report.TopProductos = append(report.TopProductos, models.ProductQuantity{Producto: p.Producto, CantidadVendida: p.CantidadVendida})
	}
	sort.SliceStable(report.TopProductos, func(a, b int) bool {
		return report.TopProductos[a].CantidadVendida > report.TopProductos[b].CantidadVendida
	})
	if len(report.TopProductos) > topProductsLimit {
		report.TopProductos = report.TopProductos[:topProductsLimit]
	}

	for i := range report.ProductosPorCategoria {
		if report.TopCategoria == nil || report.ProductosPorCategoria[i].CantidadVendida > report.TopCategoria.CantidadVendida {
			top := report.ProductosPorCategoria[i]
			report.TopCategoria = &top
		}
	}

	return report
}

func (s *reportService) RepairsBy(ctx context.Context, grouping models.RepairGrouping, rng models.DateRange) ([]models.RepairGroup, error) {

	switch grouping {
	case models.GroupByStatus, models.GroupByTechnician, models.GroupByBrand, models.GroupByFault, models.GroupByDate:
	default:
		return nil, appErrors.BadRequestError("Unknown repair grouping").WithDetail(string(grouping))
	}

	rng, err := s.openRange(rng)
	if err != nil {
		return nil, err
	}

	groups, err := s.repo.RepairsGroupedBy(ctx, grouping, rng)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to group repairs").WithError(err)
	}

	return groups, nil
}

func (s *reportService) ProductsSoldPerDay(ctx context.Context, rng models.DateRange) ([]models.DailyQuantity, error) {

	rng, err := s.openRange(rng)
	if err != nil {
		return nil, err
	}

	days, err := s.repo.ProductsSoldPerDay(ctx, rng)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products sold per day").WithError(err)
	}

	return days, nil
}

// ProductSoldOverTime buckets the units sold of one product by day, week,
// month or year. Product, both dates and the unit are required.
func (s *reportService) ProductSoldOverTime(ctx context.Context, productID uuid.UUID, rng models.DateRange, unit models.TimeBucket) ([]models.PeriodQuantity, error) {

	if productID == uuid.Nil {
		return nil, appErrors.ValidationError("A product is required")
	}

	if rng.From.IsZero() || rng.To.IsZero() {
		return nil, appErrors.ValidationError("A date range is required")
	}

	if err := checkRange(rng); err != nil {
		return nil, err
	}

	if !unit.Valid() {
		return nil, appErrors.ValidationError("Unknown interval").WithDetail(string(unit))
	}

	periods, err := s.repo.ProductSoldOverTime(ctx, productID, rng, unit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch product sales over time").WithError(err)
	}

	return periods, nil
}

func (s *reportService) ProductsPerCategory(ctx context.Context, rng models.DateRange) ([]models.CategorySales, error) {

	rng, err := s.openRange(rng)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.ProductsSoldPerCategory(ctx, rng)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products sold per category").WithError(err)
	}

	return categories, nil
}

// RepairTable sets diasPendientes on PENDIENTE tickets, counted from the
// diagnosis date or, before diagnosis, from intake.
func (s *reportService) RepairTable(ctx context.Context) ([]*models.RepairTableRow, error) {

	rows, err := s.repo.RepairTable(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch repair table").WithError(err)
	}

	today := models.NewDate(s.clock())

	for _, row := range rows {
		if row.Estatus != models.RepairPendiente {
			continue
		}

		since := row.Diagnostico
		if since.IsZero() {
			since = row.FechaIngreso
		}
		if since.IsZero() {
			continue
		}

		days := max(int(today.Sub(since.Time).Hours()/24), 0)
		row.DiasPendientes = &days
	}

	return rows, nil
}
