package models

import (
	"github.com/google/uuid"
)

// DateRange bounds reporting queries, both ends inclusive.
type DateRange struct {
	From Date
	To   Date
}

// ReportLine is a sale line joined with everything the sales report groups by.
type ReportLine struct {
	SaleID       uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	CategoryID   uuid.UUID
	CategoryName string
	Quantity     int
	Utility      float64
}

// ReportSale is a sale header joined with the seller name.
type ReportSale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SellerName    string
	Total         float64
	PaymentMethod PaymentMethod
}

type ProductUtility struct {
	Producto        string  `json:"producto"`
	Utilidad        float64 `json:"utilidad"`
	CantidadVendida int     `json:"cantidadVendida"`
}

type CategoryUtility struct {
	Categoria string  `json:"categoria"`
	Utilidad  float64 `json:"utilidad"`
}

type CategoryQuantity struct {
	Categoria       string `json:"categoria"`
	CantidadVendida int    `json:"cantidadVendida"`
}

type ProductQuantity struct {
	Producto        string `json:"producto"`
	CantidadVendida int    `json:"cantidadVendida"`
}

type UserSales struct {
	Usuario                string  `json:"usuario"`
	TotalVentas            float64 `json:"totalVentas"`
	TotalProductosVendidos int     `json:"totalProductosVendidos"`
}

type SalesReport struct {
	TotalProductosVendidos int                `json:"totalProductosVendidos"`
	UtilidadPorProducto    []ProductUtility   `json:"utilidadPorProducto"`
	UtilidadPorCategoria   []CategoryUtility  `json:"utilidadPorCategoria"`
	ProductosPorCategoria  []CategoryQuantity `json:"productosPorCategoria"`
	TotalUtilidad          float64            `json:"totalUtilidad"`
	TotalVentas            float64            `json:"totalVentas"`
	MetodoPagoTotales      map[string]float64 `json:"metodoPagoTotales"`
	VentasPorUsuario       []UserSales        `json:"ventasPorUsuario"`
	TopProductos           []ProductQuantity  `json:"topProductos"`
	TopCategoria           *CategoryQuantity  `json:"topCategoria"`
}

// RepairGrouping names the dimension repair tickets are counted by.
type RepairGrouping string

const (
	GroupByStatus     RepairGrouping = "estatus"
	GroupByTechnician RepairGrouping = "tecnico"
	GroupByBrand      RepairGrouping = "marca"
	GroupByFault      RepairGrouping = "falla"
	GroupByDate       RepairGrouping = "fecha"
)

type RepairGroup struct {
	Key        string  `json:"_id"`
	Total      int     `json:"total"`
	Cotizacion float64 `json:"cotizacion"`
	Adelanto   float64 `json:"adelanto"`
}

type DailyQuantity struct {
	Fecha    string  `json:"fecha"`
	Cantidad int     `json:"cantidad"`
	Total    float64 `json:"total"`
}

// TimeBucket is the width of one period in a time series report.
type TimeBucket string

const (
	BucketDay   TimeBucket = "day"
	BucketWeek  TimeBucket = "week"
	BucketMonth TimeBucket = "month"
	BucketYear  TimeBucket = "year"
)

func (b TimeBucket) Valid() bool {
	switch b {
	case BucketDay, BucketWeek, BucketMonth, BucketYear:
		return true
	}
	return false
}

// PeriodQuantity is the units of one product sold in the period starting at
// Periodo. Weeks start on Monday.
type PeriodQuantity struct {
	Periodo                string `json:"periodo"`
	TotalProductosVendidos int    `json:"totalProductosVendidos"`
}

type CategorySales struct {
	Categoria string  `json:"categoria"`
	Cantidad  int     `json:"cantidad"`
	Total     float64 `json:"total"`
}

type RepairTableRow struct {
	ID             uuid.UUID    `json:"id"`
	Cliente        string       `json:"cliente"`
	Marca          string       `json:"marca"`
	Modelo         string       `json:"modelo"`
	Tecnico        string       `json:"tecnico,omitempty"`
	Estatus        RepairStatus `json:"estatus"`
	FechaIngreso   Date         `json:"fechaIngreso"`
	Diagnostico    Date         `json:"fechaDiagnostico"`
	Cotizacion     float64      `json:"cotizacion"`
	Adelanto       float64      `json:"adelanto"`
	DiasPendientes *int         `json:"diasPendientes,omitempty"`
}
