package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "repairshop"

var (
	salesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_created_total",
		Help:      "Sales committed, stock already deducted.",
	})

	saleStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sale_stock_rejections_total",
		Help:      "Sales rolled back because a line asked for more units than were in stock.",
	})

	repairStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repair_status_updates_total",
		Help:      "Repair tickets moved to a new status.",
	}, []string{"status"})
)

func SaleCreated() { salesCreated.Inc() }

func SaleStockRejected() { saleStockRejections.Inc() }

func RepairStatusUpdated(status string) {
	repairStatusUpdates.WithLabelValues(status).Inc()
}

func init() {
	for name, c := range map[string]prometheus.Collector{
		"process": collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		"go":      collectors.NewGoCollector(),
	} {
		if err := prometheus.Register(c); err != nil {
			slog.Debug("Collector already registered", slog.String("collector", name), slog.String("error", err.Error()))
		}
	}
}

// Handler serves the default registry for Prometheus to scrape.
func Handler() http.Handler {
	return promhttp.Handler()
}
