package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sports_inventory"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SalesTotal   *prometheus.CounterVec
	UnitsSold    prometheus.Counter
	HTTPDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SalesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_transactions_total",
			Help:      "Sale attempts by outcome.",
		}, []string{"result"}),
		UnitsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_units_sold_total",
			Help:      "Equipment units removed from stock by committed sales.",
		}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.SalesTotal, m.UnitsSold, m.HTTPDuration)
	return m
}

// ObserveSale counts one sale attempt. units is only added for successful sales.
func (m *Metrics) ObserveSale(result string, units int) {
	if m == nil {
		return
	}
	m.SalesTotal.WithLabelValues(result).Inc()
	if result == "success" && units > 0 {
		m.UnitsSold.Add(float64(units))
	}
}

// Middleware records request latency keyed by the matched route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
