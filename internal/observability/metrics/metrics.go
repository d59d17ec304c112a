// Package metrics expone las métricas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	TreatmentsPrescribed prometheus.Counter
	TreatmentsRejected   *prometheus.CounterVec
	HTTPDuration         *prometheus.HistogramVec
}

// New crea y registra todas las métricas en el registry por defecto.
// Llamar una sola vez por proceso.
func New() *Metrics {
	m := &Metrics{
		TreatmentsPrescribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "treatments_prescribed_total",
			Help: "Total treatments successfully prescribed",
		}),
		TreatmentsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "treatments_rejected_total",
			Help: "Total prescriptions rejected, by reason",
		}, []string{"reason"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "status"}),
	}

	prometheus.MustRegister(
		m.TreatmentsPrescribed,
		m.TreatmentsRejected,
		m.HTTPDuration,
	)

	return m
}

// Handler devuelve el handler HTTP de Prometheus para /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware observa la duración de cada request. Tolera m == nil para
// no obligar a registrar métricas en tests.
func Middleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			m.HTTPDuration.
				WithLabelValues(r.Method, strconv.Itoa(sw.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
