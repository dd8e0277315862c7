package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/tinyland/lab/wrist-pulse/engine"
)

// metrics exposes daemon counters over a Prometheus endpoint.
type metrics struct {
	registry *prometheus.Registry

	samplesTotal   *prometheus.CounterVec
	rolloversTotal prometheus.Counter
	minutesToday   prometheus.Gauge
	daysLogged     prometheus.Gauge
	debounceArmed  prometheus.Gauge
}

// newMetrics creates and registers the daemon metric set on a private
// registry so the endpoint only serves what the daemon owns.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		samplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wristpulse_samples_total",
			Help: "Minute samples processed, by motion state.",
		}, []string{"state"}),
		rolloversTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wristpulse_rollovers_total",
			Help: "Daily rollover commits performed.",
		}),
		minutesToday: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wristpulse_minutes_today",
			Help: "Active minutes credited to the current day.",
		}),
		daysLogged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wristpulse_days_logged",
			Help: "Days ever committed to the daily ring.",
		}),
		debounceArmed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wristpulse_debounce_armed",
			Help: "Whether the previous sampled minute was active (0 or 1).",
		}),
	}

	m.registry.MustRegister(
		m.samplesTotal,
		m.rolloversTotal,
		m.minutesToday,
		m.daysLogged,
		m.debounceArmed,
	)
	return m
}

// observeSample records one processed minute sample.
func (m *metrics) observeSample(absent bool) {
	state := "active"
	if absent {
		state = "absent"
	}
	m.samplesTotal.WithLabelValues(state).Inc()
}

// observeRollover records a daily commit.
func (m *metrics) observeRollover() {
	m.rolloversTotal.Inc()
}

// syncFrom updates the gauges from the engine state.
func (m *metrics) syncFrom(l *engine.Log) {
	m.minutesToday.Set(float64(l.MinutesToday()))
	m.daysLogged.Set(float64(l.DaysLogged()))
	if l.DebounceArmed() {
		m.debounceArmed.Set(1)
	} else {
		m.debounceArmed.Set(0)
	}
}

// serve runs the metrics HTTP endpoint until the context is cancelled.
func (m *metrics) serve(ctx context.Context, addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics endpoint failed", "addr", addr, "error", err)
	}
}
