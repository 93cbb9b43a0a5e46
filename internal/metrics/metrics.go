package metrics

import (
	"context"
	"net/http"
	"time"

	"go-zeropool-dictionary/internal/messages"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Orchestrator metrics
var (
	BlocksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dictionary_blocks_processed_total",
		Help: "The total number of blocks indexed",
	})

	RowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dictionary_rows_written_total",
		Help: "The total number of rows written per table",
	}, []string{"table"})

	LastProcessedHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dictionary_last_processed_height",
		Help: "The last block height entirely indexed",
	})

	TargetHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dictionary_target_height",
		Help: "The finalized block height the dictionary is catching up to",
	})

	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dictionary_batch_duration_seconds",
		Help:    "The time spent fetching, decoding and writing one batch",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)

// Decoder metrics
var (
	DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dictionary_decode_failures_total",
		Help: "The number of blocks that failed to decode, by item kind",
	}, []string{"kind"})

	SpecVersion = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dictionary_spec_version",
		Help: "The spec version of the last indexed block",
	})
)

// Serve exposes the default registry on address until ctx is done
func Serve(ctx context.Context, address string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	messages.NewDictionaryMessage(messages.LOG_LEVEL_INFO, "", nil, messages.ORCHESTRATOR_METRICS_LISTENER, address).ConsoleLog()
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
