package gaussgen

import "github.com/hupe1980/gaussgen/codec"

type options struct {
	points           int
	clusters         int
	compression      codec.Compression
	manifest         bool
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		points:           DefaultPoints,
		clusters:         DefaultClusters,
		compression:      codec.CompressionNone,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures Generate and Write.
//
// Only WithPoints and WithClusters affect generated values; the seed and
// the standard deviation are fixed. The remaining options control how
// artifacts are framed and reported.
type Option func(*options)

// WithPoints sets N, the total number of points. Default: 1,000,000.
func WithPoints(n int) Option {
	return func(o *options) {
		o.points = n
	}
}

// WithClusters sets K, the number of clusters. Default: 16.
func WithClusters(k int) Option {
	return func(o *options) {
		o.clusters = k
	}
}

// WithCompression frames both artifacts with c and appends its extension
// to their names.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithManifest additionally writes MANIFEST.json and commits CURRENT.
func WithManifest() Option {
	return func(o *options) {
		o.manifest = true
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
