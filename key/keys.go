// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Source Identifiers - these keys manage the selection of the active provider.
const (
	DefaultSources = "sources.default"
)

// Electronic Program Guide - these keys define the EPG window and the request granularity.
// The two display keys mirror the host media center's own setting names.
const (
	EPGPastDays     = "epg.pastdaystodisplay"
	EPGFutureDays   = "epg.futuredaystodisplay"
	EPGChunksPerDay = "epg.chunks_per_day"
	EPGConcurrency  = "epg.concurrency"
)

// Digital Rights Management - these keys select the license acquisition flow.
const (
	DRMSystem = "drm.system"
)

// Network Transport - these keys tune the upstream HTTP client.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)

// Observability - these keys configure error reporting and metric export.
const (
	TelemetrySentryDSN = "telemetry.sentry_dsn"
	MetricsTextfile    = "metrics.textfile"
)

// Scheduling - these keys configure the periodic export runner.
const (
	ScheduleCron = "schedule.cron"
)
