// Package trace wires OpenTelemetry tracing for generate and save actions.
// Export is opt-in through the standard OTEL_EXPORTER_OTLP_ENDPOINT variable.
package trace
