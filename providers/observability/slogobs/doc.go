// Package slogobs provides an observability.Logger implementation backed by
// Go's standard library log/slog package. It supports text and JSON output;
// format and level can be tuned with [WithFormat], [WithLevel], [WithOutput]
// and [WithLogger], or through the SIFT_LOG_FORMAT / SIFT_LOG_LEVEL
// environment variables (falling back to LOG_FORMAT / LOG_LEVEL).
package slogobs
