// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Recovery and Timeout answer aborted requests through an AbortFunc, so
// wizard pages fail with an HTML page and the JSON API with problem+json.
package middleware
