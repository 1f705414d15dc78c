package config

const (
	defaultServerPort = 8080

	defaultMaxValueLength = 200

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key listed here can also be set from the environment, including keys
// no YAML file mentions (such as draft.secret).
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"draft.store":            StoreCookie,
		"draft.secret":           "",
		"draft.ttl":              "24h",
		"draft.secure":           true,
		"draft.max_value_length": defaultMaxValueLength,
		"draft.cleanup_interval": "10m",

		"submission.delay":                                  "2s",
		"submission.forward":                                false,
		"submission.client.base_url":                        "http://localhost:8081",
		"submission.client.timeout":                         "30s",
		"submission.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"submission.client.retry.initial_interval":          "100ms",
		"submission.client.retry.max_interval":              "10s",
		"submission.client.retry.multiplier":                defaultRetryMultiplier,
		"submission.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"submission.client.circuit_breaker.timeout":         "30s",
		"submission.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"submission.client.rate_limit.requests_per_second":  0,
		"submission.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "gtti-registration",
	}
}
