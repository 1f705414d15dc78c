package config

import (
	"errors"
	"fmt"
)

// minSecretLength is the shortest accepted HMAC key for the cookie store.
const minSecretLength = 32

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Draft.validate(),
		c.Submission.validate(),
		c.Telemetry.validate(),
		c.validateSubmissionFits(),
	)
}

// validateSubmissionFits rejects a simulated delay that the request timeout,
// derived from server.write_timeout, would always cut short.
func (c *Config) validateSubmissionFits() error {
	if c.Submission.Forward || c.Server.WriteTimeout <= 0 {
		return nil
	}
	if c.Submission.Delay >= c.Server.WriteTimeout {
		return fmt.Errorf("submission.delay (%s) must be shorter than server.write_timeout (%s)",
			c.Submission.Delay, c.Server.WriteTimeout)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DraftConfig) validate() error {
	var errs []error

	switch d.Store {
	case StoreCookie:
		if len(d.Secret) < minSecretLength {
			errs = append(errs, fmt.Errorf("draft.secret must be at least %d bytes for the cookie store, got %d",
				minSecretLength, len(d.Secret)))
		}
	case StoreMemory:
		if d.CleanupInterval <= 0 {
			errs = append(errs, errors.New("draft.cleanup_interval must be positive for the memory store"))
		}
	default:
		errs = append(errs, fmt.Errorf("draft.store must be one of: cookie, memory; got %q", d.Store))
	}

	if d.TTL <= 0 {
		errs = append(errs, errors.New("draft.ttl must be positive"))
	}
	if d.MaxValueLength < 1 {
		errs = append(errs, fmt.Errorf("draft.max_value_length must be >= 1, got %d", d.MaxValueLength))
	}

	return errors.Join(errs...)
}

func (s *SubmissionConfig) validate() error {
	var errs []error

	if s.Delay < 0 {
		errs = append(errs, errors.New("submission.delay must not be negative"))
	}
	if s.Forward {
		errs = append(errs, s.Client.validate())
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("submission.client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("submission.client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("submission.client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("submission.client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("submission.client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("submission.client.rate_limit.requests_per_second must not be negative"))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("submission.client.rate_limit.burst_size must be >= 1, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
