package intake

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/domain/application"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/httpclient"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SubmissionGateway = (*Client)(nil)
	_ ports.HealthChecker     = (*Client)(nil)
)

// ApplicationsPath is where applications are posted on the intake API.
const ApplicationsPath = "/applications"

// Client forwards applications to the intake API. Each application is
// posted with its id as the Idempotency-Key, so retried deliveries are
// safe and a 409 for the same id counts as delivered.
type Client struct {
	hc  *httpclient.Client
	req *requester
}

// NewClient creates a Client sending through hc. A nil logger discards
// output.
func NewClient(hc *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{hc: hc, req: &requester{client: hc, logger: logger}}
}

// Deliver posts the application to the intake API.
func (c *Client) Deliver(ctx context.Context, a *application.Application) error {
	ctx = httpclient.WithIdempotencyKey(ctx, a.ID)

	var receipt receiptResponse
	status, err := c.req.postJSON(ctx, ApplicationsPath, toApplicationRequest(a), &receipt,
		http.StatusCreated, http.StatusAccepted, http.StatusOK)
	if status == http.StatusConflict && errors.Is(err, domain.ErrConflict) {
		c.req.logger.InfoContext(ctx, "application already received by intake",
			slog.String("application_id", a.ID),
		)
		return nil
	}
	if err != nil {
		return err
	}

	c.req.logger.InfoContext(ctx, "application delivered to intake",
		slog.String("application_id", a.ID),
		slog.String("reference", receipt.Reference),
		slog.Int("status", status),
	)
	return nil
}

// Name returns the identifier used in readiness results.
func (c *Client) Name() string {
	return c.hc.Name()
}

// HealthCheck reports the intake API's availability from the circuit
// breaker state; no network call is made. This is downstream status, not
// service readiness: the wizard keeps working while the intake is down.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.hc.HealthCheck(ctx)
}
