package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/domain"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/port"
)

// HTTPGateway talks to the external payment gateway over HTTP. It implements
// both payment ports: Charge for the order-placement path and Process for the
// standalone payment-processing path. The gateway owns retry policy; this
// client makes exactly one attempt per call.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPGateway(baseURL string, logger *zap.Logger) *HTTPGateway {
	// No client-level timeout: each call is bounded by its context.
	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}
	return &HTTPGateway{baseURL: baseURL, client: client, logger: logger}
}

type chargeRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type processRequest struct {
	Method  string                `json:"method"`
	Details domain.PaymentDetails `json:"details"`
	Amount  float64               `json:"amount"`
}

func (g *HTTPGateway) Charge(ctx context.Context, amount float64, currency string, metadata map[string]string) (*port.ChargeResult, error) {
	return g.post(ctx, "/v1/charges", chargeRequest{
		Amount:   amount,
		Currency: currency,
		Metadata: metadata,
	})
}

func (g *HTTPGateway) Process(ctx context.Context, method domain.PaymentMethod, details domain.PaymentDetails, amount float64) (*port.ChargeResult, error) {
	return g.post(ctx, "/v1/payments", processRequest{
		Method:  string(method),
		Details: details,
		Amount:  amount,
	})
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload any) (*port.ChargeResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	// Declines arrive as 402 with the same response shape.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPaymentRequired {
		g.logger.Error("gateway returned unexpected status",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("gateway returned status %s", resp.Status)
	}

	var result port.ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	return &result, nil
}
