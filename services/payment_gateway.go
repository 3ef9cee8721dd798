package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campus-news-api/config"
)

// GatewayAuthorization is the redirect handle returned by the payment
// provider when a transaction is initialized.
type GatewayAuthorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// GatewayTransaction is the provider's view of a transaction at verify time.
// Amount is in minor units.
type GatewayTransaction struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
}

func (t *GatewayTransaction) Succeeded() bool {
	return t.Status == "success"
}

// PaymentGateway abstracts the external payment provider so handlers and
// services can run against a test double.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, amountMinor int64, email, reference, callbackURL string) (*GatewayAuthorization, error)
	VerifyTransaction(ctx context.Context, reference string) (*GatewayTransaction, error)
}

type paystackGateway struct {
	cfg    config.PaymentConfig
	client *http.Client
}

func NewPaystackGateway(cfg config.PaymentConfig) PaymentGateway {
	return &paystackGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (g *paystackGateway) InitializeTransaction(ctx context.Context, amountMinor int64, email, reference, callbackURL string) (*GatewayAuthorization, error) {
	payload := map[string]interface{}{
		"amount":    amountMinor,
		"email":     email,
		"reference": reference,
	}
	if callbackURL != "" {
		payload["callback_url"] = callbackURL
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	data, err := g.call(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var auth GatewayAuthorization
	if err := json.Unmarshal(data, &auth); err != nil {
		return nil, fmt.Errorf("payment gateway returned malformed authorization: %w", err)
	}
	return &auth, nil
}

func (g *paystackGateway) VerifyTransaction(ctx context.Context, reference string) (*GatewayTransaction, error) {
	data, err := g.call(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var txn GatewayTransaction
	if err := json.Unmarshal(data, &txn); err != nil {
		return nil, fmt.Errorf("payment gateway returned malformed transaction: %w", err)
	}
	return &txn, nil
}

func (g *paystackGateway) call(ctx context.Context, method, path string, body *bytes.Reader) (json.RawMessage, error) {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = body
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope paystackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("payment gateway returned malformed response: %w", err)
	}

	if resp.StatusCode >= 400 || !envelope.Status {
		return nil, fmt.Errorf("payment gateway rejected request: %s", envelope.Message)
	}

	return envelope.Data, nil
}
