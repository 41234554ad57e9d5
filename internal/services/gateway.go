package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CardDetails is raw card input. When the hosted gateway is enabled the
// engine forwards these for tokenization and never validates them itself.
type CardDetails struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// Tokenizer exchanges card details for an opaque payment token.
type Tokenizer interface {
	Tokenize(ctx context.Context, secretKey string, card CardDetails) (string, error)
}

// GatewayError carries the gateway's own message, surfaced to the user verbatim.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// GatewayClient tokenizes cards against a hosted payment processor.
type GatewayClient struct {
	baseURL string
	client  *http.Client
}

// NewGatewayClient creates a GatewayClient for the given API base URL.
func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Tokenize posts card details to the gateway's token endpoint and returns the
// opaque token. A declined or malformed card yields a GatewayError with the
// processor's message.
func (g *GatewayClient) Tokenize(ctx context.Context, secretKey string, card CardDetails) (string, error) {
	expMonth, expYear, err := splitExpiry(card.Expiry)
	if err != nil {
		return "", &GatewayError{Message: err.Error()}
	}

	form := url.Values{}
	form.Set("card[name]", card.Name)
	form.Set("card[number]", strings.ReplaceAll(card.Number, " ", ""))
	form.Set("card[exp_month]", expMonth)
	form.Set("card[exp_year]", expYear)
	form.Set("card[cvc]", card.CVC)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/tokens", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[Gateway] tokenize request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gateway returned unparseable response (status %d)", resp.StatusCode)
	}

	if parsed.Error != nil {
		return "", &GatewayError{Message: parsed.Error.Message}
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("gateway returned status %d without a token", resp.StatusCode)
	}

	return parsed.ID, nil
}

func splitExpiry(expiry string) (month, year string, err error) {
	parts := strings.SplitN(expiry, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("expiry must be MM/YY")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
