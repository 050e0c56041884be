package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mobilicity/pkg/logger"
)

// CardGatewayService is a thin client for the card-payment gateway's
// payment-intent API. The gateway only prepares a client-side charge; the
// settlement itself comes back through POST /payments.
type CardGatewayService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func NewCardGatewayService(secretKey string) *CardGatewayService {
	return &CardGatewayService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateIntent registers a pending charge with the gateway and returns the
// client secret the frontend needs to confirm the card payment. Amount is
// converted to minor units as the gateway expects.
func (s *CardGatewayService) CreateIntent(ctx context.Context, amount float64, currency string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", int64(amount*100)))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Payment gateway returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("payment gateway error: status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, err
	}

	logger.Debug("Created payment intent %s for amount %.2f %s", intent.ID, amount, currency)
	return &intent, nil
}
