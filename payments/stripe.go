package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LineItem describes one purchasable unit for a hosted checkout session.
// UnitAmount is in minor currency units (cents).
type LineItem struct {
	Currency   string
	Name       string
	UnitAmount int64
	Quantity   int
}

// Provider creates hosted payment sessions and returns the URL the buyer
// must be redirected to.
type Provider interface {
	CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error)
}

// StripeClient talks to the Stripe Checkout Sessions API.
type StripeClient struct {
	APIURL     string
	SecretKey  string
	HTTPClient *http.Client
}

func NewStripeClient(apiURL, secretKey string) *StripeClient {
	return &StripeClient{
		APIURL:     apiURL,
		SecretKey:  secretKey,
		HTTPClient: http.DefaultClient,
	}
}

// stripeSessionResponse is the subset of the checkout session object we use.
type stripeSessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateSession creates a payment-mode checkout session with quantity-1 line
// items and returns its hosted URL.
func (c *StripeClient) CreateSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("client_reference_id", uuid.NewString())
	form.Set("payment_method_types[0]", "card")
	for i, item := range items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.SecretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach stripe: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}

	var out stripeSessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse stripe response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("stripe error: %s", out.Error.Message)
	}
	if out.URL == "" {
		return "", fmt.Errorf("stripe returned empty checkout URL")
	}
	return out.URL, nil
}
