package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the provider credentials and endpoint. Credentials are read
// once at process start and injected here; rotation means restarting or
// rebuilding the client.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// Client is the HTTP implementation of Provider.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) CreateWallet(ctx context.Context, userID uint, currency string) (string, error) {
	body := map[string]interface{}{
		"external_user_id": userID,
		"currency":         currency,
	}
	var out struct {
		WalletID string `json:"wallet_id"`
	}
	if err := c.post(ctx, "/v1/wallets", body, &out); err != nil {
		return "", err
	}
	return out.WalletID, nil
}

func (c *Client) EnrichWallet(ctx context.Context, userID uint, providerWalletID string) (string, error) {
	body := map[string]interface{}{
		"external_user_id": userID,
	}
	var out struct {
		Address string `json:"address"`
	}
	path := fmt.Sprintf("/v1/wallets/%s/address", providerWalletID)
	if err := c.post(ctx, path, body, &out); err != nil {
		return "", err
	}
	if out.Address == "" {
		return "", fmt.Errorf("%w: empty address in enrichment response", ErrProviderUnavailable)
	}
	return out.Address, nil
}

func (c *Client) GetExchangeRates(ctx context.Context) (map[string]Rate, error) {
	var out struct {
		Rates map[string]Rate `json:"rates"`
	}
	if err := c.get(ctx, "/v1/rates", &out); err != nil {
		return nil, err
	}
	return out.Rates, nil
}

func (c *Client) GetWalletBalance(ctx context.Context, providerWalletID string) (decimal.Decimal, error) {
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	path := fmt.Sprintf("/v1/wallets/%s/balance", providerWalletID)
	if err := c.get(ctx, path, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, dest interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	req.Header.Set("X-Api-Key", c.cfg.APIKey)
	req.Header.Set("X-Api-Secret", c.cfg.APISecret)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("provider call failed: %s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("provider call failed: %s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return nil
}
