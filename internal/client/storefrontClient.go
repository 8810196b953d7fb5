package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/config"
)

// StorefrontClient talks to the external e-commerce API the marketplace
// imports orders and categories from.
type StorefrontClient interface {
	// FetchOrdersByStatus returns the raw elements of the status-filtered
	// order feed. A body that is not a JSON array is an Upstream error.
	FetchOrdersByStatus(ctx context.Context, status string) ([]json.RawMessage, error)
	// FetchCategories returns the raw elements of the category feed.
	FetchCategories(ctx context.Context) ([]json.RawMessage, error)
}

type storefrontClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	login      string
	authToken  string
}

func NewStorefrontClient(cfg *config.Storefront) StorefrontClient {
	return &storefrontClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseAPIURL,
		login:      cfg.Login,
		authToken:  cfg.AuthToken,
	}
}

func (c *storefrontClientImpl) FetchOrdersByStatus(ctx context.Context, status string) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/orders/status/%s.json", c.baseApiURL, url.PathEscape(status))
	return c.fetchArray(ctx, endpoint)
}

func (c *storefrontClientImpl) FetchCategories(ctx context.Context) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/categories.json", c.baseApiURL)
	return c.fetchArray(ctx, endpoint)
}

func (c *storefrontClientImpl) fetchArray(ctx context.Context, endpoint string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	q := req.URL.Query()
	q.Set("login", c.login)
	q.Set("authtoken", c.authToken)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("storefront API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, apperr.Upstream(
			"storefront API request failed",
			fmt.Errorf("storefront error %d: %s", resp.StatusCode, string(b)),
		)
	}

	var elements []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, apperr.Upstream("invalid response format from storefront API", err)
	}
	// a JSON null decodes into a nil slice without error; only an actual
	// array counts as a usable feed
	if elements == nil {
		return nil, apperr.Upstream(
			"invalid response format from storefront API",
			fmt.Errorf("expected a JSON array, got null"),
		)
	}

	return elements, nil
}

// StorefrontCustomer carries the contact fields of a storefront order.
type StorefrontCustomer struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Phone    string `json:"phone"`
}

// StorefrontProduct is one line item of a storefront order.
type StorefrontProduct struct {
	ID json.Number `json:"id"`
}

// StorefrontOrder is the provider-side order shape. ID stays a json.Number
// because the feed is inconsistent about numeric vs string ids.
type StorefrontOrder struct {
	ID            json.Number         `json:"id"`
	Status        string              `json:"status"`
	Total         float64             `json:"total"`
	Customer      StorefrontCustomer  `json:"customer"`
	Products      []StorefrontProduct `json:"products"`
	PaymentMethod string              `json:"payment_method_name"`
	CreatedAt     string              `json:"created_at"`
}

// StorefrontCategory is the provider-side category shape.
type StorefrontCategory struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Permalink   string      `json:"permalink"`
	ParentID    json.Number `json:"parent_id"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Products    []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"products"`
}

// UnwrapOrder decodes one feed element, unwrapping the optional one-level
// "order" nesting some payloads use. The returned raw slice is the inner
// object, suitable for audit storage.
func UnwrapOrder(raw json.RawMessage) (*StorefrontOrder, json.RawMessage, error) {
	var wrapper struct {
		Order json.RawMessage `json:"order"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Order) > 0 && string(wrapper.Order) != "null" {
		raw = wrapper.Order
	}

	var order StorefrontOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, nil, fmt.Errorf("decode order element: %w", err)
	}
	return &order, raw, nil
}

// UnwrapCategory decodes one category feed element, unwrapping the optional
// "category" nesting.
func UnwrapCategory(raw json.RawMessage) (*StorefrontCategory, error) {
	var wrapper struct {
		Category json.RawMessage `json:"category"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Category) > 0 && string(wrapper.Category) != "null" {
		raw = wrapper.Category
	}

	var category StorefrontCategory
	if err := json.Unmarshal(raw, &category); err != nil {
		return nil, fmt.Errorf("decode category element: %w", err)
	}
	return &category, nil
}
