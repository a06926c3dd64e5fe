package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/denmor86/landed-cost/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ProductResponse - карточка товара от сервиса маркетплейса
type ProductResponse struct {
	Article  string                `json:"article"`
	Name     string                `json:"name"`
	Price    models.MonetaryAmount `json:"price"`
	WeightKg *decimal.Decimal      `json:"weight_kg"`
	VolumeM3 *decimal.Decimal      `json:"volume_m3"`
}

// FieldsResponse - оценка веса и объёма по названию товара
type FieldsResponse struct {
	WeightKg *decimal.Decimal `json:"weight_kg"`
	VolumeM3 *decimal.Decimal `json:"volume_m3"`
}

// ClassificationResponse - подобранный код ТН ВЭД с пошлиной и НДС
type ClassificationResponse struct {
	Code     string          `json:"code"`
	DutyType string          `json:"duty_type"`
	DutyRate *decimal.Decimal `json:"duty_rate"`
	VATRate  *decimal.Decimal `json:"vat_rate"`
}

type inferRequest struct {
	Name string `json:"name"`
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewClient(baseURL string, client HTTPClient, limiter *RateLimiter) *Client {
	if limiter == nil {
		limiter = NewRateLimiter(0)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// GetProduct - карточка товара по артикулу
func (c *Client) GetProduct(ctx context.Context, article string) (*ProductResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/"+url.PathEscape(article), nil)
	if err != nil {
		return nil, err
	}
	var result ProductResponse
	if err := c.do(req, &result, ErrServiceUnavailable); err != nil {
		return nil, err
	}
	return &result, nil
}

// InferFields - оценка веса и объёма по названию
func (c *Client) InferFields(ctx context.Context, name string) (*FieldsResponse, error) {
	req, err := c.newJSONRequest(ctx, "/api/infer/fields", inferRequest{Name: name})
	if err != nil {
		return nil, err
	}
	var result FieldsResponse
	if err := c.do(req, &result, ErrInferenceUnavailable); err != nil {
		return nil, err
	}
	return &result, nil
}

// InferClassification - подбор кода ТН ВЭД по названию
func (c *Client) InferClassification(ctx context.Context, name string) (*ClassificationResponse, error) {
	req, err := c.newJSONRequest(ctx, "/api/infer/classification", inferRequest{Name: name})
	if err != nil {
		return nil, err
	}
	var result ClassificationResponse
	if err := c.do(req, &result, ErrInferenceUnavailable); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) newJSONRequest(ctx context.Context, path string, body interface{}) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, result interface{}, unavailable error) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("%w: %v", unavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", unavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := HandleErrorResponse(resp, unavailable)
		if rl, ok := err.(*RateLimitError); ok {
			c.limiter.BlockFor(rl.RetryAfter)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func HandleErrorResponse(resp *http.Response, unavailable error) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNotFound, http.StatusNoContent:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", unavailable, resp.StatusCode)
	}
}
