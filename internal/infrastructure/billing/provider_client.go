// Package billing contém o adaptador HTTP para o provedor de cobrança recorrente.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	appbilling "github.com/atelieplus/atelie-api/internal/application/billing"
)

var _ appbilling.ProviderClient = (*ProviderHTTPClient)(nil)

const maxProviderBody = 64 * 1024

// ProviderHTTPClient fala JSON com a API do provedor de assinaturas.
type ProviderHTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewProviderHTTPClient(baseURL, apiKey string) *ProviderHTTPClient {
	return &ProviderHTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type providerError struct {
	Message string `json:"message"`
}

type createSubscriptionRequest struct {
	ExternalID string `json:"external_id"` // nosso empresaID
	PlanID     string `json:"plan_id"`
}

type changePlanRequest struct {
	PlanID string `json:"plan_id"`
}

// CreateSubscription abre uma assinatura no provedor e devolve o link de pagamento.
func (c *ProviderHTTPClient) CreateSubscription(ctx context.Context, empresaID, planID string) (*appbilling.ProviderSubscription, error) {
	body, err := json.Marshal(createSubscriptionRequest{ExternalID: empresaID, PlanID: planID})
	if err != nil {
		return nil, fmt.Errorf("billing: serializar request: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/v1/subscriptions", bytes.NewReader(body))
}

// ChangePlan troca o plano de uma assinatura existente.
func (c *ProviderHTTPClient) ChangePlan(ctx context.Context, providerID, planID string) (*appbilling.ProviderSubscription, error) {
	body, err := json.Marshal(changePlanRequest{PlanID: planID})
	if err != nil {
		return nil, fmt.Errorf("billing: serializar request: %w", err)
	}
	u := c.baseURL + "/v1/subscriptions/" + url.PathEscape(providerID) + "/plan"
	return c.do(ctx, http.MethodPut, u, bytes.NewReader(body))
}

// Cancel encerra a assinatura no provedor.
func (c *ProviderHTTPClient) Cancel(ctx context.Context, providerID string) error {
	u := c.baseURL + "/v1/subscriptions/" + url.PathEscape(providerID)
	_, err := c.do(ctx, http.MethodDelete, u, nil)
	return err
}

// GetSubscription consulta o estado atual da assinatura.
func (c *ProviderHTTPClient) GetSubscription(ctx context.Context, providerID string) (*appbilling.ProviderSubscription, error) {
	u := c.baseURL + "/v1/subscriptions/" + url.PathEscape(providerID)
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *ProviderHTTPClient) do(ctx context.Context, method, url string, body io.Reader) (*appbilling.ProviderSubscription, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("billing: BILLING_API_KEY não configurado")
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("billing: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("billing: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("billing: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	if err != nil {
		return nil, fmt.Errorf("billing: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var pe providerError
		if jsonErr := json.Unmarshal(raw, &pe); jsonErr == nil && pe.Message != "" {
			return nil, fmt.Errorf("billing: provedor: %s", pe.Message)
		}
		return nil, fmt.Errorf("billing: provedor HTTP %d", resp.StatusCode)
	}

	if len(raw) == 0 || method == http.MethodDelete {
		return nil, nil
	}
	var sub appbilling.ProviderSubscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("billing: deserializar assinatura: %w", err)
	}
	return &sub, nil
}
