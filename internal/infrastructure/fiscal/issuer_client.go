// Package fiscal contém o adaptador HTTP para o emissor externo de NFe.
package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	appfiscal "github.com/atelieplus/atelie-api/internal/application/fiscal"
)

var _ appfiscal.IssuerClient = (*IssuerHTTPClient)(nil)

const maxIssuerBody = 256 * 1024

// IssuerHTTPClient fala JSON com a API REST do emissor. A autenticação é por
// API key no header Authorization; o corpo devolvido é tratado como opaco e
// decodificado para IssuerNote.
type IssuerHTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewIssuerHTTPClient constrói o adaptador. baseURL sem barra final.
func NewIssuerHTTPClient(baseURL, apiKey string) *IssuerHTTPClient {
	return &IssuerHTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // teto de rede; o caller também aplica WithTimeout nas leituras
		},
	}
}

// issuerError é o envelope de erro da API do emissor.
type issuerError struct {
	Code    string `json:"codigo"`
	Message string `json:"mensagem"`
}

// Emit envia o payload de emissão e devolve o estado inicial da nota.
func (c *IssuerHTTPClient) Emit(ctx context.Context, req appfiscal.IssuerEmission) (*appfiscal.IssuerNote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("fiscal: FISCAL_API_KEY não configurado")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("fiscal: serializar emissão: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/v1/nfe", bytes.NewReader(body))
}

// GetNote consulta o estado atual da nota pela referência.
func (c *IssuerHTTPClient) GetNote(ctx context.Context, reference string) (*appfiscal.IssuerNote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("fiscal: FISCAL_API_KEY não configurado")
	}
	u := c.baseURL + "/v1/nfe/" + url.PathEscape(reference)
	return c.do(ctx, http.MethodGet, u, nil)
}

func (c *IssuerHTTPClient) do(ctx context.Context, method, url string, body io.Reader) (*appfiscal.IssuerNote, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("fiscal: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fiscal: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("fiscal: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxIssuerBody))
	if err != nil {
		return nil, fmt.Errorf("fiscal: ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ie issuerError
		if jsonErr := json.Unmarshal(raw, &ie); jsonErr == nil && ie.Message != "" {
			return nil, fmt.Errorf("fiscal: emissor %s: %s", ie.Code, ie.Message)
		}
		return nil, fmt.Errorf("fiscal: emissor HTTP %d", resp.StatusCode)
	}

	var note appfiscal.IssuerNote
	if err := json.Unmarshal(raw, &note); err != nil {
		return nil, fmt.Errorf("fiscal: deserializar nota: %w", err)
	}
	return &note, nil
}
