// Package storage contém o adaptador HTTP para o serviço externo de arquivos.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/atelieplus/atelie-api/internal/application/usecase"
)

var _ usecase.StorageClient = (*HTTPClient)(nil)

// HTTPClient envia arquivos por PUT para o serviço de storage e devolve a URL
// pública do objeto. O caminho inclui o bucket configurado.
type HTTPClient struct {
	baseURL    string
	bucket     string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, bucket, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		bucket:  bucket,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // uploads podem ser lentos
		},
	}
}

type uploadResponse struct {
	PublicURL string `json:"public_url"`
}

// Upload grava o objeto em {bucket}/{path} e devolve a URL pública.
func (c *HTTPClient) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("storage: STORAGE_API_KEY não configurado")
	}
	u := fmt.Sprintf("%s/v1/objects/%s/%s", c.baseURL, url.PathEscape(c.bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: criar HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("storage: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("storage: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return "", fmt.Errorf("storage: ler resposta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage: HTTP %d", resp.StatusCode)
	}

	var up uploadResponse
	if err := json.Unmarshal(raw, &up); err != nil {
		return "", fmt.Errorf("storage: deserializar resposta: %w", err)
	}
	if up.PublicURL == "" {
		return "", fmt.Errorf("storage: resposta sem public_url")
	}
	return up.PublicURL, nil
}

// escapePath escapa cada segmento do caminho preservando as barras.
func escapePath(path string) string {
	out := make([]byte, 0, len(path))
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			out = append(out, url.PathEscape(path[start:i])...)
			if i < len(path) {
				out = append(out, '/')
			}
			start = i + 1
		}
	}
	return string(out)
}
