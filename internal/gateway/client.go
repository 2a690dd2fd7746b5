// Package gateway é a borda HTTP com o backend. Uma função por endpoint,
// uma requisição por chamada, sem retry nem deduplicação.
//
// Contrato de falha por endpoint: a maioria engole o erro depois de logar
// e devolve payload nil ("nil = a operação não aconteceu"); a minoria
// propaga. O comportamento é por endpoint, documentado em cada método;
// os stores dependem da distinção.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/uturns/booking-agent/internal/config"
	"github.com/uturns/booking-agent/internal/metrics"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	// token devolve o token da sessão ativa; vazio quando deslogado.
	token func() string

	metrics *metrics.Metrics
}

func NewClient(cfg *config.Config, token func() string, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.GatewayTimeout,
		},
		token:   token,
		metrics: m,
	}
}

// APIError é um status não-2xx com o código que o backend devolveu.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Code)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return ErrInvalidResponse
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrInvalidResponse, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	return c.send(req, out)
}

// doMultipart envia formulário multipart (cadastro de negócio, logo).
func (c *Client) doMultipart(
	ctx context.Context,
	path string,
	fields map[string]string,
	fileField, fileName string,
	file []byte,
	out any,
) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("%w: write field: %v", ErrInvalidResponse, err)
		}
	}

	if len(file) > 0 {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("%w: create form file: %v", ErrInvalidResponse, err)
		}
		if _, err := part.Write(file); err != nil {
			return fmt.Errorf("%w: write file: %v", ErrInvalidResponse, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close form: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setCommonHeaders(req)

	return c.send(req, out)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != nil {
		if tk := c.token(); tk != "" {
			req.Header.Set("Authorization", "Bearer "+tk)
		}
	}
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}

		var payload struct {
			Error   string `json:"error"`
			Code    string `json:"error_code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Code = payload.Error
			if apiErr.Code == "" {
				apiErr.Code = payload.Code
			}
			apiErr.Message = payload.Message
		}
		if apiErr.Code == "" {
			apiErr.Code = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// swallow loga e descarta o erro. Endpoints marcados como "engole"
// terminam aqui; o chamador recebe nil e trata como "não aconteceu".
func (c *Client) swallow(endpoint string, err error) {
	log.Printf("gateway %s: %v", endpoint, err)
	c.count(endpoint, "swallowed")
}

func (c *Client) count(endpoint, outcome string) {
	if c.metrics != nil {
		c.metrics.GatewayRequests.WithLabelValues(endpoint, outcome).Inc()
	}
}

// finish registra o resultado e devolve o erro intacto (endpoints que
// propagam).
func (c *Client) finish(endpoint string, err error) error {
	if err != nil {
		c.count(endpoint, "error")
		return err
	}
	c.count(endpoint, "ok")
	return nil
}

// IsNotFound ajuda os chamadores que distinguem 404 de indisponível.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
