package auditclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditdomain"
	"github.com/vfg2006/visibility-audit-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNotFound = errors.New("recurso não encontrado no backend de auditorias")

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks
type Client interface {
	GetAudit(ctx context.Context, auditID string) (*auditdomain.Audit, error)
	ListFixServices(ctx context.Context) ([]auditdomain.FixService, error)
	ListPartners(ctx context.Context) ([]auditdomain.Partner, error)
}

// RequestError é devolvido quando o backend responde fora da faixa 2xx
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("audit api: status %d: %s %s", e.StatusCode, e.Code, e.Message)
}

func (e *RequestError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

type AuditClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.AuditAPI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AuditClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.AuditAPI.URL,
		token:   cfg.AuditAPI.Token,
	}
}

func (c *AuditClient) get(ctx context.Context, resource string, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("resource", resource).Error("Erro ao decodificar JSON")
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

func decodeError(statusCode int, body []byte) error {
	reqErr := &RequestError{StatusCode: statusCode}

	var envelope auditdomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil {
		reqErr.Code = envelope.Error.Code
		reqErr.Message = envelope.Error.Message
	}

	if reqErr.Message == "" {
		reqErr.Message = http.StatusText(statusCode)
	}

	return reqErr
}
