package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/flowbit/analytics-api/internal/config"
	"github.com/flowbit/analytics-api/pkg/apperror"
)

// DefaultMaxRows is the row-limit hint forwarded to the NL-to-SQL service.
const DefaultMaxRows = 200

// ChatService proxies natural-language prompts to the external NL-to-SQL
// service. The upstream response is passed through unmodified; this layer
// never validates or executes the generated SQL.
type ChatService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewChatService creates a new chat proxy service
func NewChatService(cfg *config.VannaConfig) *ChatService {
	return &ChatService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type generateSQLRequest struct {
	Prompt  string `json:"prompt"`
	MaxRows int    `json:"max_rows"`
}

// Ask forwards the prompt and row-limit hint upstream and returns the raw
// response body. Non-2xx responses become an UpstreamError carrying the
// upstream payload verbatim.
func (s *ChatService) Ask(ctx context.Context, prompt string, maxRows int) (json.RawMessage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperror.NewFieldValidationError("prompt", "is required")
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	body, err := json.Marshal(generateSQLRequest{Prompt: prompt, MaxRows: maxRows})
	if err != nil {
		return nil, apperror.NewUpstreamFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/generate-sql", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.NewUpstreamFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstreamFailure(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstreamFailure(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.NewUpstreamError(resp.StatusCode, payload)
	}

	return payload, nil
}
