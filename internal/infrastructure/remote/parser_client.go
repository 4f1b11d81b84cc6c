// Package remote holds clients for services the console calls out to.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bazaarmind/console/internal/domain/chat"
	"github.com/bazaarmind/console/internal/infrastructure/config"
)

// maxResponseSize caps parser responses (1MB); parse results are small
const maxResponseSize = 1 << 20

// ParserClient implements chat.Parser against the remote order parsing
// service over HTTP.
type ParserClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewParserClient creates a new ParserClient
func NewParserClient(cfg config.ParserConfig, logger *zap.Logger) *ParserClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &ParserClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type parseRequest struct {
	ShopID        string `json:"shop_id"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
	Message       string `json:"message"`
}

// Parse sends the message to the remote parser and returns its structured
// result. The raw message is echoed back into the result so callers can
// persist it with the session.
func (c *ParserClient) Parse(ctx context.Context, preq chat.ParseRequest) (*chat.ParsedOrder, error) {
	body, err := json.Marshal(parseRequest{
		ShopID:        preq.ShopID.String(),
		CustomerPhone: preq.CustomerPhone,
		CustomerName:  preq.CustomerName,
		Message:       preq.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse-order", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}

	var parsed chat.ParsedOrder
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parser response: %w", err)
	}
	if parsed.RawMessage == "" {
		parsed.RawMessage = preq.Message
	}

	c.logger.Debug("order parsed",
		zap.String("shop_id", preq.ShopID.String()),
		zap.Int("items", len(parsed.Items)),
		zap.String("method", parsed.ParseMethod),
		zap.Duration("latency", time.Since(start)))

	return &parsed, nil
}
