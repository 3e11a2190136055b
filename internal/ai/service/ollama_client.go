package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
)

// generateRequest is the wire format of the Ollama /api/generate endpoint.
type generateRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images,omitempty"`
	Stream bool     `json:"stream"`
}

// generateResponse is the non-streaming response of /api/generate.
type generateResponse struct {
	Response string `json:"response"`
}

// errorResponse is the structured error body Ollama returns on failures
// (e.g., "model 'llama3' not found, try pulling it first").
type errorResponse struct {
	Error string `json:"error"`
}

// OllamaClient implements ModelClient against a local Ollama server.
//
// The client issues exactly one outbound call per Generate invocation and
// never retries. Prompt bodies are not logged; only the model name, prompt
// length, and outcome are.
type OllamaClient struct {
	client *resty.Client
	logger *slog.Logger
}

// NewOllamaClient creates a client for the generation service at baseURL.
func NewOllamaClient(baseURL string, logger *slog.Logger) *OllamaClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/"))

	return &OllamaClient{client: cli, logger: logger}
}

// Generate sends a single non-streaming generation request and returns the
// model's raw text, trimmed.
//
// Fails with ErrModelUnavailable when the transport reports an error, the
// call does not complete within opts.Timeout, or the service replies with a
// non-2xx status. For remote errors the structured error message from the
// response body is preferred over the raw status; the returned error names
// the target model and hints at remediation.
func (o *OllamaClient) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	body := generateRequest{
		Model:  opts.Model,
		Prompt: prompt,
		Stream: false,
	}
	for _, img := range opts.Images {
		body.Images = append(body.Images, base64.StdEncoding.EncodeToString(img))
	}

	started := time.Now()
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/generate")
	if err != nil {
		o.logger.Warn("generation call failed",
			slog.String("model", opts.Model),
			slog.Duration("elapsed", time.Since(started)),
			slog.Any("error", err),
		)
		return "", o.unavailable(opts.Model, err.Error())
	}

	if resp.IsError() {
		// Prefer the structured error message from the body over the raw
		// transport status.
		msg := resp.Status()
		var remote errorResponse
		if jsonErr := json.Unmarshal(resp.Body(), &remote); jsonErr == nil && remote.Error != "" {
			msg = remote.Error
		}
		o.logger.Warn("generation call rejected",
			slog.String("model", opts.Model),
			slog.Int("status_code", resp.StatusCode()),
		)
		return "", o.unavailable(opts.Model, msg)
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", o.unavailable(opts.Model, "malformed response body")
	}

	o.logger.Debug("generation call completed",
		slog.String("model", opts.Model),
		slog.Int("prompt_len", len(prompt)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return strings.TrimSpace(out.Response), nil
}

// unavailable builds the remediation-hinting error for a failed call.
func (o *OllamaClient) unavailable(model, msg string) error {
	return fmt.Errorf(
		"%w: %s. Make sure Ollama is running (ollama serve) and %s is pulled",
		aiDomain.ErrModelUnavailable, msg, model,
	)
}
