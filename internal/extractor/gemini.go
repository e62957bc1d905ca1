package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tesouraria/ecc-ledger/internal/extracterror"
	"tesouraria/ecc-ledger/internal/logging"
)

// GeminiConfig is the explicit configuration of the Gemini-backed client.
// The API key is injected at construction; business logic never reads the
// environment.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

const defaultTimeout = 30 * time.Second

// GeminiClient implements Client over the Google Gemini API.
type GeminiClient struct {
	cfg GeminiConfig
	log logging.Logger
}

// NewGeminiClient creates a Gemini-backed extraction client.
func NewGeminiClient(cfg GeminiConfig, logger logging.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{cfg: cfg, log: logger}, nil
}

// Extract sends the prompt plus the raw statement text to Gemini and parses
// the JSON payload out of the reply. There is exactly one call per
// invocation; a hung call is cut off by the configured timeout and surfaces
// as UnavailableError.
func (c *GeminiClient) Extract(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.cfg.APIKey))
	if err != nil {
		return nil, &extracterror.UnavailableError{Err: fmt.Errorf("creating client: %w", err)}
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			c.log.WithError(cerr).Warn("Failed to close Gemini client")
		}
	}()

	c.log.WithField("model", c.cfg.Model).
		WithField("statement_bytes", len(req.Statement)).
		Info("Submitting statement for extraction")

	model := client.GenerativeModel(c.cfg.Model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(BuildPrompt(req)),
		genai.Text(req.Statement),
	)
	if err != nil {
		return nil, &extracterror.UnavailableError{Err: err}
	}

	reply := collectText(resp)
	if reply == "" {
		return nil, &extracterror.MalformedError{Reason: "empty reply from model"}
	}

	p, err := ParsePayload(reply)
	if err != nil {
		return nil, err
	}

	result := p.toResult(req)
	c.log.WithField("count", len(result.Transactions)).Info("Extraction completed")
	return result, nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
