package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

// Defaults applied when the corresponding Config fields are unset.
const (
	defaultModel   = "gpt-4o"
	defaultBackoff = 500 * time.Millisecond
)

// Config configures a Client.
type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	// MaxRetries is the number of additional attempts after the first one
	// for transient failures (transport errors, 429, 5xx).
	MaxRetries int
	// Backoff is the base delay of the exponential retry schedule.
	Backoff time.Duration
	Logger  *zerolog.Logger
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	reqTimeout time.Duration
	maxRetries int
	backoff    time.Duration
	httpClient *http.Client
	log        zerolog.Logger
}

// New constructs a Client.
func New(cfg Config) *Client {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		reqTimeout: cfg.RequestTimeout,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.Backoff,
		// Deadlines come from the request context, see Complete.
		httpClient: &http.Client{Transport: tr, Timeout: 0},
		log:        zerolog.Nop(),
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.backoff <= 0 {
		c.backoff = defaultBackoff
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	if cfg.Logger != nil {
		c.log = *cfg.Logger
	}
	return c
}

// Model returns the model name sent with every request.
func (c *Client) Model() string { return c.model }

// Complete sends req and returns the text of the first choice. Transient
// failures are retried with exponential backoff; the request timeout covers
// all attempts.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", errors.New("vision client not initialized")
	}
	if c.reqTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.reqTimeout)
		defer cancel()
	}
	body, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	backoff := retry.WithMaxRetries(uint64(c.maxRetries), retry.NewExponential(c.backoff))
	attempt := 0
	var out string
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		text, err := c.do(ctx, body)
		if err == nil {
			out = text
			return nil
		}
		var ue *upstreamError
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.As(err, &ue) && !ue.retryable():
			return err
		case errors.Is(err, ErrEmptyCompletion):
			return err
		}
		c.log.Warn().Err(err).Int("attempt", attempt).Str("model", c.model).Msg("model api attempt failed")
		return retry.RetryableError(err)
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) buildPayload(req Request) chatRequest {
	parts := []contentPart{{Type: "text", Text: req.Prompt}}
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, contentPart{
			Type: "image_url",
			ImageURL: &imageURL{
				URL:    "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(req.Image),
				Detail: req.Detail,
			},
		})
	}
	return chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: parts}},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
}

func (c *Client) do(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &upstreamError{status: resp.StatusCode, body: strings.TrimSpace(string(b))}
	}
	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}
