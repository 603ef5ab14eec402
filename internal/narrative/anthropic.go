package narrative

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/time/rate"
)

const systemPrompt = "You are a senior strategy consultant. Produce concise business analysis narratives with clearly labeled section headings and bulleted points under each heading."

const maxAttempts = 3

type failureClass int

const (
	failureTimeout failureClass = iota
	failureRateLimit
	failureServer
	failureClient
)

// Messager is the slice of the Anthropic SDK client the generator needs.
// Tests substitute a stub.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type ClientCreator func(apiKey string) Messager

func defaultClientCreator(apiKey string) Messager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newClient ClientCreator = defaultClientCreator

// AnthropicGenerator produces narratives through the Anthropic messages API.
// A client-side rate limiter gates every attempt, including retries.
type AnthropicGenerator struct {
	messages Messager
	limiter  *rate.Limiter
}

// NewAnthropicGeneratorFromEnv builds a generator from ANTHROPIC_API_KEY.
func NewAnthropicGeneratorFromEnv() (*AnthropicGenerator, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicGenerator{
		messages: newClient(apiKey),
		limiter:  rate.NewLimiter(rate.Every(1500*time.Millisecond), 1), // ~40 RPM
	}, nil
}

// Generate requests a narrative, retrying transient transport failures and
// empty responses up to three attempts.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return "", fmt.Errorf("rate limiter wait: %w", err)
			}
		}
		resp, err := g.messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.ModelClaudeSonnet4_20250514,
			MaxTokens:   4096,
			System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
			Temperature: anthropic.Float(0),
		})
		if err != nil {
			class := classifyTransportError(err)
			if retryable(class) && attempt < maxAttempts {
				lastErr = err
				time.Sleep(backoffDelay(attempt))
				continue
			}
			return "", fmt.Errorf("narrative generation: %w", err)
		}

		var sb strings.Builder
		for _, b := range resp.Content {
			if b.Type == "text" {
				sb.WriteString(b.Text)
			}
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			lastErr = errors.New("empty response")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("narrative generation failed after %d attempts: %w", maxAttempts, lastErr)
}

func retryable(class failureClass) bool {
	return class == failureTimeout || class == failureRateLimit || class == failureServer
}

func classifyTransportError(err error) failureClass {
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"):
		return failureRateLimit
	case strings.Contains(msg, "status code: 5") || strings.Contains(msg, "server error"):
		return failureServer
	case strings.Contains(msg, "status code: 4"):
		return failureClient
	default:
		return failureServer
	}
}

func backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 1 * time.Second
	}
	return 2 * time.Second
}
