// Package gemini adapts Google's Gemini API to the verse generator contract.
// All provider trust checks live here: every response is parsed against the
// requested schema before it leaves the package.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
)

const DefaultModel = "gemini-2.5-flash"

// Observer is told about every provider call.
type Observer func(operation string, err error, elapsed time.Duration)

type Config struct {
	APIKey            string
	Model             string
	Temperature       float32
	RequestsPerSecond float64
	// Timeout bounds each provider call; zero leaves it to the caller's context.
	Timeout time.Duration
	// BreakerFailures consecutive transport failures open the circuit for BreakerCooldown.
	BreakerFailures uint32
	BreakerCooldown time.Duration
	Observer        Observer
}

// contentGenerator is the part of *genai.Models the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models      contentGenerator
	model       string
	temperature float32
	timeout     time.Duration
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	observe     Observer
	logger      *zap.Logger
}

// NewClient connects to the Gemini API with cfg.APIKey.
func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newClient(gc.Models, cfg, logger), nil
}

func newClient(models contentGenerator, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.3
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerCooldown == 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}
	if cfg.Observer == nil {
		cfg.Observer = func(string, error, time.Duration) {}
	}

	c := &Client{
		models:      models,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		limiter:     rate.NewLimiter(limit, 1),
		observe:     cfg.Observer,
		logger:      logger,
	}
	failures := cfg.BreakerFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return c
}

// generate runs one provider call and returns its text. Anything that prevents
// an answer from arriving is a TransportError.
func (c *Client) generate(ctx context.Context, op string, contents []*genai.Content, config *genai.GenerateContentConfig) (text string, err error) {
	start := time.Now()
	defer func() { c.observe(op, err, time.Since(start)) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &gita.TransportError{Op: op, Err: err}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.models.GenerateContent(ctx, c.model, contents, config)
	})
	if err != nil {
		return "", &gita.TransportError{Op: op, Err: err}
	}
	resp, _ := out.(*genai.GenerateContentResponse)
	if resp == nil {
		return "", nil
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (c *Client) jsonConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(c.temperature),
	}
}

// GenerateVerse asks for one verse in lang.
func (c *Client) GenerateVerse(ctx context.Context, id gita.VerseID, lang gita.Language) (gita.ResolvedVerse, error) {
	langName := lang.Name()
	prompt := fmt.Sprintf("Provide the Sanskrit text, English transliteration, %s translation, and a brief %s meaning for Bhagavad Gita Chapter %d, Verse %d. Ensure accuracy to the traditional text.",
		langName, langName, id.Chapter, id.Verse)

	text, err := c.generate(ctx, "verse", genai.Text(prompt), c.jsonConfig(verseSchema))
	if err != nil {
		return gita.ResolvedVerse{}, err
	}
	if text == "" {
		return gita.ResolvedVerse{}, gita.ErrEmptyGeneration
	}
	verse, err := decodeVerse(text)
	if err != nil {
		c.logger.Warn("verse generation did not match schema", zap.Stringer("verse", id), zap.Error(err))
		return gita.ResolvedVerse{}, err
	}
	return verse, nil
}

// SearchVerses asks for up to ten verses relevant to query. An empty answer is
// an empty result list.
func (c *Client) SearchVerses(ctx context.Context, query string, lang gita.Language) ([]gita.SearchResult, error) {
	prompt := fmt.Sprintf("Find up to 10 most relevant verses from the Bhagavad Gita for the query: %q. Return the chapter number, verse number, original sanskrit text, and %s translation for each result.",
		query, lang.Name())

	text, err := c.generate(ctx, "search", genai.Text(prompt), c.jsonConfig(searchSchema))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	results, err := decodeResults(text)
	if err != nil {
		c.logger.Warn("search generation did not match schema", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return results, nil
}

// SystemInstruction is the chat persona for lang.
func SystemInstruction(lang gita.Language) string {
	return fmt.Sprintf("You are a wise spiritual guide. Answer questions in %s using the wisdom of the Bhagavad Gita. Keep answers concise.", lang.Name())
}

// Chat continues a conversation with message and returns the model's reply.
func (c *Client) Chat(ctx context.Context, history []gita.ChatMessage, message string, lang gita.Language) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role == gita.RoleModel {
			role = genai.Role(genai.RoleModel)
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(lang), genai.RoleUser),
	}
	text, err := c.generate(ctx, "chat", contents, config)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", gita.ErrEmptyGeneration
	}
	return text, nil
}
