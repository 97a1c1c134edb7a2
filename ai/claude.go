// Package ai produces answers for faq questions with the Anthropic API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"faq-assistant/config"
	"faq-assistant/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/semaphore"
)

const systemPrompt = "You are a helpful FAQ assistant. Answer the user's question clearly and concisely."

// ErrNotConfigured is returned by Disabled for every question.
var ErrNotConfigured = models.ErrorConfiguration{Message: "AI key is not configured."}

type ClaudeGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	sem       *semaphore.Weighted
}

func NewClaudeGenerator(cfg config.AIConfig) (*ClaudeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	maxTokens := cfg.MaxTokens
	if maxTokens < 1 {
		maxTokens = 1024
	}

	return &ClaudeGenerator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		timeout:   cfg.Timeout,
		sem:       semaphore.NewWeighted(maxConcurrent),
	}, nil
}

// Answer asks the model for an answer to question.
func (g *ClaudeGenerator) Answer(ctx context.Context, question string) (string, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer g.sem.Release(1)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", errors.New("anthropic returned no text")
	}
	return answer, nil
}

// Disabled stands in when no API key is configured.
type Disabled struct{}

func (Disabled) Answer(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
