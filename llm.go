package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// conversationProvider is the outbound model call. It is stateful: each
// Respond extends the conversational memory for the session, and Reset
// clears it when a new session starts.
type conversationProvider interface {
	Respond(ctx context.Context, prompt string) (string, error)
	Reset()
}

var errEmptyReply = errors.New("no response received from the model")

// groqProvider talks to Groq's OpenAI-compatible chat completions endpoint.
type groqProvider struct {
	client  openai.Client
	model   string
	system  string
	timeout time.Duration

	mu      sync.Mutex
	history []openai.ChatCompletionMessageParamUnion
}

func newGroqProvider(cfg config) *groqProvider {
	return &groqProvider{
		client:  openai.NewClient(option.WithAPIKey(cfg.APIKey), option.WithBaseURL(cfg.BaseURL)),
		model:   cfg.Model,
		system:  cfg.SystemPrompt,
		timeout: 45 * time.Second,
	}
}

func (p *groqProvider) Reset() {
	p.mu.Lock()
	p.history = nil
	p.mu.Unlock()
}

func (p *groqProvider) Respond(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(p.history)+2)
	msgs = append(msgs, systemMessage(p.system))
	msgs = append(msgs, p.history...)
	msgs = append(msgs, userMessage(prompt))
	p.mu.Unlock()

	rctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Chat.Completions.New(rctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", errEmptyReply
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyReply
	}

	p.mu.Lock()
	p.history = append(p.history, userMessage(prompt), assistantMessage(text))
	p.mu.Unlock()
	return text, nil
}

func systemMessage(text string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfSystem: &openai.ChatCompletionSystemMessageParam{
			Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(text)},
		},
	}
}

func userMessage(text string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(text)},
		},
	}
}

func assistantMessage(text string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfAssistant: &openai.ChatCompletionAssistantMessageParam{
			Content: openai.ChatCompletionAssistantMessageParamContentUnion{OfString: openai.String(text)},
		},
	}
}

// providerErrorKind buckets a failed round trip for presentation. The SDK
// error text is matched on key terms; anything unrecognized is provErrOther.
type providerErrorKind int

const (
	provErrNone providerErrorKind = iota
	provErrAuth
	provErrConnection
	provErrEmpty
	provErrOther
)

func classifyProviderError(err error) providerErrorKind {
	if err == nil {
		return provErrNone
	}
	if errors.Is(err, errEmptyReply) {
		return provErrEmpty
	}
	s := strings.ToLower(err.Error())
	switch {
	case containsAny(s, "api key", "api_key", "authentication", "unauthorized", "auth"):
		return provErrAuth
	case containsAny(s, "timeout", "deadline", "connection", "network", "no such host"):
		return provErrConnection
	case containsAny(s, "no response"):
		return provErrEmpty
	default:
		return provErrOther
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (k providerErrorKind) title() string {
	switch k {
	case provErrAuth:
		return "API Key Error"
	case provErrConnection:
		return "Connection Error"
	case provErrEmpty:
		return "Empty Response"
	default:
		return "Request Failed"
	}
}

func (k providerErrorKind) hint() string {
	switch k {
	case provErrAuth:
		return "Your API key appears to be invalid or has expired. Check api_key in the config."
	case provErrConnection:
		return "Unable to reach the model service. Check your internet connection."
	case provErrEmpty:
		return "The service returned nothing. It may be under heavy load; try again."
	default:
		return "Please try again in a moment."
	}
}
