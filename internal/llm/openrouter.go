package llm

import (
	"fmt"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// Attribution headers OpenRouter shows on its dashboard and rankings.
	openRouterReferer = "https://github.com/abhisek/thermoviz"
	openRouterTitle   = "ThermoViz"
)

// OpenRouterProvider talks to OpenRouter's OpenAI-compatible API. Model
// names are vendor/model ids and pass through untouched.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	client := &http.Client{Transport: attributionTransport{next: http.DefaultTransport}}
	inner, err := newOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, client)
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport tags every request with the app's referer and title.
type attributionTransport struct {
	next http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.next.RoundTrip(req)
}
