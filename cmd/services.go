package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/thermoviz/internal/llm"
	"github.com/abhisek/thermoviz/internal/problemgen"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/abhisek/thermoviz/internal/tutor"
)

var errNoProvider = errors.New("no LLM provider configured: set GEMINI_API_KEY or run `thermoviz key set`")

// newTutor builds the tutor over the store's credential and request log.
func newTutor(st *store.Store) *tutor.Service {
	return tutor.NewService(llm.ConfigFromEnv(),
		tutor.WithSettings(st.SettingsRepo()),
		tutor.WithEvents(st.EventRepo()),
	)
}

// newGenerator picks a provider for problem generation: the THERMOVIZ_*
// configuration, then the standard API key variables, then the tutor's
// stored Gemini key.
func newGenerator(ctx context.Context, st *store.Store) (problemgen.Generator, error) {
	cfg := llm.ConfigFromEnv()
	if !cfg.HasCredential() {
		if found, ok := llm.DiscoverConfig(); ok {
			cfg = found
		} else if key, ok, err := st.SettingsRepo().Get(ctx, store.CredentialKey); err == nil && ok && strings.TrimSpace(key) != "" {
			cfg = llm.DefaultConfig()
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = strings.TrimSpace(key)
			cfg.Gemini.Model = tutor.DefaultModel
		}
	}
	if !cfg.HasCredential() {
		return nil, errNoProvider
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		return nil, err
	}
	return problemgen.New(provider, problemgen.DefaultConfig()), nil
}
