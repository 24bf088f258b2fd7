package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.example.com/v1", normalizeBaseURL("https://api.example.com/v1"))
	assert.Equal(t, "https://api.example.com/v1", normalizeBaseURL("https://api.example.com/v1/"))
	assert.Equal(t, "https://api.example.com/v1", normalizeBaseURL("https://api.example.com/v1/chat/completions"))
	assert.Equal(t, "https://api.example.com/v1", normalizeBaseURL("https://api.example.com/v1/chat/completions/"))
	assert.Equal(t, "", normalizeBaseURL(""))
}

func TestEffectiveTemperature(t *testing.T) {
	cfg := &config.ProviderConfig{
		SupportsTemperature: true,
		TemperatureDefault:  0.7,
		TemperatureMin:      0.0,
		TemperatureMax:      1.0,
	}

	got := effectiveTemperature(cfg, nil)
	require.NotNil(t, got)
	assert.Equal(t, 0.7, *got)

	v := 0.3
	got = effectiveTemperature(cfg, &v)
	require.NotNil(t, got)
	assert.Equal(t, 0.3, *got)

	v = 2.5
	got = effectiveTemperature(cfg, &v)
	require.NotNil(t, got)
	assert.Equal(t, 1.0, *got, "clamped to max")

	v = -1.0
	got = effectiveTemperature(cfg, &v)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got, "clamped to min")

	cfg.SupportsTemperature = false
	assert.Nil(t, effectiveTemperature(cfg, &v), "dropped when unsupported")
}

func chatTestConfig(baseURL string) *config.ProviderConfig {
	return &config.ProviderConfig{
		Name:                "testchat",
		Kind:                config.ProviderKindChat,
		BaseURL:             baseURL,
		Model:               "test-model",
		SupportsTemperature: true,
		TemperatureMax:      1.0,
		InputCostPer1K:      0.01,
		OutputCostPer1K:     0.03,
		Authority:           config.AuthorityLicensedAI,
	}
}

func TestChatClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Apixaban is a factor Xa inhibitor."}},
			},
			"usage": map[string]any{"prompt_tokens": 100, "completion_tokens": 50, "total_tokens": 150},
		})
	}))
	defer srv.Close()

	c := NewChatClient(chatTestConfig(srv.URL))
	resp, err := c.Fetch(context.Background(), Query{
		DrugName: "Apixaban",
		System:   "You are a pharmaceutical analyst.",
		Prompt:   "Describe Apixaban.",
	})
	require.NoError(t, err)
	assert.Equal(t, "testchat", resp.Provider)
	assert.Equal(t, "Apixaban is a factor Xa inhibitor.", resp.Text)
	assert.Equal(t, 150, resp.TokenCount)
	assert.InDelta(t, 100.0/1000*0.01+50.0/1000*0.03, resp.Cost, 1e-9)
	assert.Equal(t, Checksum(resp.Text), resp.Checksum)
}

func TestChatClientFetch_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewChatClient(chatTestConfig(srv.URL))
	_, err := c.Fetch(context.Background(), Query{Prompt: "x"})
	require.Error(t, err)

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindRateLimited, pe.Kind)
	assert.Equal(t, 7, int(pe.RetryAfter.Seconds()))
	assert.True(t, pe.IsTransient())
}

func TestChatClientFetch_AuthErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewChatClient(chatTestConfig(srv.URL))
	_, err := c.Fetch(context.Background(), Query{Prompt: "x"})

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindAuthError, pe.Kind)
	assert.False(t, pe.IsTransient())
}
