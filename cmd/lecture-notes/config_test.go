// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/lecture-notes/internal/secrets"
	"github.com/pdiddy/lecture-notes/pkg/types"
)

func TestResolveAPIKey(t *testing.T) {
	env := map[string]string{"GEMINI_API_KEY": "from-env"}
	getenv := func(k string) string { return env[k] }
	store := secrets.Store{"gemini-api-key": "from-secrets", "anthropic-api-key": "ant-secret"}

	tests := []struct {
		name     string
		explicit string
		provider types.Provider
		store    secrets.Store
		want     string
	}{
		{name: "explicit wins", explicit: "flag-key", provider: types.ProviderGemini, store: store, want: "flag-key"},
		{name: "provider env next", provider: types.ProviderGemini, store: store, want: "from-env"},
		{name: "secrets last", provider: types.ProviderAnthropic, store: store, want: "ant-secret"},
		{name: "nothing configured", provider: types.ProviderAnthropic, store: secrets.Store{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveAPIKey(tt.explicit, tt.provider, getenv, tt.store))
		})
	}
}
