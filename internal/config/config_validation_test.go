// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "key",
			TokenIssuer:   "notesage",
			TokenDuration: time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/notesage"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		AI: AI{
			APIKey: "gemini-key",
			Model:  "gemini-2.5-flash",
		},
	}
}

func TestValidate_FullConfig(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, cfg.validate())
}

func TestValidate_MissingGroups(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "empty issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty AI api key",
			mutate:  func(cfg *StructuredConfig) { cfg.AI.APIKey = "" },
			wantErr: ErrInvalidAIConfigs,
		},
		{
			name:    "empty AI model",
			mutate:  func(cfg *StructuredConfig) { cfg.AI.Model = "" },
			wantErr: ErrInvalidAIConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
