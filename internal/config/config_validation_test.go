// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "cost too low", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 2 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "trusted proxies", mutate: func(cfg *StructuredConfig) { cfg.Server.TrustedProxies = []string{"10.0.0.0/8", "127.0.0.1"} }},
		{name: "bad trusted proxy", mutate: func(cfg *StructuredConfig) { cfg.Server.TrustedProxies = []string{"not-an-ip"} }, wantErr: ErrInvalidServerConfigs},
		{name: "zero rate limit", mutate: func(cfg *StructuredConfig) { cfg.Server.AuthRateLimitRPM = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
