package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Mode: "debug", Port: "8080"},
		Database: DatabaseConfig{Host: "localhost", User: "easyeval", DBName: "easyeval"},
		JWT:      JWTConfig{Secret: "short-but-fine-in-debug"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database",
		},
		{
			name:    "missing database user",
			mutate:  func(c *Config) { c.Database.User = "" },
			wantErr: "database",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWT.Secret = "" },
			wantErr: "jwt secret",
		},
		{
			name: "short jwt secret rejected in release",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
			},
			wantErr: "too short",
		},
		{
			name: "long jwt secret accepted in release",
			mutate: func(c *Config) {
				c.Server.Mode = "release"
				c.JWT.Secret = strings.Repeat("s", 32)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
