package server

import (
	"testing"

	"github.com/iwvelando/finance-calc/internal/config"
	"github.com/iwvelando/finance-calc/pkg/constants"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(config.ServerConfig{})
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body limit, got %d", cfg.BodySizeBytes())
	}
}

func TestNewConfigOverrides(t *testing.T) {
	cfg, err := NewConfig(config.ServerConfig{Address: "127.0.0.1:9000", MaxBodySize: "2M"})
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected 2MB limit, got %d", cfg.BodySizeBytes())
	}

	cfg.SetBodySizeBytes(512)
	if cfg.BodySizeBytes() != 512 || cfg.MaxBodySize != "512" {
		t.Fatalf("SetBodySizeBytes() did not apply, got %d %q", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}
	cfg.SetBodySizeBytes(0)
	if cfg.BodySizeBytes() != 512 {
		t.Fatalf("SetBodySizeBytes(0) should be ignored")
	}
}

func TestNewConfigInvalidSize(t *testing.T) {
	if _, err := NewConfig(config.ServerConfig{MaxBodySize: "10X"}); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"", constants.DefaultMaxBodySizeBytes, false},
		{"1024", 1024, false},
		{"256K", 256 * 1024, false},
		{"256kb", 256 * 1024, false},
		{"1M", 1024 * 1024, false},
		{"1 GB", 1024 * 1024 * 1024, false},
		{"M", 0, true},
		{"12Q", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Fatalf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
