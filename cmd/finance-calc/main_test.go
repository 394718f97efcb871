package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calc/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-level", "error"}
	cmd.SetArgs(append(base, args...))
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   config.LoggingConfig
		override string
		wantErr  bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"Bad level", config.LoggingConfig{Level: "bogus"}, "", true},
		{"Bad format", config.LoggingConfig{Format: "xml"}, "", true},
		{"Log file", config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "calc.log")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if (err != nil) != tt.wantErr {
				t.Fatalf("initializeLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "NPV as CSV",
			args:     []string{"npv", "--output-format", "csv", "--rate", "10", "--flows=-1000,200,300,400,500"},
			contains: []string{"Period,Flow,Discounted,Cumulative", "0,-1000.00,-1000.00,-1000.00"},
		},
		{
			name:     "IRR pretty",
			args:     []string{"irr", "--flows=-1000,200,300,400,500"},
			contains: []string{"--- Internal rate of return ---", "IRR:", "12,83%"},
		},
		{
			name:     "PRICE in English",
			args:     []string{"price", "--locale", "en-US", "--principal", "200000", "--rate", "1", "--periods", "60"},
			contains: []string{"Payment:", "$4,448.89", "Total interest:"},
		},
		{
			name:     "SAC",
			args:     []string{"sac", "--principal", "200000", "--rate", "1", "--periods", "60"},
			contains: []string{"R$ 3.333,33", "R$ 61.000,00"},
		},
		{
			name:     "Compound interest",
			args:     []string{"compound", "--principal", "10000", "--rate", "12", "--period", "2"},
			contains: []string{"R$ 12.544,00"},
		},
		{
			name:     "Simple interest with comma decimals",
			args:     []string{"simple", "--principal", "1000", "--rate", "1,5", "--basis", "monthly", "--period", "10", "--unit", "months"},
			contains: []string{"R$ 1.150,00"},
		},
		{
			name:     "Future value",
			args:     []string{"fv", "--pv", "1000", "--rate", "0.5", "--periods", "12"},
			contains: []string{"R$ 1.061,68"},
		},
		{
			name:     "Present value",
			args:     []string{"pv", "--fv", "1061.68", "--rate", "0.5", "--periods", "12"},
			contains: []string{"R$ 1.000,00"},
		},
		{
			name:     "Annuity future value",
			args:     []string{"annuity-fv", "--payment", "500", "--rate", "0.8", "--periods", "36"},
			contains: []string{"R$ 20.764,36"},
		},
		{
			name:     "Annuity present value",
			args:     []string{"annuity-pv", "--payment", "1000", "--rate", "1", "--periods", "12"},
			contains: []string{"R$ 11.255,08"},
		},
		{
			name:     "Compare",
			args:     []string{"compare", "--property", "300000", "--down", "60000", "--rate", "1", "--basis", "monthly", "--period", "360", "--unit", "months"},
			contains: []string{"Loan amount:", "R$ 240.000,00", "Interest savings:"},
		},
		{
			name:     "Percent proportion",
			args:     []string{"percent", "proportion", "300", "5000"},
			contains: []string{"6,00%"},
		},
		{
			name:     "CAGR",
			args:     []string{"cagr", "--start", "1000", "--end", "2000", "--years", "5"},
			contains: []string{"14,87%"},
		},
		{
			name:     "ROI",
			args:     []string{"roi", "--start", "1000", "--end", "1250"},
			contains: []string{"25,00%"},
		},
		{
			name:     "Inflation",
			args:     []string{"inflation", "--value", "1000", "--rate", "0.5", "--periods", "12"},
			contains: []string{"R$ 1.061,68"},
		},
		{
			name:     "Depreciation",
			args:     []string{"depreciation", "--cost", "50000", "--residual", "10000", "--life", "5"},
			contains: []string{"R$ 8.000,00", "Book value", "R$ 10.000,00"},
		},
		{
			name:     "Fixed income defaults",
			args:     []string{"fixed-income"},
			contains: []string{"Income tax:", "20,00%", "CDB net yield:", "R$ 119,20", "LCI total:", "R$ 1.134,10"},
		},
		{
			name:     "Fixed income from dates",
			args:     []string{"fixed-income", "--from", "2025-01-01", "--to", "2025-12-27"},
			contains: []string{"CDB net yield:", "R$ 119,20"},
		},
		{
			name:     "Version",
			args:     []string{"version"},
			contains: []string{"finance-calc dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("command error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"IRR without sign change", []string{"irr", "--flows", "100,100,100"}},
		{"Fractional periods", []string{"price", "--principal", "1000", "--rate", "1", "--periods", "10.5"}},
		{"Zero periods", []string{"sac", "--principal", "1000", "--rate", "1", "--periods", "0"}},
		{"Unknown basis", []string{"simple", "--basis", "weekly"}},
		{"Unknown percent mode", []string{"percent", "median", "1", "2"}},
		{"Bad output format", []string{"roi", "--output-format", "json"}},
		{"Bad log level", []string{"roi", "--log-level", "loud"}},
		{"Negative holding period", []string{"fixed-income", "--days=-5"}},
		{"Redemption before application", []string{"fixed-income", "--from", "2025-02-01", "--to", "2025-01-01"}},
		{"Only application date", []string{"fixed-income", "--from", "2025-02-01"}},
		{"Growth to a negative value", []string{"cagr", "--start", "1000", "--end=-500", "--years", "2"}},
		{"Depreciation life too long", []string{"depreciation", "--cost", "1000", "--life", "20000"}},
		{"Accumulation too long", []string{"compound", "--principal", "1000", "--rate", "1", "--basis", "monthly", "--period", "20000", "--unit", "months"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
