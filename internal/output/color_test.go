package output

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
		wantErr   bool
	}{
		{name: "never disables on TTY", colorMode: ColorNever, isTTY: true, want: false},
		{name: "always enables on non-TTY", colorMode: ColorAlways, isTTY: false, want: true},
		{name: "auto uses TTY true", colorMode: ColorAuto, isTTY: true, want: true},
		{name: "auto uses TTY false", colorMode: ColorAuto, isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
		{name: "unknown value is rejected", colorMode: "bogus", isTTY: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColorMode(tt.colorMode, tt.isTTY)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveColorMode(%q) expected error", tt.colorMode)
				}
				if GetExitCode(err) != ExitUserError {
					t.Errorf("exit code = %d, want %d", GetExitCode(err), ExitUserError)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveColorMode(%q) error = %v", tt.colorMode, err)
			}
			if got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestColorNever_ClearsStyles(t *testing.T) {
	var buf bytes.Buffer
	enabled, err := ResolveColorMode(ColorNever, true)
	if err != nil {
		t.Fatal(err)
	}
	printer := NewPrinter(&buf, false, enabled)

	if printer.color {
		t.Error("printer should not use color when color=never")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color when color=never")
	}

	printer.Error(NewUserError("test error"))
	if containsANSI(buf.String()) {
		t.Errorf("--color never should produce no ANSI codes, got: %q", buf.String())
	}
}

func TestColorAlways_KeepsStyles(t *testing.T) {
	var buf bytes.Buffer
	enabled, err := ResolveColorMode(ColorAlways, false)
	if err != nil {
		t.Fatal(err)
	}
	printer := NewPrinter(&buf, false, enabled)

	if !printer.color {
		t.Error("printer should use color when color=always")
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() == empty.GetForeground() {
		t.Error("Error style should have foreground color when color=always")
	}
}

// containsANSI checks if a string contains ANSI escape sequences.
func containsANSI(s string) bool {
	for i := range len(s) - 1 {
		if s[i] == '\033' && s[i+1] == '[' {
			return true
		}
	}
	return false
}
