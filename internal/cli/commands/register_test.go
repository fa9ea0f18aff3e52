package commands

import (
	"strings"
	"testing"
)

func TestRegisterCommand_Structure(t *testing.T) {
	cmd := NewRegisterCmd()

	if cmd.Use != "register" {
		t.Errorf("expected Use to be 'register', got %s", cmd.Use)
	}
	for _, flag := range []string{"name", "email", "password", "env"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag to exist", flag)
		}
	}
}

// Name and email are checked before the interactive password prompt, so a
// bad invocation is rejected immediately instead of after typing a password.
// Under `go test` stdin is not a terminal: reaching the prompt would surface
// its non-interactive error rather than a validation one.
func TestRegisterCommand_ValidatesBeforePasswordPrompt(t *testing.T) {
	tests := []struct {
		name    string
		vals    []string // name, email
		wantErr string
	}{
		{name: "missing email", vals: []string{"A", ""}, wantErr: "invalid Email"},
		{name: "bad email", vals: []string{"A", "not-an-email"}, wantErr: "invalid Email"},
		{name: "missing name", vals: []string{"", "a@b.com"}, wantErr: "invalid Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runRegister(tt.vals[0], tt.vals[1], "", "")
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
			if strings.Contains(err.Error(), "non-interactive") {
				t.Errorf("validation must run before the password prompt, got %q", err.Error())
			}
		})
	}
}

func TestRegisterCommand_ShortPasswordRejected(t *testing.T) {
	err := runRegister("A", "a@b.com", "short", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid Password") {
		t.Errorf("expected password validation error, got %q", err.Error())
	}
}
