package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/textkit/server"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

const testConfig = `[general]
log_level = "warn"

[text]
delimiters = ",;"
case_rule = "unicode"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithConfig(t, testConfig, stdin, args...)
}

func runCLIWithConfig(t *testing.T, content, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", writeConfig(t, content)}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_TextCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"is-empty blank", "", []string{"is-empty", "   "}, "true"},
		{"is-empty text", "", []string{"is-empty", "a"}, "false"},
		{"is-empty stdin", " \n", []string{"is-empty"}, "true"},
		{"upper-first", "", []string{"upper-first", "hello", "world"}, "Hello world"},
		{"upper-first stdin", "éclair\n", []string{"upper-first"}, "Éclair"},
		{"upper-first ascii", "", []string{"upper-first", "--case-rule", "ascii", "éclair"}, "éclair"},
		{"lower-first", "", []string{"lower-first", "Hello"}, "hello"},
		{"url-pattern", "", []string{"url-pattern", "/test.do", "//a", "b"}, "test.do\n/a\nb"},
		{"url-pattern stdin", "/x\n\n/y\n", []string{"url-pattern"}, "x\ny"},
		{"tokenize config delimiters", "", []string{"tokenize", "a, b;;c"}, "a\nb\nc"},
		{"tokenize flags", "", []string{"tokenize", "-d", "|", "--keep-empty", "a| |b"}, "a\n\nb"},
		{"tokenize no trim", "", []string{"tokenize", "-d", "|", "--no-trim", "a| b"}, "a\n b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr = %s", err, stderr)
			}
			if got := strings.TrimSuffix(stdout, "\n"); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLI_JSONOutput(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--json", "tokenize", "x;y")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got struct {
		Input  string   `json:"input"`
		Result []string `json:"result"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got.Input != "x;y" || !reflect.DeepEqual(got.Result, []string{"x", "y"}) {
		t.Errorf("got %+v", got)
	}
}

func TestCLI_Errors(t *testing.T) {
	_, _, err := runCLI(t, "", "upper-first", "--case-rule", "runic", "a")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("unknown case rule error = %v, want INVALID_ARGUMENT", err)
	}

	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "is-empty", "x"})
	if err := cmd.Execute(); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("missing config error = %v, want MISSING_CONFIG", err)
	}
}

func TestCLI_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "textkit v") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCLI_Remote(t *testing.T) {
	logger := logging.Wrap(mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelError,
		Output: io.Discard,
	}), "textkit-test")

	cfg := config.Default()
	cfg.Text.Delimiters = "|"
	srv, err := server.New(cfg, logger)
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	addr := lis.Addr().String()

	// The server's delimiters apply, not the local config's.
	stdout, stderr, err := runCLI(t, "", "--addr", addr, "tokenize", "a,b|c")
	if err != nil {
		t.Fatalf("Execute() error = %v, stderr = %s", err, stderr)
	}
	if got := strings.TrimSpace(stdout); got != "a,b\nc" {
		t.Errorf("stdout = %q, want %q", got, "a,b\nc")
	}

	_, _, err = runCLI(t, "", "--addr="+addr, "lower-first", "--case-rule", "runic", "A")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("remote error = %v, want INVALID_ARGUMENT", err)
	}

	// --remote takes no value and uses client.address
	remoteConfig := testConfig + "\n[client]\naddress = \"" + addr + "\"\n"
	stdout, stderr, err = runCLIWithConfig(t, remoteConfig, "", "--remote", "tokenize", "a,b|c")
	if err != nil {
		t.Fatalf("Execute(--remote) error = %v, stderr = %s", err, stderr)
	}
	if got := strings.TrimSpace(stdout); got != "a,b\nc" {
		t.Errorf("--remote stdout = %q, want %q", got, "a,b\nc")
	}
}
