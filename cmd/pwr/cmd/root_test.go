package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	// rootCmd is shared across test cases: clear the sticky built-in flags
	// so a prior --help/--version invocation does not leak into this one.
	for _, name := range []string{"help", "version"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	if args == nil {
		// cobra falls back to os.Args when args is nil; force a bare invocation.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_NoActionIsAnError(t *testing.T) {
	_, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("--help must not error: %v", err)
	}

	_, err = execute(t)
	if !errors.Is(err, ErrNoAction) {
		t.Fatalf("bare invocation must return ErrNoAction, got %v", err)
	}
	if ExitCode(err) != ExitNoAction {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitNoAction)
	}
}

func TestRootCommand_UnknownTokenIsBadArgument(t *testing.T) {
	_, err := execute(t, "hibernate")
	if err == nil {
		t.Fatal("unknown token must be rejected")
	}
	if ExitCode(err) != ExitBadArgument {
		t.Errorf("exit code = %d, want %d", ExitCode(err), ExitBadArgument)
	}
}

func TestRootCommand_Help(t *testing.T) {
	output, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"perform", "powersave", "toggle", "query", "--norestart"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output should mention %q, got: %s", want, output)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")

	output, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"1.2.3", "abc123", "2026-01-01", "MIT"} {
		if !strings.Contains(output, want) {
			t.Errorf("version output should contain %q, got: %s", want, output)
		}
	}
}
