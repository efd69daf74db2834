package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{"never on TTY", "never", true, false},
		{"always off TTY", "always", false, true},
		{"auto on TTY", "auto", true, true},
		{"auto off TTY", "auto", false, false},
		{"empty defaults to auto", "", true, true},
		{"unknown defaults to auto", "bogus", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.colorMode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTYBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) should be false")
	}
}

func TestRenderBannerPlain(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBanner(&buf, NewPalette(false), Banner{
		Tagline: "Production-Ready AI Agents",
		Version: "v1.2.3",
		Year:    2025,
	})
	if err != nil {
		t.Fatalf("RenderBanner: %v", err)
	}

	out := buf.String()
	if containsANSI(out) {
		t.Errorf("plain palette should not emit ANSI codes: %q", out)
	}
	for _, want := range []string{"Production-Ready AI Agents", "v1.2.3 | 2025", "███████╗██████╗"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n < len(bannerArt)+3 {
		t.Errorf("banner has %d lines, want at least %d", n, len(bannerArt)+3)
	}
}

func TestRenderBannerWithoutYear(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBanner(&buf, NewPalette(false), Banner{Version: "dev"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "vdev\n") {
		t.Errorf("version line missing:\n%s", buf.String())
	}
}

func TestGradientCoversBanner(t *testing.T) {
	if got := len(NewPalette(true).Gradient()); got != len(bannerArt) {
		t.Errorf("gradient has %d styles for %d banner lines", got, len(bannerArt))
	}
}

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, NewPalette(false)).WithStderr(&errOut)

	p.Step("Created %s", "docs/")
	p.Pending("Would create %s", "src/")
	p.Status("ok", "pyproject.toml", "exists")
	p.Status("miss", "tests/", "not found")
	p.Warn("template set %q not found", "claude")

	wantOut := "✓ Created docs/\n" +
		"• Would create src/\n" +
		"  [ OK ] pyproject.toml: exists\n" +
		"  [MISS] tests/: not found\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}

	wantErr := "Warning: template set \"claude\" not found\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user", NewUserError("bad flag"), ExitUserError},
		{"system", NewSystemError("io", errors.New("x")), ExitSystemError},
		{"conflict", NewConflictError("kind", nil), ExitConflict},
		{"wrapped", fmt.Errorf("outer: %w", NewSystemError("io", nil)), ExitSystemError},
		{"plain", errors.New("plain"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewSystemError("creating docs/", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestExitErrorMessage(t *testing.T) {
	cause := errors.New("mkdir /work/.claude: destination entry has a different kind")

	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"message only", NewUserError("bad flag"), "bad flag"},
		{"cause only", &ExitError{Code: ExitSystemError, Cause: cause}, cause.Error()},
		{
			"message and cause",
			NewConflictError("project layout conflicts with the templates", cause),
			"project layout conflicts with the templates: mkdir /work/.claude: destination entry has a different kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func containsANSI(s string) bool {
	return strings.Contains(s, "\x1b[")
}
