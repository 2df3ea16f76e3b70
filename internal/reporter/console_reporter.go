package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aleister1102/secretgate/internal/config"
	"github.com/aleister1102/secretgate/internal/models"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// ConsoleReporter renders the guard's progress and verdict for a human.
type ConsoleReporter struct {
	out       io.Writer
	allowFile string

	danger  *color.Color
	warning *color.Color
	success *color.Color
	accent  *color.Color
}

// NewConsoleReporter creates a reporter writing to out. allowFile is the
// allowlist file name quoted in the remediation steps.
func NewConsoleReporter(out io.Writer, cfg *config.ReporterConfig, allowFile string) *ConsoleReporter {
	r := &ConsoleReporter{
		out:       out,
		allowFile: allowFile,
		danger:    color.New(color.FgRed, color.Bold),
		warning:   color.New(color.FgYellow),
		success:   color.New(color.FgGreen),
		accent:    color.New(color.FgCyan),
	}

	enabled := ColorEnabled(out, cfg)
	for _, c := range []*color.Color{r.danger, r.warning, r.success, r.accent} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// ColorEnabled resolves the colour mode for out: "always" and "never" win,
// otherwise colour is used only on a terminal and when NO_COLOR is unset.
func ColorEnabled(out io.Writer, cfg *config.ReporterConfig) bool {
	mode := config.ColorModeAuto
	if cfg != nil {
		mode = cfg.Color
	}
	switch mode {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := out.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Scanning announces how many files are about to be submitted.
func (r *ConsoleReporter) Scanning(count int) {
	fmt.Fprintf(r.out, "Scanning %d file(s) for secrets...\n", count)
}

// Skipped reports that the scan did not run. The commit proceeds.
func (r *ConsoleReporter) Skipped(reason string) {
	r.warning.Fprintf(r.out, "WARNING: %s, skipping secret scan\n", reason)
	fmt.Fprintln(r.out, DetectorInstallHint)
}

// Interrupted reports a scan cancelled before completion.
func (r *ConsoleReporter) Interrupted() {
	r.danger.Fprintln(r.out, "Secret scan interrupted, blocking commit")
}

// Render prints the verdict for outcome and returns the process exit code.
func (r *ConsoleReporter) Render(outcome models.ScanOutcome) int {
	if outcome.BlockingCount() == 0 {
		r.success.Fprintln(r.out, "No secrets detected")
		return models.ExitSuccess
	}

	separator := strings.Repeat(SeparatorChar, SeparatorWidth)

	fmt.Fprintln(r.out)
	r.danger.Fprintln(r.out, "SECRET SCAN FAILED")
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "Found %d verified secret(s) in staged files:\n\n", outcome.BlockingCount())

	for i, f := range outcome.Blocking {
		fmt.Fprintf(r.out, "%d. %s in %s\n", i+1, r.accent.Sprint(f.DisplayDetector()), f.Location())
		if f.Identity != "" {
			fmt.Fprintf(r.out, "   hash: %s\n", f.Identity)
		}
	}
	if outcome.Suppressed > 0 {
		fmt.Fprintf(r.out, "\n(%d allowlisted finding(s) ignored)\n", outcome.Suppressed)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, "To fix:")
	fmt.Fprintln(r.out, "  1. Remove the secrets from your code")
	fmt.Fprintln(r.out, "  2. Use environment variables or a secret manager instead")
	fmt.Fprintf(r.out, "  3. If this is a false positive, add its hash to %s\n", r.allowFile)
	fmt.Fprintln(r.out)
	r.warning.Fprintln(r.out, "To bypass (NOT recommended):")
	fmt.Fprintf(r.out, "  %s\n", BypassCommand)

	return models.ExitBlocked
}
