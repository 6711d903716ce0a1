package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-docs2pdf/internal/assets"
	"github.com/alnah/go-docs2pdf/internal/fileutil"
	"github.com/alnah/go-docs2pdf/internal/hints"
	"github.com/alnah/go-docs2pdf/internal/pipeline"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Chrome   chromeInfo `json:"chrome"`
	Styles   styleInfo  `json:"styles"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// styleInfo lists what the build can style with out of the box.
type styleInfo struct {
	Bundled          []string `json:"bundled"`
	DefaultHighlight string   `json:"default_highlight"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := slices.Contains(args, "--json")

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// doctorChecks run in order; each records findings on the result.
var doctorChecks = []func(*doctorResult, *Environment){
	checkChrome,
	checkEnvironment,
	func(r *doctorResult, _ *Environment) { checkSystem(r) },
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  env.getenv("ROD_NO_SANDBOX"),
			BrowserBin: env.getenv("ROD_BROWSER_BIN"),
		},
		Styles: styleInfo{
			Bundled:          assets.StyleNames(),
			DefaultHighlight: pipeline.DefaultHighlightStyle,
		},
	}

	for _, check := range doctorChecks {
		check(result, env)
	}

	switch {
	case len(result.Errors) > 0:
		result.Status = "errors"
	case len(result.Warnings) > 0:
		result.Status = "warnings"
	default:
		result.Status = "ready"
	}
	return result
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// checkChrome locates the browser the renderer would launch and asks it for
// its version.
func checkChrome(result *doctorResult, env *Environment) {
	bin := result.Env.BrowserBin
	if bin == "" {
		var found bool
		if bin, found = launcher.LookPath(); !found {
			result.fail("Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(bin); err != nil {
		result.fail("Chrome not found at %s", bin)
		return
	}
	result.Chrome = chromeInfo{Found: true, Path: bin, Sandbox: sandboxEnabled(env)}

	out, err := exec.Command(bin, "--version").Output() // #nosec G204 -- browser path from launcher or ROD_BROWSER_BIN
	if err != nil {
		result.warn("Could not get Chrome version: %v", err)
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

// sandboxEnabled mirrors the renderer: the sandbox is dropped for
// ROD_NO_SANDBOX=1, CI=true, or a custom ROD_BROWSER_BIN.
func sandboxEnabled(env *Environment) bool {
	return env.getenv("ROD_NO_SANDBOX") != "1" &&
		env.getenv("CI") != "true" &&
		env.getenv("ROD_BROWSER_BIN") == ""
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env)
	result.Env.CI = hints.InCI(env.getenv)

	if (result.Env.Container || result.Env.CI) && sandboxEnabled(env) {
		result.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(env *Environment) (bool, string) {
	if env.getenv("DOCS2PDF_CONTAINER") == "1" {
		return true, "DOCS2PDF_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman, systemd-nspawn
	if v := env.getenv("container"); v != "" {
		return true, "container=" + v
	}
	if env.getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the renderer can hand Chrome a temp HTML file.
func checkSystem(result *doctorResult) {
	path, cleanup, err := fileutil.WriteTempFile("<!DOCTYPE html>", "html")
	if err != nil {
		result.fail("Temp directory not writable: %s (%v)", os.TempDir(), err)
		return
	}
	defer cleanup()
	result.System.TempWritable = path != ""
}

// reportLine is one tagged line of the human-readable report.
type reportLine struct {
	tag  string // OK, WARN, ERROR
	text string
}

// reportSection groups report lines under a heading.
type reportSection struct {
	title string
	lines []reportLine
}

func okLine(format string, args ...any) reportLine {
	return reportLine{tag: "OK", text: fmt.Sprintf(format, args...)}
}

func errorLine(format string, args ...any) reportLine {
	return reportLine{tag: "ERROR", text: fmt.Sprintf(format, args...)}
}

// sections lays out r in display order.
func (r *doctorResult) sections() []reportSection {
	chrome := reportSection{title: "Chrome/Chromium"}
	if r.Chrome.Found {
		chrome.lines = append(chrome.lines, okLine("Found at %s", r.Chrome.Path))
		if r.Chrome.Version != "" {
			chrome.lines = append(chrome.lines, okLine("Version: %s", r.Chrome.Version))
		}
		sandbox := "enabled"
		if !r.Chrome.Sandbox {
			sandbox = "disabled"
		}
		chrome.lines = append(chrome.lines, okLine("Sandbox: %s", sandbox))
	} else {
		chrome.lines = append(chrome.lines, errorLine("Not found"))
	}

	environment := reportSection{title: "Environment", lines: []reportLine{okLine("Platform: %s/%s", r.Env.OS, r.Env.Arch)}}
	if r.Env.Container {
		environment.lines = append(environment.lines, okLine("Container: detected (%s)", r.Env.ContainerHint))
	}
	if r.Env.CI {
		environment.lines = append(environment.lines, okLine("CI: detected"))
	}

	styles := reportSection{title: "Styles", lines: []reportLine{
		okLine("Bundled: %s", strings.Join(r.Styles.Bundled, ", ")),
		okLine("Highlight default: %s", r.Styles.DefaultHighlight),
	}}

	system := reportSection{title: "System"}
	if r.System.TempWritable {
		system.lines = append(system.lines, okLine("Temp directory: writable"))
	} else {
		system.lines = append(system.lines, errorLine("Temp directory: not writable"))
	}

	out := []reportSection{chrome, environment, styles, system}

	if len(r.Warnings) > 0 {
		warnings := reportSection{title: "Warnings:"}
		for _, w := range r.Warnings {
			warnings.lines = append(warnings.lines, reportLine{tag: "WARN", text: w})
		}
		out = append(out, warnings)
	}
	if len(r.Errors) > 0 {
		errs := reportSection{title: "Errors:"}
		for _, e := range r.Errors {
			errs.lines = append(errs.lines, errorLine("%s", e))
		}
		out = append(out, errs)
	}
	return out
}

var statusText = map[string]string{
	"ready":    "Ready to build",
	"warnings": "Ready with warnings",
	"errors":   "Not ready (see errors above)",
}

// printDoctorResult writes the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "docs2pdf doctor\n\n")
	for _, sec := range r.sections() {
		fmt.Fprintln(w, sec.title)
		for _, l := range sec.lines {
			fmt.Fprintf(w, "  [%s] %s\n", l.tag, l.text)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Status: %s\n", statusText[r.Status])
}
