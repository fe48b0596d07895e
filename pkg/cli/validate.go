// This file provides command-line interface functionality for gh-prtitle.
// This file (validate.go) collects titles from their sources, validates them,
// and writes the results.
//
// Key responsibilities:
//   - Resolving titles from arguments, a file, a pull request, or the event payload
//   - Building the validator and component registry from the config file
//   - Validating batches concurrently while keeping input order
//   - Rendering text or JSON output

package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/githubnext/gh-prtitle/pkg/config"
	"github.com/githubnext/gh-prtitle/pkg/console"
	"github.com/githubnext/gh-prtitle/pkg/ghpr"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/githubnext/gh-prtitle/pkg/prtitle"
	"github.com/githubnext/gh-prtitle/pkg/tty"
	"github.com/sourcegraph/conc/iter"
)

var validateRunLog = logger.New("cli:validate")

var batchLog = logger.NewSlogLogger("cli:batch")

// ErrValidationFailed is returned when at least one title has issues.
var ErrValidationFailed = errors.New("PR title validation failed")

// ValidateOptions configures a validation run.
type ValidateOptions struct {
	Titles           []string
	TitleFile        string
	PRNumber         int
	Repo             string
	EventPath        string
	ConfigPath       string
	ConfigOptional   bool
	RegistryPatterns []string
	JSONOutput       bool
	FailFast         bool
	Verbose          bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Overridable in tests.
	NewClient func() (ghpr.RESTClient, error)
	BaseForm  prtitle.BaseFormFunc
}

// TitleResult is the outcome for one title.
type TitleResult struct {
	Title  string         `json:"title"`
	Valid  bool           `json:"valid"`
	Issues prtitle.Issues `json:"issues"`
}

// RunValidate validates every title named by opts and writes a report. It
// returns ErrValidationFailed when any title is invalid.
func RunValidate(opts ValidateOptions) ([]TitleResult, error) {
	opts.setDefaults()

	cfg, err := config.Load(opts.ConfigPath, opts.ConfigOptional)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		source := "built-in defaults"
		if cfg.Path != "" {
			source = cfg.Path
		}
		fmt.Fprintln(opts.Stderr, console.FormatVerboseMessage("Using configuration from "+source))
	}

	reg, err := cfg.ComponentRegistry(opts.RegistryPatterns...)
	if err != nil {
		return nil, err
	}

	validatorOpts := []prtitle.Option{
		prtitle.WithRegistry(reg),
		prtitle.WithBaseForm(opts.BaseForm),
	}
	if opts.FailFast {
		validatorOpts = append(validatorOpts, prtitle.WithFailFast())
	}
	validator, err := prtitle.NewValidator(cfg.Validator, validatorOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	titles, err := collectTitles(opts)
	if err != nil {
		return nil, err
	}
	validateRunLog.Printf("Validating %d titles", len(titles))
	if opts.Verbose {
		fmt.Fprintln(opts.Stderr, console.FormatVerboseMessage(fmt.Sprintf("Validating %d title(s) against %d component names", len(titles), len(reg.DisplayNames()))))
	}

	results := ValidateTitles(validator, titles)

	if err := writeResults(opts, results); err != nil {
		return results, err
	}
	for _, r := range results {
		if !r.Valid {
			return results, ErrValidationFailed
		}
	}
	return results, nil
}

// ValidateTitles runs v over titles concurrently. Results are in input order.
func ValidateTitles(v *prtitle.Validator, titles []string) []TitleResult {
	return iter.Map(titles, func(title *string) TitleResult {
		issues := v.Validate(*title)
		batchLog.Debug("validated title", "title", *title, "issues", len(issues))
		return TitleResult{Title: *title, Valid: issues.Valid(), Issues: issues}
	})
}

func (o *ValidateOptions) setDefaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.NewClient == nil {
		o.NewClient = ghpr.NewRESTClient
	}
}

// collectTitles resolves the title sources in precedence order: explicit
// titles and a title file, then a pull request number, then the event
// payload.
func collectTitles(opts ValidateOptions) ([]string, error) {
	titles := append([]string(nil), opts.Titles...)

	if opts.TitleFile != "" {
		fromFile, err := readTitleFile(opts.TitleFile, opts.Stdin)
		if err != nil {
			return nil, err
		}
		titles = append(titles, fromFile...)
	}
	if len(titles) > 0 {
		return titles, nil
	}

	if opts.PRNumber > 0 {
		owner, repo, err := ghpr.ResolveRepo(opts.Repo)
		if err != nil {
			return nil, err
		}
		client, err := opts.NewClient()
		if err != nil {
			return nil, err
		}
		title, err := ghpr.FetchTitle(client, owner, repo, opts.PRNumber)
		if err != nil {
			return nil, err
		}
		return []string{title}, nil
	}

	if opts.EventPath != "" {
		title, err := ghpr.TitleFromEventFile(opts.EventPath)
		if err != nil {
			return nil, err
		}
		return []string{title}, nil
	}

	return nil, errors.New("no title to validate: pass a title, --file, --pr, or run inside a pull_request workflow")
}

// readTitleFile reads one title per line, skipping blank lines. "-" reads stdin.
func readTitleFile(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open title file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read titles: %w", err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("title file %s contains no titles", path)
	}
	return titles, nil
}

func writeResults(opts ValidateOptions, results []TitleResult) error {
	if opts.JSONOutput {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		_, err = fmt.Fprintln(opts.Stdout, string(data))
		return err
	}

	entries := make([]console.ReportEntry, len(results))
	for i, r := range results {
		entries[i] = console.ReportEntry{Title: r.Title, Problems: r.Issues.Messages()}
	}
	_, err := io.WriteString(opts.Stdout, console.RenderReport(entries, tty.IsTerminal(opts.Stdout)))
	return err
}
