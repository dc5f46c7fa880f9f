package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/files/filesystem"
	"github.com/vvka-141/traceschema/internal/logging"
	"github.com/vvka-141/traceschema/internal/tui"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var validateFlags struct {
	strict bool
	json   bool
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Check that schema documents decode",
	Long: `Decode every document and report failures.

Every document is checked even after a failure; the exit code reflects the
first failure kind found. Unknown interface names are warnings. With
--strict (or strict: true in the config) any warning fails the document.

Examples:
  traceschema validate ./schemas
  traceschema validate --strict session.xml
  traceschema validate --json ./schemas`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "Treat warnings as errors")
	validateCmd.Flags().BoolVar(&validateFlags.json, "json", false, "Print the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

func resetValidateFlags() {
	validateFlags.strict = false
	validateFlags.json = false
}

type validationResult struct {
	Path     string `json:"path"`
	Valid    bool   `json:"valid"`
	Schemas  int    `json:"schemas"`
	Warnings int    `json:"warnings"`
	Error    string `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	strict := validateFlags.strict || s.config.Strict

	paths, err := filesystem.CollectDocuments(files, args...)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	results := make([]validationResult, 0, len(paths))
	for _, path := range paths {
		counter := logging.NewCountingLogger(s.logger)
		result := validationResult{Path: path}

		ctx, _, err := s.readDocument(path, counter)
		if err == nil {
			result.Schemas = len(ctx.Declared())
			result.Warnings = counter.Warnings()
			if strict && result.Warnings > 0 {
				err = fmt.Errorf("%s: %w (%d)", path, traceschema.ErrStrictWarnings, result.Warnings)
			}
		}
		if err != nil {
			result.Error = err.Error()
			errs = multierror.Append(errs, err)
		}
		result.Valid = err == nil
		results = append(results, result)
	}

	if validateFlags.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		printValidation(cmd, results)
	}

	return errs.ErrorOrNil()
}

func printValidation(cmd *cobra.Command, results []validationResult) {
	out := cmd.OutOrStdout()
	p := tui.NewPainter(tui.DetectMode(out))

	failed := 0
	for _, r := range results {
		switch {
		case !r.Valid:
			failed++
			fmt.Fprintf(out, "%s %s\n", p.Error(tui.SymbolCross), r.Path)
		case r.Warnings > 0:
			fmt.Fprintf(out, "%s %s (%d schemas, %d warnings)\n", p.Warning(tui.SymbolWarning), r.Path, r.Schemas, r.Warnings)
		default:
			fmt.Fprintf(out, "%s %s (%d schemas)\n", p.Success(tui.SymbolCheck), r.Path, r.Schemas)
		}
	}
	fmt.Fprintln(out, p.Muted(fmt.Sprintf("%d documents, %d failed", len(results), failed)))
}
