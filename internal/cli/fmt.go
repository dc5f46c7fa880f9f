package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/files/filesystem"
	"github.com/vvka-141/traceschema/internal/logging"
	"github.com/vvka-141/traceschema/pkg/schemaxml"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var fmtFlags struct {
	write  bool
	force  bool
	indent int
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <path>...",
	Short: "Rewrite schema documents in canonical form",
	Long: `Decode each document and encode it again.

The canonical form lists schemas in registration order, attributes in
insertion order, and omits every value equal to its default. Directories are
expanded to the *.xml documents beneath them.

Without --write the canonical form is printed to stdout. Interfaces the
decoder does not recognize are reported and dropped from the output, so
--write refuses to rewrite such a file unless --force is given.

Examples:
  traceschema fmt session.xml
  traceschema fmt --write ./schemas
  traceschema fmt --write --force legacy.xml
  traceschema fmt --indent 0 session.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "Write the result back to each file")
	fmtCmd.Flags().BoolVar(&fmtFlags.force, "force", false, "With --write, rewrite files even when decoding reported warnings")
	fmtCmd.Flags().IntVar(&fmtFlags.indent, "indent", -1, "Spaces per nesting level, 0 for compact output (default from config, else 2)")
	rootCmd.AddCommand(fmtCmd)
}

func resetFmtFlags() {
	fmtFlags.write = false
	fmtFlags.force = false
	fmtFlags.indent = -1
}

func runFmt(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	paths, err := filesystem.CollectDocuments(files, args...)
	if err != nil {
		return err
	}
	indent := s.indent(fmtFlags.indent)

	counter := logging.NewCountingLogger(s.logger)
	for _, path := range paths {
		counter.Reset()
		ctx, original, err := s.readDocument(path, counter)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := schemaxml.Write(&buf, ctx, indent); err != nil {
			return fmt.Errorf("failed to encode %s: %w", path, err)
		}

		if !fmtFlags.write {
			if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
				return err
			}
			continue
		}

		if n := counter.Warnings(); n > 0 && !fmtFlags.force {
			return fmt.Errorf("%s: %w (%d), rewriting would drop the reported content (use --force)",
				path, traceschema.ErrStrictWarnings, n)
		}
		if bytes.Equal(original, buf.Bytes()) {
			s.logger.Verbose("Unchanged %s", path)
			continue
		}
		if err := files.WriteFile(path, buf.Bytes()); err != nil {
			return err
		}
		s.logger.Info("Formatted %s", path)
	}
	return nil
}
