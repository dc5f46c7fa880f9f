package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/files/filesystem"
	"github.com/vvka-141/traceschema/internal/fingerprint"
	"github.com/vvka-141/traceschema/pkg/schemaxml"
)

var fingerprintFlags struct {
	json bool
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <path>...",
	Short: "Print content digests and identities of documents",
	Long: `Print the canonical SHA-256 digest, UUID, and path of each document.

The canonical digest is computed over the re-encoded document, so it does not
change when a document is only reformatted. The raw digest covers the bytes
on disk and is included in the JSON output.

Examples:
  traceschema fingerprint session.xml
  traceschema fingerprint --json ./schemas`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFingerprint,
}

func init() {
	fingerprintCmd.Flags().BoolVar(&fingerprintFlags.json, "json", false, "Print fingerprints as JSON")
	rootCmd.AddCommand(fingerprintCmd)
}

func resetFingerprintFlags() {
	fingerprintFlags.json = false
}

type fingerprintResult struct {
	Path string `json:"path"`
	fingerprint.Fingerprint
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	paths, err := filesystem.CollectDocuments(files, args...)
	if err != nil {
		return err
	}

	results := make([]fingerprintResult, 0, len(paths))
	for _, path := range paths {
		data, err := files.ReadFile(path)
		if err != nil {
			return err
		}
		fp, err := fingerprint.OfDocument(data, s.decoder(nil))
		if err != nil {
			return schemaxml.WithSource(err, path)
		}
		results = append(results, fingerprintResult{Path: path, Fingerprint: fp})
	}

	out := cmd.OutOrStdout()
	if fingerprintFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s  %s  %s\n", r.Canonical, r.ID, r.Path)
	}
	return nil
}
