package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/samples"
)

var sampleFlags struct {
	list bool
}

var sampleCmd = &cobra.Command{
	Use:   "sample [name]",
	Short: "Print an embedded sample document",
	Long: `Print one of the sample documents shipped with traceschema.

Without a name the session sample is printed, a complete debugger session
model with processes, threads, stacks, registers, memory, and modules.

Examples:
  traceschema sample > session.xml
  traceschema sample --list
  traceschema sample breakpoints`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: samples.Names(),
	RunE:      runSample,
}

func init() {
	sampleCmd.Flags().BoolVarP(&sampleFlags.list, "list", "l", false, "List sample names")
	rootCmd.AddCommand(sampleCmd)
}

func resetSampleFlags() {
	sampleFlags.list = false
}

func runSample(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if sampleFlags.list {
		for _, name := range samples.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	name := samples.Default
	if len(args) == 1 {
		name = args[0]
	}
	doc, err := samples.Get(name)
	if err != nil {
		return err
	}
	_, err = out.Write(doc)
	return err
}
