package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the interface names known to the decoder",
	Long: `List every interface name a <interface> node may use.

The standard trace interfaces are included unless builtin_interfaces is
false in the config. Names listed under interfaces in the config are added.
Any other name is reported as a warning and dropped while decoding.`,
	Args: cobra.NoArgs,
	RunE: runInterfaces,
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	builtin := traceschema.DefaultInterfaces()
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Interface", "Source"})
	for _, name := range s.interfaces.Names() {
		source := "config"
		if _, ok := builtin.Lookup(name); ok && s.config.UseBuiltinInterfaces() {
			source = "builtin"
		}
		table.Append([]string{name, source})
	}
	table.Render()
	return nil
}
