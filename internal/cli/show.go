package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vvka-141/traceschema/internal/tui"
	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var showFlags struct {
	schemas []string
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the schemas of a document as tables",
	Long: `Decode a document and print one table per schema.

Each table lists the element entries, the attribute entries, and the
attribute aliases of the schema. Default entries are shown as (default)
when they differ from the implicit defaults.

Examples:
  traceschema show session.xml
  traceschema show session.xml --schema Process --schema Thread`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringArrayVarP(&showFlags.schemas, "schema", "s", nil, "Only show the named schema (repeatable)")
	rootCmd.AddCommand(showCmd)
}

func resetShowFlags() {
	showFlags.schemas = nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, _, err := s.readDocument(args[0], nil)
	if err != nil {
		return err
	}

	selected := ctx.Declared()
	if len(showFlags.schemas) > 0 {
		selected = selected[:0:0]
		for _, name := range showFlags.schemas {
			schema, ok := ctx.Schema(ctx.Name(name))
			if !ok {
				return fmt.Errorf("schema %q not found in %s", name, args[0])
			}
			selected = append(selected, schema)
		}
	}

	out := cmd.OutOrStdout()
	p := tui.NewPainter(tui.DetectMode(out))
	for i, schema := range selected {
		if i > 0 {
			fmt.Fprintln(out)
		}
		renderSchema(out, p, schema)
	}
	return nil
}

func renderSchema(out io.Writer, p tui.Painter, schema *traceschema.TraceObjectSchema) {
	title := displayName(schema.Name().String())
	var notes []string
	for _, iface := range schema.Interfaces() {
		notes = append(notes, iface.Name())
	}
	if schema.IsCanonicalContainer() {
		notes = append(notes, "canonical")
	}
	if len(notes) > 0 {
		title += " " + p.Muted("["+strings.Join(notes, ", ")+"]")
	}
	fmt.Fprintln(out, p.Title(title))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Key", "Schema", "Flags"})
	table.SetAutoWrapText(false)

	rows := 0
	for _, ent := range schema.ElementSchemas() {
		table.Append([]string{"element", "[" + ent.Index + "]", ent.Schema.String(), ""})
		rows++
	}
	if des := schema.DefaultElementSchema(); !traceschema.IsDefaultElementSchema(des) {
		table.Append([]string{"element", "(default)", des.String(), ""})
		rows++
	}
	for _, ent := range schema.AttributeSchemas() {
		if ent.IsAlias() {
			continue
		}
		table.Append([]string{"attribute", ent.Key, ent.Schema.Schema().String(), attributeFlags(ent.Schema)})
		rows++
	}
	if das := schema.DefaultAttributeSchema(); !traceschema.IsDefaultAttributeSchema(das) {
		table.Append([]string{"attribute", "(default)", das.Schema().String(), attributeFlags(das)})
		rows++
	}
	for _, alias := range schema.AttributeAliases() {
		table.Append([]string{"alias", alias.From, "-> " + alias.To, ""})
		rows++
	}

	if rows == 0 {
		fmt.Fprintln(out, p.Muted("  (no entries)"))
		return
	}
	table.Render()
}

func attributeFlags(as traceschema.AttributeSchema) string {
	var flags []string
	if as.IsRequired() {
		flags = append(flags, "required")
	}
	if as.IsFixed() {
		flags = append(flags, "fixed")
	}
	if as.IsHidden(as.Name()) {
		flags = append(flags, "hidden")
	}
	return strings.Join(flags, ",")
}

func displayName(name string) string {
	if name == "" {
		return `""`
	}
	return name
}
