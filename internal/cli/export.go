package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/traceschema/pkg/traceschema"
)

var exportFlags struct {
	format string
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a document to YAML or JSON",
	Long: `Decode a document and print its schemas as YAML or JSON.

The export is one-way; documents are only read from XML. Values equal to
their defaults are omitted, as in the XML form.

Examples:
  traceschema export session.xml
  traceschema export --format json session.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}

func resetExportFlags() {
	exportFlags.format = "yaml"
}

type exportedContext struct {
	Schemas []exportedSchema `json:"schemas" yaml:"schemas"`
}

type exportedSchema struct {
	Name             string              `json:"name" yaml:"name"`
	Interfaces       []string            `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Canonical        bool                `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Elements         []exportedElement   `json:"elements,omitempty" yaml:"elements,omitempty"`
	DefaultElement   string              `json:"default_element,omitempty" yaml:"default_element,omitempty"`
	Attributes       []exportedAttribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	DefaultAttribute *exportedAttribute  `json:"default_attribute,omitempty" yaml:"default_attribute,omitempty"`
	Aliases          []exportedAlias     `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

type exportedElement struct {
	Index  string `json:"index" yaml:"index"`
	Schema string `json:"schema" yaml:"schema"`
}

type exportedAttribute struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Schema   string `json:"schema" yaml:"schema"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Fixed    bool   `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Hidden   string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

type exportedAlias struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFlags.format != "yaml" && exportFlags.format != "json" {
		return fmt.Errorf("invalid argument %q for --format: must be yaml or json", exportFlags.format)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, _, err := s.readDocument(args[0], nil)
	if err != nil {
		return err
	}

	return writeExport(cmd.OutOrStdout(), exportContext(ctx), exportFlags.format)
}

func writeExport(w io.Writer, doc exportedContext, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func exportContext(ctx *traceschema.SchemaContext) exportedContext {
	doc := exportedContext{Schemas: []exportedSchema{}}
	for _, schema := range ctx.Declared() {
		doc.Schemas = append(doc.Schemas, exportSchema(schema))
	}
	return doc
}

func exportSchema(schema *traceschema.TraceObjectSchema) exportedSchema {
	result := exportedSchema{
		Name:      schema.Name().String(),
		Canonical: schema.IsCanonicalContainer(),
	}
	for _, iface := range schema.Interfaces() {
		result.Interfaces = append(result.Interfaces, iface.Name())
	}
	for _, ent := range schema.ElementSchemas() {
		result.Elements = append(result.Elements, exportedElement{Index: ent.Index, Schema: ent.Schema.String()})
	}
	if des := schema.DefaultElementSchema(); !traceschema.IsDefaultElementSchema(des) {
		result.DefaultElement = des.String()
	}
	for _, ent := range schema.AttributeSchemas() {
		if ent.IsAlias() {
			continue
		}
		result.Attributes = append(result.Attributes, exportAttribute(ent.Schema))
	}
	if das := schema.DefaultAttributeSchema(); !traceschema.IsDefaultAttributeSchema(das) {
		exported := exportAttribute(das)
		result.DefaultAttribute = &exported
	}
	for _, alias := range schema.AttributeAliases() {
		result.Aliases = append(result.Aliases, exportedAlias{From: alias.From, To: alias.To})
	}
	return result
}

func exportAttribute(as traceschema.AttributeSchema) exportedAttribute {
	result := exportedAttribute{
		Name:     as.Name(),
		Schema:   as.Schema().String(),
		Required: as.IsRequired(),
		Fixed:    as.IsFixed(),
	}
	if as.Hidden() != traceschema.HiddenDefault {
		result.Hidden = as.Hidden().String()
	}
	return result
}
