// Copyright © 2026 The svgls authors

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/luthersystems/svgls/schema"
	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema [ELEMENT]",
	Short: "Show the elements and attributes of the completion grammar",
	Long: `Without arguments, list every element of the grammar in order with its
flags: simple elements complete as self-closing tags, inline elements
complete with their end tag on the same line.

With an element name, describe the element: its documentation, the
children it allows and the attributes it accepts, with their types and
enumerated values.

Examples:
  svgls schema
  svgls schema pattern
  svgls schema --schema my-grammar.yaml g`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return listElements(out, catalog)
		}
		e, ok := catalog.LookupElement(args[0])
		if !ok {
			return fmt.Errorf("unknown element: %s", args[0])
		}
		describeElement(out, catalog, e)
		return nil
	},
}

func listElements(w io.Writer, c *schema.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range c.Elements() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, strings.Join(elementFlags(e), ","))
	}
	return tw.Flush()
}

func elementFlags(e *schema.ElementSchema) []string {
	var flags []string
	switch {
	case e.Simple:
		flags = append(flags, "simple")
	case e.Inline:
		flags = append(flags, "inline")
	}
	if e.Deprecated {
		flags = append(flags, "deprecated")
	}
	return flags
}

func describeElement(w io.Writer, c *schema.Catalog, e *schema.ElementSchema) {
	fmt.Fprintf(w, "<%s>", e.Name)
	if flags := elementFlags(e); len(flags) > 0 {
		fmt.Fprintf(w, " (%s)", strings.Join(flags, ", "))
	}
	fmt.Fprintln(w)
	if e.Documentation != "" {
		fmt.Fprintln(w, wrapDoc(e.Documentation, 2))
	}

	fmt.Fprintln(w)
	switch {
	case !e.RestrictsChildren():
		fmt.Fprintln(w, "Children: any element")
	case len(e.SubElements) == 0:
		fmt.Fprintln(w, "Children: none")
	default:
		fmt.Fprintf(w, "Children: %s\n", strings.Join(e.SubElements, ", "))
	}

	if len(e.Attributes) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Attributes:")
	for _, ref := range e.Attributes {
		attr, ok := c.ResolveElementAttribute(e.Name, ref.Name())
		if !ok {
			fmt.Fprintf(w, "  %s (undefined)\n", ref.Name())
			continue
		}
		fmt.Fprintf(w, "  %s", attr.Name)
		if attr.Type != "" {
			fmt.Fprintf(w, " %s", attr.Type)
		}
		if attr.Deprecated {
			fmt.Fprint(w, " DEPRECATED")
		}
		fmt.Fprintln(w)
		if attr.HasEnum() {
			values := make([]string, 0, len(attr.Enum))
			for _, v := range attr.Enum {
				values = append(values, v.Name)
			}
			fmt.Fprintln(w, wrapDoc("values: "+strings.Join(values, " | "), 4))
		}
	}
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
