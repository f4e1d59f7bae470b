package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hashart/pkg/palette"
	"github.com/matzehuels/hashart/pkg/pattern"
	"github.com/matzehuels/hashart/pkg/shapes"
)

// shapesCommand creates the shapes command.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "Show shape kinds, motifs and palette options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(shapeTable())
			fmt.Println()
			printKeyValue("motifs", joinOr(pattern.Motifs(), "none"))
			printKeyValue("proportions", joinOr(pattern.Proportions(), "none"))
			printKeyValue("schemes", joinOr(schemeNames(), "none"))
			printKeyValue("variations", joinOr(variationNames(), "none"))
			printKeyValue("solids", joinOr(shapes.Solids(), "none"))
			return nil
		},
	}
}

// shapeTable renders every registered kind with its tier.
func shapeTable() string {
	kinds := shapes.Kinds()
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{k.String(), k.Tier().String()}
	}
	return renderTable([]string{"Kind", "Tier"}, rows)
}

func schemeNames() []string {
	var out []string
	for _, s := range palette.Schemes() {
		out = append(out, string(s))
	}
	return out
}

func variationNames() []string {
	var out []string
	for _, v := range palette.Variations() {
		out = append(out, string(v))
	}
	return out
}
