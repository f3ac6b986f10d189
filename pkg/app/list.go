package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"farmstand/pkg/catalog"
)

// listOptions mirrors the page controls.
type listOptions struct {
	catalogPath string
	kind        string
	filter      catalog.FilterState
	sort        string
}

func (c *cli) listCmd() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print catalog entries after filtering and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := catalog.NewLibrary(c.logger)
			if err := lib.Load(opts.catalogPath); err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), lib.Catalog(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "Catalog markup file; the built-in sample is used when empty")
	cmd.Flags().StringVar(&opts.kind, "kind", "products", "Which cards to list: products or recipes")
	cmd.Flags().StringVar(&opts.filter.Category, "category", catalog.All, "Category tag")
	cmd.Flags().StringVar(&opts.filter.Query, "query", "", "Case-insensitive search text")
	cmd.Flags().StringVar(&opts.filter.Difficulty, "difficulty", catalog.All, "Recipe difficulty: easy, medium, hard")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort key: name, price-low, price-high, rating")
	return cmd
}

// printEntries writes one tab-aligned row per visible entry.
func printEntries(w io.Writer, cat catalog.Catalog, opts listOptions) error {
	key, err := catalog.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}

	var entries []catalog.Entry
	switch opts.kind {
	case "products":
		entries = cat.Products
	case "recipes":
		entries = cat.Recipes
	default:
		return fmt.Errorf("unknown kind %q: use products or recipes", opts.kind)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range catalog.Sort(catalog.Filter(entries, opts.filter), key) {
		detail := e.PriceLabel
		if e.Kind == catalog.Recipe {
			detail = string(e.Difficulty)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Category, detail, e.Rating)
	}
	return tw.Flush()
}
