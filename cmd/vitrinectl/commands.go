package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vitrine/internal/version"
	vitrine "github.com/kailas-cloud/vitrine/pkg/sdk"
)

func newSeedCmd(g *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML or JSON catalog fixture into the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := g.connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.SeedFile(cmd.Context(), file); err != nil {
				return err //nolint:wrapcheck // already prefixed by the SDK
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", file)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture to load (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	var pageNum, limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank the catalog against a free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			res, err := client.Search(cmd.Context(), strings.Join(args, " "),
				vitrine.Page(pageNum), vitrine.Limit(limit))
			if err != nil {
				return err //nolint:wrapcheck // already prefixed by the SDK
			}
			if g.jsonOut {
				return printJSON(cmd.OutOrStdout(), res)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "query %q -> %q keywords %v: %d found (page %d/%d)\n",
				res.Query, res.NormalizedQuery, res.Keywords, res.ResultsFound,
				res.Pagination.Page, res.Pagination.TotalPages)
			return printProducts(w, res.Products)
		},
	}
	cmd.Flags().IntVar(&pageNum, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size (max 100)")
	return cmd
}

func newColorsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List distinct product colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := g.connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			colors, err := client.Products().Colors(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck // already prefixed by the SDK
			}
			if g.jsonOut {
				return printJSON(cmd.OutOrStdout(), colors)
			}
			for _, c := range colors {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newHealthCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the catalog store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := g.connect(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			h := client.Health(cmd.Context())
			if g.jsonOut {
				if err := printJSON(cmd.OutOrStdout(), h); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), h.Status)
			}
			if !h.OK() {
				return fmt.Errorf("catalog %s", h.Status)
			}
			return nil
		},
	}
}

func newAliasesCmd(g *globalFlags) *cobra.Command {
	var colors bool
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Show the query terms mapped to categories (or colors)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := vitrine.CategoryAliases()
			terms := slices.Sorted(maps.Keys(table))
			if colors {
				table = vitrine.ColorAliases()
				terms = vitrine.ColorNames()
			}
			if g.jsonOut {
				return printJSON(cmd.OutOrStdout(), table)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, term := range terms {
				fmt.Fprintf(w, "%s\t%s\n", term, table[term])
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&colors, "colors", false, "show color aliases")
	return cmd
}

func newVersionCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.jsonOut {
				return printJSON(cmd.OutOrStdout(), version.Get())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}

func printProducts(out io.Writer, products []vitrine.Product) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOLOR\tPRICE")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\n", p.ID, p.Name, p.Category, p.Color, p.Price)
	}
	return w.Flush()
}
