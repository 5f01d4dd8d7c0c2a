package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/itksn/pixels"
)

func newComponentsCmd(g *globals) *cobra.Command {
	var area string
	cmd := &cobra.Command{
		Use:   "components",
		Short: "list the component codes of the pixel sub-areas",
		Long: `Components prints one row per component code: the sub-area, the code,
the component type and how its identifier is decoded ("payload", "gap" for
a layout that always fails, "raw" for seven undecoded bytes).
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			areas := pixels.Areas
			if area != "" {
				a, err := parseArea(area)
				if err != nil {
					return err
				}
				areas = []pixels.Area{a}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "AREA\tCODE\tCOMPONENT\tIDENTIFIER")
			for _, a := range areas {
				list := pixels.Default.List(a)
				g.log.Debug("listing components", "area", string(a), "count", len(list))
				for _, c := range list {
					_, res := pixels.Default.Lookup(c.Name, a)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a, c.Code, c.Name, res)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&area, "area", "", "only list one sub-area: PI, PG, PB or PE")
	return cmd
}

func parseArea(s string) (pixels.Area, error) {
	want := pixels.Area(strings.ToUpper(strings.TrimSpace(s)))
	for _, a := range pixels.Areas {
		if a == want {
			return a, nil
		}
	}
	names := make([]string, 0, len(pixels.Areas))
	for _, a := range pixels.Areas {
		names = append(names, string(a))
	}
	return "", fmt.Errorf("unknown area %q (want one of %s)", s, strings.Join(names, ", "))
}
