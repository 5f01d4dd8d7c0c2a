package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/itksn/internal/corpus"
)

func newCheckCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "check serial numbers against their expected fields",
		Long: `Check reads YAML files listing serial numbers with the fields they must
decode to (or the issue code they must fail with) and reports every case
that does not match:

	- serial: 20UPGFW2123456
	  expect:
	    component_code: FE_chip_wafer
	    identifier/batch: RD53A
	- serial: 20UPGMC2291234999
	  error: trailing_data
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, failed := 0, 0
			for _, name := range args {
				cases, err := readCorpus(name)
				if err != nil {
					return err
				}
				g.log.Debug("checking corpus", "file", name, "cases", len(cases))
				total += len(cases)
				for _, fl := range corpus.CheckAll(g.parser, cases) {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", name, fl)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d problems in %d cases", failed, total)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok %d cases\n", total)
			return nil
		},
	}
}

func readCorpus(name string) ([]corpus.Case, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cases, err := corpus.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cases, nil
}
