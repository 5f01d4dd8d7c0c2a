package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/itksn/render"
)

func newParseCmd(g *globals) *cobra.Command {
	var (
		format string
		opts   render.Options
	)
	cmd := &cobra.Command{
		Use:   "parse SERIAL...",
		Short: "decode serial numbers and print their fields",
		Long: `Parse decodes each serial number and prints the decoded record.

The default text output is an indented tree. JSON and YAML keep the field
order; CBOR uses core deterministic encoding.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			for _, s := range args {
				sn, err := g.parser.DecodeString(s)
				if err != nil {
					return fmt.Errorf("parse %s: %w", s, err)
				}
				if err := render.Write(cmd.OutOrStdout(), f, sn.Record(), opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(render.Text), "output format: text, json, yaml or cbor")
	cmd.Flags().BoolVar(&opts.Views, "views", false, "include peeked view fields")
	cmd.Flags().BoolVar(&opts.Codes, "codes", false, "print enums with their byte code (json, yaml, cbor)")
	return cmd
}

func newEncodeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "encode SERIAL...",
		Short: "decode and re-encode serial numbers, printing the canonical form",
		Long: `Encode decodes each serial number, writes the decoded record back to
bytes and prints the result. It fails when the two differ.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				sn, err := g.parser.DecodeString(s)
				if err != nil {
					return fmt.Errorf("encode %s: %w", s, err)
				}
				b, err := g.parser.Encode(sn)
				if err != nil {
					return fmt.Errorf("encode %s: %w", s, err)
				}
				if !bytes.Equal(b, []byte(s)) {
					return fmt.Errorf("encode %s: round trip produced %q", s, b)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
			}
			return nil
		},
	}
}
