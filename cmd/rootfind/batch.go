// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfinder/batch"
	"github.com/katalvlaran/rootfinder/problemset"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		opts   batch.Options
		format string
	)

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every problem of a YAML problem file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown --format %q (text | yaml)", format)
			}

			set, err := problemset.Load(args[0])
			if err != nil {
				return err
			}

			outcomes, err := batch.Run(cmd.Context(), a.logger, set.Problems, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err = enc.Encode(outcomes); err != nil {
					return err
				}
				return enc.Close()
			}

			failed := 0
			for _, o := range outcomes {
				fmt.Fprintf(out, "[%s]\n", o.Problem)
				if o.Report != "" {
					fmt.Fprint(out, o.Report)
				}
				if o.Err != "" {
					failed++
					fmt.Fprintf(out, " - error            : %s\n", o.Err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d problems failed", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent problems (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.KeepHistory, "history", false, "include estimate histories (yaml format)")
	cmd.Flags().StringVar(&format, "format", "text", "text | yaml")

	return cmd
}
