package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shingle/internal/api"
	"shingle/internal/comparison"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Show the normalized sentences a comparison works on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			texts, err := readInputs(cmd, args)
			if err != nil {
				return err
			}
			if err := comparison.RequireText(texts[0]); err != nil {
				return err
			}
			svc, err := ctx.newService(cfg, nil, "", ctx.commandLogger(false))
			if err != nil {
				return err
			}
			resp := svc.Clean(api.CleanRequest{Text: texts[0]})
			if jsonOutput {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			for _, sentence := range resp.Sentences {
				fmt.Fprintln(out, sentence)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print sentences and token count as JSON")
	return cmd
}
