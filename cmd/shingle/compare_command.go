package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shingle/internal/api"
	"shingle/internal/history"
)

type compareOptions struct {
	jsonOutput  bool
	window      int
	minMatch    int
	highlighter string
	noSave      bool
	noReuse     bool
	summaryOnly bool
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare <first> <second>",
		Short: "Compare two texts and mark overlapping passages",
		Long: "Compare two text files for fuzzy-shingle overlap.\n\n" +
			"Use - for one of the arguments to read that text from standard input.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			if cmd.Flags().Changed("window") {
				local.Matching.WindowSize = opts.window
			}
			if cmd.Flags().Changed("min-match") {
				local.Matching.MinMatchSize = opts.minMatch
			}
			switch {
			case cmd.Flags().Changed("highlight"):
				local.Render.Highlighter = strings.ToLower(strings.TrimSpace(opts.highlighter))
			case !opts.jsonOutput && isTerminal(cmd.OutOrStdout()):
				local.Render.Highlighter = "ansi"
			}
			if opts.noReuse {
				local.History.ReuseResults = false
			}
			if err := local.Validate(); err != nil {
				return err
			}

			texts, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			store, closeStore, err := ctx.openStore(&local)
			if err != nil {
				return err
			}
			defer closeStore()

			svc, err := ctx.newService(&local, store, history.SourceCLI, ctx.commandLogger(false))
			if err != nil {
				return err
			}

			resp, err := svc.Compare(cmd.Context(), api.CompareRequest{
				Text1:  texts[0],
				Text2:  texts[1],
				Label1: inputLabel(args[0]),
				Label2: inputLabel(args[1]),
				NoSave: opts.noSave,
			})
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd, resp)
			}
			renderComparison(cmd.OutOrStdout(), [2]string{inputLabel(args[0]), inputLabel(args[1])}, resp, !opts.summaryOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the comparison result as JSON")
	cmd.Flags().IntVar(&opts.window, "window", 0, "Shingle window size in tokens (overrides matching.window_size)")
	cmd.Flags().IntVar(&opts.minMatch, "min-match", 0, "Shared words that flag a window pair (overrides matching.min_match_size)")
	cmd.Flags().StringVar(&opts.highlighter, "highlight", "", "Marker style: html, ansi or brackets (default ansi on a terminal)")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "Do not record this comparison in history")
	cmd.Flags().BoolVar(&opts.noReuse, "no-reuse", false, "Recompute even if an identical comparison is stored")
	cmd.Flags().BoolVar(&opts.summaryOnly, "summary", false, "Print only the statistics table")
	return cmd
}

func renderComparison(out io.Writer, labels [2]string, resp api.CompareResponse, withText bool) {
	result := resp.Result
	rows := [][]string{
		{labels[0], strconv.Itoa(result.TotalWords1), strconv.Itoa(result.NonUniqueWords1), fmt.Sprintf("%d%%", result.PercentNonUnique1), strconv.Itoa(len(result.Groups1))},
		{labels[1], strconv.Itoa(result.TotalWords2), strconv.Itoa(result.NonUniqueWords2), fmt.Sprintf("%d%%", result.PercentNonUnique2), strconv.Itoa(len(result.Groups2))},
	}
	fmt.Fprintln(out, tableView{
		title:   "Overlap",
		headers: []string{"Document", "Words", "Non-unique", "Percent", "Fragments"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
	}.render())
	fmt.Fprintf(out, "Vocabulary similarity: %.2f\n", result.VocabularySimilarity)
	switch {
	case resp.Reused:
		fmt.Fprintf(out, "Reused stored comparison %s\n", resp.ID)
	case resp.ID != "":
		fmt.Fprintf(out, "Recorded as %s\n", resp.ID)
	}
	if !withText {
		return
	}
	for i, text := range []string{result.MarkedText1, result.MarkedText2} {
		fmt.Fprintf(out, "\n== %s ==\n", labels[i])
		if text == "" {
			fmt.Fprintln(out, "(no words after normalization)")
			continue
		}
		fmt.Fprintln(out, text)
	}
}
