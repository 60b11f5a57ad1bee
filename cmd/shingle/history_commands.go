package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shingle/internal/api"
	"shingle/internal/history"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and prune stored comparisons",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))

	return historyCmd
}

// withHistory runs fn against a service backed by the history store.
func (c *commandContext) withHistory(fn func(svc *api.ComparisonService) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errors.New("history is disabled (set history.enabled = true)")
	}
	store, closeStore, err := c.openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	svc, err := c.newService(cfg, store, history.SourceCLI, c.commandLogger(false))
	if err != nil {
		return err
	}
	return fn(svc)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent comparisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(svc *api.ComparisonService) error {
				items, err := svc.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, api.HistoryListResponse{Items: items})
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No comparisons recorded")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Created", "Source", "First", "Second", "Overlap", "Similarity"},
					buildHistoryRows(items),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of comparisons to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print history as JSON")
	return cmd
}

func buildHistoryRows(items []api.HistoryItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			shortID(item.ID),
			item.CreatedAt,
			item.Source,
			labelOrDash(item.Label1),
			labelOrDash(item.Label2),
			fmt.Sprintf("%d%% / %d%%", item.PercentNonUnique1, item.PercentNonUnique2),
			strconv.FormatFloat(item.VocabularySimilarity, 'f', 2, 64),
		})
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func labelOrDash(label string) string {
	if strings.TrimSpace(label) == "" {
		return "-"
	}
	return label
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored comparison",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(svc *api.ComparisonService) error {
				resp, err := svc.Describe(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					if errors.Is(err, history.ErrNotFound) {
						return fmt.Errorf("comparison %s not found", args[0])
					}
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Comparison %s (%s, %s)\n", resp.Item.ID, resp.Item.Source, resp.Item.CreatedAt)
				fmt.Fprintf(out, "Window %d, minimum match %d\n", resp.Item.WindowSize, resp.Item.MinMatchSize)
				renderComparison(out,
					[2]string{labelOrDash(resp.Item.Label1), labelOrDash(resp.Item.Label2)},
					api.CompareResponse{Result: resp.Result},
					true,
				)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the stored comparison as JSON")
	return cmd
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete comparisons older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = cfg.History.RetentionDays
			}
			if days <= 0 {
				return errors.New("--days must be positive")
			}
			store, closeStore, err := ctx.openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()
			if store == nil {
				return errors.New("history is disabled (set history.enabled = true)")
			}
			removed, err := store.PruneRetention(cmd.Context(), days, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d comparisons older than %d days\n", removed, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Retention in days (defaults to history.retention_days)")
	return cmd
}
