package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shingle/internal/history"
	"shingle/internal/logging"
	"shingle/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP comparison API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			if cmd.Flags().Changed("bind") {
				local.Paths.APIBind = bind
			}
			logger := logging.NewComponentLogger(ctx.commandLogger(true), "serve")

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, closeStore, err := ctx.openStore(&local)
			if err != nil {
				return err
			}
			defer closeStore()
			if store != nil && local.History.RetentionDays > 0 {
				removed, err := store.PruneRetention(runCtx, local.History.RetentionDays, time.Now())
				if err != nil {
					logger.Warn("history prune failed", logging.Error(err))
				} else if removed > 0 {
					logger.Info("history pruned", logging.Int64("removed", removed))
				}
			}

			svc, err := ctx.newService(&local, store, history.SourceAPI, ctx.commandLogger(true))
			if err != nil {
				return err
			}
			srv, err := server.New(&local, svc, ctx.commandLogger(true))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", local.Paths.APIBind)
			if err := srv.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides paths.api_bind)")
	return cmd
}
