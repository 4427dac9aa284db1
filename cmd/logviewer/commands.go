package main

import (
	"os"
	"os/signal"
	"syscall"

	"arthub_checkout/internal/infrastructure/backend"
	"arthub_checkout/internal/infrastructure/restclient"
	"arthub_checkout/internal/usecase"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newViewer(s settings) *usecase.LogViewerUseCase {
	client := backend.NewLogClient(restclient.New(s.Endpoint, s.Timeout))
	return usecase.NewLogViewerUseCase(client, s.Limit)
}

func watchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the log sink and redraw the table until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			clear := v.GetBool("clear") && isatty.IsTerminal(os.Stdout.Fd())
			return newViewer(s).Watch(ctx, s.Interval, s.filter(), func(view usecase.LogView) {
				if clear {
					clearScreen(out)
				}
				renderView(out, view, s.Location)
			})
		},
	}
	cmd.Flags().Duration("interval", usecase.DefaultPollInterval, "Poll interval")
	cmd.Flags().Bool("clear", true, "Clear the terminal before each redraw")
	return cmd
}

func listCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch the log sink once and print the table",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(v)
			if err != nil {
				return err
			}
			viewer := newViewer(s)
			refreshErr := viewer.Refresh(cmd.Context())
			renderView(cmd.OutOrStdout(), viewer.View(s.filter()), s.Location)
			return refreshErr
		},
	}
}
