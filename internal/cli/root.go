package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/draw/internal/infra/fsworkspace"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/infra/workspacefinder"
	"github.com/aalvaropc/draw/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	opts := &rootOpts{}
	err := newRootCmd(opts).ExecuteContext(ctx)
	opts.closeLog()
	stop()

	if err != nil {
		os.Exit(1)
	}
}

type rootOpts struct {
	debug   bool
	cleanup func() error
}

// setupLog points the logger at the workspace enclosing the working
// directory. Outside a workspace nothing is logged.
func (o *rootOpts) setupLog() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	wd, _ = filepath.Abs(wd)

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil || root == "" {
		return
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: o.debug})
	if err == nil {
		o.cleanup = cleanup
	}
}

func (o *rootOpts) closeLog() {
	if o.cleanup != nil {
		_ = o.cleanup()
		o.cleanup = nil
	}
}

func newRootCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "draw",
		Short:        "draw - ASCII canvas drawing from command scripts",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.setupLog()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                opts.debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .draw/logs/draw.log")

	cmd.AddCommand(
		renderCmd(),
		validateCmd(),
		viewCmd(opts),
		scriptsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
