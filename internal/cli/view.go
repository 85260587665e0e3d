package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/draw/internal/infra/fsworkspace"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/infra/workspacefinder"
	"github.com/aalvaropc/draw/internal/ui/tui"
)

func viewCmd(opts *rootOpts) *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "view <script>",
		Short: "Step through the snapshots of a script interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace, false)
			if err != nil {
				return err
			}

			ref, err := resolveScript(ws, args[0])
			if err != nil {
				return err
			}
			if ref.Path == stdinScript {
				return errors.New("view reads the terminal; pass a script file instead of -")
			}

			return tui.Run(tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                opts.debug,
				WorkspaceRoot:        ws.root,
				Script:               &ref,
			})
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
