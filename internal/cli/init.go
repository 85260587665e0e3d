package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/draw/internal/infra/fsworkspace"
	"github.com/aalvaropc/draw/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a draw workspace with demo scripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized draw workspace at %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Try: draw render demo")
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing draw.yaml and demo scripts")
	return c
}
