package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "validate <script>",
		Short: "Check that every command of a script applies (nothing is written)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace, false)
			if err != nil {
				return err
			}

			ref, err := resolveScript(ws, args[0])
			if err != nil {
				return err
			}

			src, closeSrc, err := openSource(ref, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer func() { _ = closeSrc() }()

			d := domain.NewDispatcher(domain.WithSymbols(ws.cfg.Symbols))
			n, err := usecase.NewValidateScript(d).Execute(cmd.Context(), src)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d command(s))\n", n)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}
