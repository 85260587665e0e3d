package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func scriptsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scripts",
		Short: "Manage command scripts in a workspace",
	}

	c.AddCommand(scriptsListCmd())
	return c
}

func scriptsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, true)
			if err != nil {
				return err
			}

			refs, err := ws.scripts.ListScripts(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no scripts found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
