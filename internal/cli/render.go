package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/infra/snapshotsink"
	"github.com/aalvaropc/draw/internal/usecase"
)

func renderCmd() *cobra.Command {
	var workspace string
	var output string
	var pngDir string
	var noSave bool

	c := &cobra.Command{
		Use:   "render <script>",
		Short: "Render a command script, printing the canvas after every command",
		Long: "Render a command script. The script is a file path, - for stdin, " +
			"or the name of a script in the workspace scripts directory.",
		Args: cobra.ExactArgs(1),
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

			var sinks snapshotsink.Multi
			var file *snapshotsink.File
			if output != "" {
				file, err = snapshotsink.Create(output)
				if err != nil {
					return err
				}
				defer func() { _ = file.Close() }()
				sinks = append(sinks, file)
			} else {
				sinks = append(sinks, snapshotsink.NewWriter(cmd.OutOrStdout()))
			}
			if pngDir != "" {
				sinks = append(sinks, snapshotsink.NewPNG(pngDir, ref.Name))
			}

			opts := []usecase.RenderOption{usecase.WithLogger(logger.L())}
			if ws.store != nil && !noSave {
				opts = append(opts, usecase.WithReportStore(ws.store))
			}

			d := domain.NewDispatcher(domain.WithSymbols(ws.cfg.Symbols))
			report, runErr := usecase.NewRenderScript(d, sinks, opts...).Execute(cmd.Context(), ref, src)

			printSummary(cmd.ErrOrStderr(), report, file, pngDir)
			return runErr
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&output, "output", "o", "", "Write snapshots to this file instead of stdout")
	c.Flags().StringVar(&pngDir, "png-dir", "", "Also export every snapshot as a PNG into this directory")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a render report under reports/")
	return c
}

func printSummary(w io.Writer, r domain.RenderReport, file *snapshotsink.File, pngDir string) {
	status := "OK"
	if r.Failed() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "[%s] %s: %d command(s) applied", status, r.ScriptName, len(r.Commands))
	if r.Cols > 0 {
		fmt.Fprintf(w, ", canvas %dx%d", r.Cols-2, r.Rows-2)
	}
	fmt.Fprintln(w)

	if file != nil {
		fmt.Fprintf(w, "  snapshots: %s\n", file.Path())
	}
	if pngDir != "" && len(r.Commands) > 0 {
		fmt.Fprintf(w, "  png: %s\n", filepath.Clean(pngDir))
	}
	if r.ID != "" {
		fmt.Fprintf(w, "  report: %s\n", r.ID)
	}
}
