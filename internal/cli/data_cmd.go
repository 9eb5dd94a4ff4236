package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/crewclock/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the punch log as CSV or XLSX",
		Long: `Export every stored punch in insertion order.

The format defaults to the extension of --output, or csv when writing to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := service.Format(strings.ToLower(format))
			if f == "" {
				f = service.FormatFromPath(output)
			}
			if f != service.FormatCSV && f != service.FormatXLSX {
				return fmt.Errorf("unsupported format %q (use csv or xlsx)", format)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer file.Close()
				w = file
			}

			n, err := app.Export.Export(cmd.Context(), w, f)
			if err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d punch(es) to %s\n", n, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import punches from a CSV or XLSX log",
		Long: `Import punches from an export or from a legacy header-less timelogs.csv
(user, action, timestamp, tasks, photo, project). Every row gets a new ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d punch(es) from %s\n", res.Imported, args[0])
			return nil
		},
	}
}
