package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/assetflow/backend/internal/catalog"
	"github.com/assetflow/backend/internal/reports"
	"github.com/assetflow/backend/internal/workspace"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func newSearchCommand() *cobra.Command {
	var filters catalog.Filters
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the asset catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, nil)
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			pageSize := limit
			if pageSize <= 0 {
				pageSize = ws.Discovery.PageSize()
			}
			page := catalog.Search(ws.Catalog, query, filters, pageSize)

			out := cmd.OutOrStdout()
			if page.Total == 0 {
				fmt.Fprintln(out, "No assets found")
				return nil
			}

			rows := make([][]string, 0, len(page.Assets))
			for _, a := range page.Assets {
				d := ws.Licenses.Resolve(a.License)
				rows = append(rows, []string{a.ID, a.Title, a.Source, a.Category, d.Name, yesNo(d.CommercialUse), yesNo(d.AttributionRequired)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Title", "Source", "Category", "License", "Commercial", "Attribution"},
				rows,
			))
			fmt.Fprintf(out, "Showing %d of %d assets\n", page.Loaded, page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.Source, "source", "", "Filter by source (case-insensitive)")
	cmd.Flags().StringVar(&filters.Type, "type", "", "Filter by asset type")
	cmd.Flags().StringVar(&filters.License, "license", "", "Filter by license code")
	cmd.Flags().StringVar(&filters.Category, "category", "", "Filter by category")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results to show (default page size)")

	return cmd
}

func newAttributionCommand() *cobra.Command {
	var save []string
	var format string
	var copyText bool

	cmd := &cobra.Command{
		Use:   "attribution",
		Short: "Generate attribution text for saved assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, save)
			if err != nil {
				return err
			}

			text, err := ws.Attribution(format)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			if copyText {
				if err := copyToClipboard(text); err != nil {
					return fmt.Errorf("copy attribution: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Attributions copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&save, "save", nil, "Asset ids to save before generating")
	cmd.Flags().StringVar(&format, "format", "text", "Attribution format: html, text or social")
	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the text to the clipboard")

	return cmd
}

func newReportCommand() *cobra.Command {
	var save []string
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:       "report <usage|compliance|attribution|license>",
		Short:     "Generate a library report",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"usage", "compliance", "attribution", "license"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := reports.ParseKind(args[0])
			if err != nil {
				return err
			}
			f, err := reports.ParseFormat(format)
			if err != nil {
				return err
			}

			ws, err := openWorkspace(cmd, save)
			if err != nil {
				return err
			}

			r, err := ws.Report(cmd.Context(), kind)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := reports.Render(cmd.Context(), &buf, r, f); err != nil {
				return err
			}

			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), reports.ExportMessage(f))
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&save, "save", nil, "Asset ids to save before generating")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv or pdf")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

// openWorkspace builds a fresh session for a one-shot command and saves the
// requested assets into it. Logs go to stderr so stdout stays parseable.
func openWorkspace(cmd *cobra.Command, save []string) (*workspace.Workspace, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cfg, _, err := loadRuntime(ctx, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	cmd.SetContext(ctx)

	ws := buildWorkspace(ctx, cfg)
	for _, id := range save {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, _, err := ws.Library.SaveAsset(id); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
