package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	tvdberrors "github.com/matzehuels/tvdb/pkg/errors"
	"github.com/matzehuels/tvdb/pkg/languages"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var outputFormats = []string{formatTable, formatJSON, formatYAML}

// maxConcurrentLookups bounds parallel requests for "languages get".
const maxConcurrentLookups = 4

// languagesCommand creates the languages command with list and get.
func (c *CLI) languagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"lang"},
		Short:   "Query TheTVDB languages",
	}

	cmd.AddCommand(c.languagesListCommand())
	cmd.AddCommand(c.languagesGetCommand())

	return cmd
}

func (c *CLI) languagesListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all supported languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tvdberrors.ValidateFormat(format, outputFormats); err != nil {
				return err
			}

			ctx := cmd.Context()
			catalog, closeCache, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			prog := newProgress(c.Logger)
			spinner := newSpinnerWithContext(ctx, "Fetching languages...")
			spinner.Start()
			records, err := catalog.All(ctx)
			spinner.Stop()
			if err != nil {
				return fmt.Errorf("fetch languages: %w", err)
			}
			prog.done(fmt.Sprintf("Fetched %d languages", len(records)))

			return writeRecords(cmd.OutOrStdout(), format, records, false)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, yaml")
	return cmd
}

func (c *CLI) languagesGetCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get <id>...",
		Short: "Show one or more languages by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tvdberrors.ValidateFormat(format, outputFormats); err != nil {
				return err
			}

			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := tvdberrors.ParseLanguageID(arg)
				if err != nil {
					return err
				}
				ids[i] = id
			}

			ctx := cmd.Context()
			catalog, closeCache, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			prog := newProgress(c.Logger)
			records := make([]languages.Record, len(ids))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(maxConcurrentLookups)
			for i, id := range ids {
				g.Go(func() error {
					r, err := catalog.Language(gctx, id)
					if err != nil {
						return fmt.Errorf("fetch language %d: %w", id, err)
					}
					records[i] = r
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d languages", len(records)))

			return writeRecords(cmd.OutOrStdout(), format, records, len(records) == 1)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json, yaml")
	return cmd
}

// writeRecords renders records in format. With single set, json and yaml
// print the lone record as an object instead of a one-element list.
func writeRecords(w io.Writer, format string, records []languages.Record, single bool) error {
	var v any = records
	if single && len(records) == 1 {
		v = records[0]
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, renderTable(records))
		return err
	}
}

// renderTable formats records as a bordered table in the order given.
func renderTable(records []languages.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		id := "—"
		if n, ok := r.ID(); ok {
			id = strconv.Itoa(n)
		}
		rows = append(rows, []string{id, dash(r.Abbreviation()), dash(r.Name()), dash(r.EnglishName())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().PaddingRight(1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Abbr", "Name", "English Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})
	return t.Render()
}

func dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
