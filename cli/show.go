package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"github.com/unchain-tech/unchain-portal/config"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarise the configuration as tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			return renderSummary(a.out, cfg)
		},
	}
}

func renderSummary(w io.Writer, cfg *config.Config) error {
	site := [][]string{
		{"title", cfg.Title},
		{"tagline", cfg.Tagline},
		{"url", cfg.AbsoluteBaseURL},
		{"repository", cfg.DeploymentRepo()},
		{"locales", localeList(cfg)},
		{"prism", cfg.ThemeConfig.Prism.Theme + " / " + cfg.ThemeConfig.Prism.DarkTheme},
		{"copyright", cfg.ThemeConfig.Footer.RenderedCopyright},
	}
	if err := renderTable(w, "Site", []string{"Key", "Value"}, site); err != nil {
		return err
	}

	presets := make([][]string, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		presets = append(presets, []string{p.Name, p.Resolved, strconv.Itoa(len(p.Options))})
	}
	if err := renderTable(w, "Presets", []string{"Name", "Module", "Options"}, presets); err != nil {
		return err
	}

	navbar := make([][]string, 0, len(cfg.ThemeConfig.Navbar.Items))
	for _, item := range cfg.ThemeConfig.Navbar.Items {
		navbar = append(navbar, []string{
			string(item.Kind()), item.Label, string(item.Side()), item.Target(),
		})
	}
	if err := renderTable(w, "Navbar", []string{"Type", "Label", "Position", "Target"}, navbar); err != nil {
		return err
	}

	var footer [][]string
	for _, group := range cfg.ThemeConfig.Footer.Links {
		for _, item := range group.Items {
			target := item.Href
			if target == "" {
				target = item.To
			}
			footer = append(footer, []string{group.Title, item.Label, target})
		}
	}
	return renderTable(w, "Footer", []string{"Group", "Label", "Target"}, footer)
}

func localeList(cfg *config.Config) string {
	out := make([]string, 0, len(cfg.I18n.Locales))
	for _, l := range cfg.I18n.Locales {
		if cfg.I18n.IsDefault(l) {
			l += " (default)"
		}
		out = append(out, l)
	}
	return strings.Join(out, ", ")
}

func renderTable(w io.Writer, title string, headers []string, rows [][]string) error {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
