package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/devlog-backend/internal/app"
	"github.com/heartmarshall/devlog-backend/internal/domain"
	"github.com/heartmarshall/devlog-backend/internal/service/dashboard"
)

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	statsLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statsValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

const (
	barFilled = "█"
	barEmpty  = "░"
	barWidth  = 24
)

type statsOptions struct {
	phase    string
	category string
	logType  string
	json     bool
}

func newStatsCmd() *cobra.Command {
	var opts statsOptions

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Print dashboard counts",
		GroupID: "data",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := opts.selection()
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			stores, err := app.OpenStores(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer stores.Close()

			ov, err := app.NewServices(stores, cfg, logger).Dashboard.Overview(cmd.Context(), sel)
			if err != nil {
				return err
			}
			if opts.json {
				return writeStatsJSON(cmd.OutOrStdout(), ov)
			}
			renderStats(cmd.OutOrStdout(), ov)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.phase, "phase", "", "filter by phase")
	cmd.Flags().StringVar(&opts.category, "category", "", "filter by domain category (Optics, Mech, HW/Board, SW, Common)")
	cmd.Flags().StringVar(&opts.logType, "log-type", "", "filter by log type")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	return cmd
}

func (o statsOptions) selection() (dashboard.Selection, error) {
	var sel dashboard.Selection
	if o.phase != "" {
		sel.Phase = domain.Phase(o.phase)
		if !sel.Phase.IsValid() {
			return sel, fmt.Errorf("unknown phase %q", o.phase)
		}
	}
	if o.category != "" {
		c, ok := domain.ParseCategoryFilter(o.category)
		if !ok {
			return sel, fmt.Errorf("unknown category %q", o.category)
		}
		sel.Category = c
	}
	if o.logType != "" {
		sel.LogType = domain.LogType(o.logType)
		if !sel.LogType.IsValid() {
			return sel, fmt.Errorf("unknown log type %q", o.logType)
		}
	}
	return sel, nil
}

type statsJSON struct {
	Total      int            `json:"total"`
	ByPhase    map[string]int `json:"by_phase"`
	ByCategory map[string]int `json:"by_category"`
	ByLogType  map[string]int `json:"by_log_type"`
	Schedule   scheduleJSON   `json:"schedule"`
}

type scheduleJSON struct {
	Total           int    `json:"total"`
	InProgress      int    `json:"in_progress"`
	Delayed         int    `json:"delayed"`
	Completed       int    `json:"completed"`
	NearestDeadline string `json:"nearest_deadline,omitempty"`
}

func writeStatsJSON(w io.Writer, ov *dashboard.Overview) error {
	out := statsJSON{
		Total:      ov.Stats.Total,
		ByPhase:    make(map[string]int, len(ov.Stats.ByPhase)),
		ByCategory: make(map[string]int, len(ov.Stats.ByCategory)),
		ByLogType:  make(map[string]int, len(ov.Stats.ByLogType)),
		Schedule: scheduleJSON{
			Total:      ov.Schedule.Total,
			InProgress: ov.Schedule.InProgress,
			Delayed:    ov.Schedule.Delayed,
			Completed:  ov.Schedule.Completed,
		},
	}
	for k, v := range ov.Stats.ByPhase {
		out.ByPhase[string(k)] = v
	}
	for k, v := range ov.Stats.ByCategory {
		out.ByCategory[string(k)] = v
	}
	for k, v := range ov.Stats.ByLogType {
		out.ByLogType[string(k)] = v
	}
	if n := ov.Schedule.Nearest; n != nil {
		out.Schedule.NearestDeadline = fmt.Sprintf("%s %s", dashboard.DDayLabel(n.DDay), n.Item.Title)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderStats(w io.Writer, ov *dashboard.Overview) {
	st := ov.Stats

	fmt.Fprintln(w, statsHeaderStyle.Render("DEV LOG"))
	if !ov.Selection.IsAll() {
		fmt.Fprintf(w, "%s %s\n", statsLabelStyle.Render("Filter:"), selectionLabel(ov.Selection))
	}
	fmt.Fprintf(w, "%s %s\n", statsLabelStyle.Render("Entries:"), statsValueStyle.Render(fmt.Sprint(st.Total)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, statsHeaderStyle.Render("BY LOG TYPE"))
	for _, t := range domain.LogTypes() {
		fmt.Fprintln(w, barRow(string(t), st.ByLogType[t], st.Total))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, statsHeaderStyle.Render("BY PHASE"))
	for _, p := range domain.Phases() {
		fmt.Fprintln(w, barRow(string(p), st.ByPhase[p], st.Total))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, statsHeaderStyle.Render("BY CATEGORY"))
	for _, c := range domain.Categories() {
		fmt.Fprintln(w, barRow(string(c), st.ByCategory[c], st.Total))
	}
	fmt.Fprintln(w)

	sc := ov.Schedule
	fmt.Fprintln(w, statsHeaderStyle.Render("SCHEDULE"))
	fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d\n",
		statsLabelStyle.Render("total"), sc.Total,
		statsLabelStyle.Render("in progress"), sc.InProgress,
		statsLabelStyle.Render("delayed"), sc.Delayed,
		statsLabelStyle.Render("completed"), sc.Completed)
	if n := sc.Nearest; n != nil {
		fmt.Fprintf(w, "%s %s %s (%s)\n",
			statsLabelStyle.Render("nearest deadline:"),
			statsValueStyle.Render(dashboard.DDayLabel(n.DDay)),
			n.Item.Title,
			domain.FormatDate(n.Item.DueDate))
	}
}

func barRow(label string, n, total int) string {
	filled := 0
	if total > 0 {
		filled = n * barWidth / total
	}
	bar := strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barWidth-filled)
	return fmt.Sprintf("  %-12s %s %s", label, statsValueStyle.Render(bar), fmt.Sprint(n))
}

func selectionLabel(sel dashboard.Selection) string {
	var parts []string
	if sel.Phase != "" {
		parts = append(parts, "phase="+string(sel.Phase))
	}
	if sel.Category != "" {
		parts = append(parts, "category="+string(sel.Category))
	}
	if sel.LogType != "" {
		parts = append(parts, "log_type="+string(sel.LogType))
	}
	return strings.Join(parts, " ")
}
