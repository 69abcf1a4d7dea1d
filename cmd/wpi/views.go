package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
)

var leaderboardLimit int

var predictCmd = &cobra.Command{
	Use:   "predict field=value [field=value...]",
	Short: "Estimate an auction value for one stat line",
	Long: `Estimate an auction value from raw stats given as field=value pairs, e.g.

  wpi predict matches_played=10 kills=30 damage=3000 walk_distance=15000

Unknown fields are ignored and unparsable values count as 0.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPredict,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print players ranked by WPI",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player>",
	Short: "Print a head-to-head comparison",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Print a player profile with coaching tips",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 25, "rows to print (0 for all)")
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// parseValues turns field=value arguments into a raw record
func parseValues(args []string) (map[string]float64, error) {
	values := make(map[string]float64, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		values[k] = logic.ParseNumber(v)
	}
	return values, nil
}

func runPredict(cmd *cobra.Command, args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}

	res, err := logic.Estimate(loadPrediction(), values)
	if err != nil {
		logger.Sugar().Warnw("Model prediction failed, using synthetic value", "error", err)
	}
	fmt.Fprintf(os.Stdout, "%.2f (%s)\n", res.Prediction, res.Source)
	return nil
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	svc, st, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := svc.GetLeaderboard(cmd.Context())
	if err != nil {
		return err
	}
	if leaderboardLimit > 0 && len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}

	table := newTable(os.Stdout)
	table.Header("RANK", "PLAYER", "WPI", "KILLS", "DAMAGE", "MATCHES")
	for _, e := range entries {
		table.Append(e.Rank, e.Name, fmt.Sprintf("%.2f", e.WPI), e.Kills, e.Damage, e.Matches)
	}
	table.Render()
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	svc, st, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	cmp, err := svc.Compare(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	writeComparison(os.Stdout, cmp)
	return nil
}

func writeComparison(w io.Writer, cmp *models.Comparison) {
	table := newTable(w)
	table.Header("STAT", cmp.P1, cmp.P2)
	for _, s := range cmp.Stats {
		table.Append(s.Name, fmt.Sprintf("%.2f", s.Player1), fmt.Sprintf("%.2f", s.Player2))
	}
	table.Render()
}

func runPlayer(cmd *cobra.Command, args []string) error {
	svc, st, err := openService(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := svc.GetProfile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	writeProfile(os.Stdout, profile)
	return nil
}

func writeProfile(w io.Writer, p *models.PlayerProfile) {
	source := logic.SourceSynthetic
	if p.Prediction != nil {
		source = logic.SourceModel
	}
	fmt.Fprintf(w, "%s  WPI %.2f  auction value %.2f (%s)\n\n",
		p.Player.PlayerName, p.Player.WPI, p.AuctionValue, source)

	table := newTable(w)
	table.Header("STAT", "VALUE")
	for _, series := range []models.ChartSeries{p.BarChart, p.RadarChart} {
		for i, label := range series.Labels {
			table.Append(label, fmt.Sprintf("%.2f", series.Values[i]))
		}
	}
	table.Render()

	fmt.Fprintln(w, "\nTips:")
	for _, tip := range p.Tips {
		fmt.Fprintf(w, "  - %s\n", tip)
	}
}
