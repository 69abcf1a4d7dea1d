// Command seeder writes a synthetic raw stats export for local development.
// Headers use the raw export spellings so the file exercises the column map
// the same way a real export does.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	rows   int
	seed   int64
	output string
)

// Header of a raw export. "Distance_Traveled" and "Time_Survived" are the
// older spellings still present in historical files.
var header = []string{
	"Player_Name", "Matches_Played", "Kills", "Deaths", "Assists",
	"Damage_Dealt", "Headshots", "Wins", "Top_10s", "Revives",
	"Distance_Traveled", "Weapons_Used", "Time_Survived", "Rank",
}

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Write a synthetic raw player stats CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := io.Writer(os.Stdout)
		if output != "-" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := write(w, rand.New(rand.NewSource(seed)), rows); err != nil {
			return err
		}
		if output != "-" {
			fmt.Fprintf(os.Stderr, "Wrote %d players to %s\n", rows, output)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().IntVar(&rows, "rows", 500, "number of players")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	rootCmd.Flags().StringVarP(&output, "output", "o", "data/raw/players_raw.csv", "output file, - for stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(w io.Writer, rng *rand.Rand, n int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(player(rng, i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// player draws one plausible stat line. Skill scales the per-match rates,
// and about one in fifty players is an outlier the ingest clip should catch.
func player(rng *rand.Rand, i int) []string {
	matches := 1 + rng.Intn(300)
	skill := math.Exp(rng.NormFloat64() * 0.5)
	if rng.Intn(50) == 0 {
		skill *= 20
	}
	m := float64(matches)

	kills := m * 1.2 * skill * (0.5 + rng.Float64())
	deaths := m * (0.7 + 0.3*rng.Float64())
	assists := m * 0.6 * (0.5 + rng.Float64())
	damage := kills*110 + assists*40 + m*rng.Float64()*150
	headshots := kills * (0.1 + 0.3*rng.Float64())
	wins := m * 0.05 * skill * rng.Float64()
	top10s := math.Min(m, wins+m*0.3*rng.Float64())
	revives := m * 0.4 * rng.Float64()
	distance := m * (1500 + 2500*rng.Float64())
	survival := m * (600 + 900*rng.Float64())

	return []string{
		fmt.Sprintf("player_%04d", i),
		strconv.Itoa(matches),
		whole(kills),
		whole(deaths),
		whole(assists),
		fmt.Sprintf("%.1f", damage),
		whole(headshots),
		whole(wins),
		whole(top10s),
		whole(revives),
		fmt.Sprintf("%.1f", distance),
		strconv.Itoa(1 + rng.Intn(12)),
		fmt.Sprintf("%.0f", survival),
		strconv.Itoa(1 + rng.Intn(100)),
	}
}

func whole(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
}
