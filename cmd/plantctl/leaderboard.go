package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top best scores",
	RunE:  runLeaderboard,
}

var leaderboardLimit int

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 0, "Number of entries (0 uses the server default)")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	standings, err := newAPI().Leaderboard(cmd.Context(), leaderboardLimit)
	if err != nil {
		return err
	}

	if len(standings) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tBEST")
	for i, standing := range standings {
		name := standing.DisplayName
		if name == "" {
			name = standing.Phone
		}
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, name, standing.BestScore)
	}
	return w.Flush()
}
