package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plantbuilder-server/internal/client"
)

var rootCmd = &cobra.Command{
	Use:   "plantctl",
	Short: "Plant builder command line client",
	Long:  `plantctl talks to the plant builder server: register players, run timed build sessions, submit scores, and inspect the leaderboard. Submissions that fail while the server is unreachable are queued locally and replayed with "plantctl flush".`,
}

var (
	serverAddr string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://127.0.0.1:8080", "Plant builder server address")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(catalogCmd)
}

func newAPI() *client.API {
	return client.NewAPI(serverAddr)
}

// queuePath returns the durable fallback queue location under the user's
// home directory.
func queuePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".plantbuilder", "queue.db"), nil
}

func openQueue() (*client.Queue, error) {
	path, err := queuePath()
	if err != nil {
		return nil, err
	}
	return client.OpenQueue(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
