package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [phone]",
	Short: "Register a player by phone number",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

var scoreCmd = &cobra.Command{
	Use:   "score [phone]",
	Short: "Show a player's score record",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var displayName string

func init() {
	registerCmd.Flags().StringVar(&displayName, "name", "", "Display name shown on the leaderboard")
}

func runRegister(cmd *cobra.Command, args []string) error {
	created, err := newAPI().Register(cmd.Context(), args[0], displayName)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s as %q\n", created.Phone, created.DisplayName)
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	p, err := newAPI().Score(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Player:   %s (%s)\n", p.DisplayName, p.Phone)
	fmt.Printf("Best:     %d\n", p.BestScore)
	fmt.Printf("Last:     %d", p.LastScore)
	if p.LastSector != "" {
		fmt.Printf(" (%s)", p.LastSector)
	}
	fmt.Println()
	fmt.Printf("Attempts: %d\n", p.AttemptCount)
	return nil
}
