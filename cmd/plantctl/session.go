package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"plantbuilder-server/internal/client"
	"plantbuilder-server/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage build sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start [phone]",
	Short: "Start a timed build session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionStart,
}

var sessionSubmitCmd = &cobra.Command{
	Use:   "submit [phone]",
	Short: "Submit a finished round",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionSubmit,
}

var (
	submitSector    string
	submitScore     int
	submitRemaining int
)

func init() {
	sessionCmd.AddCommand(sessionStartCmd, sessionSubmitCmd)

	sessionSubmitCmd.Flags().StringVar(&submitSector, "sector", "", "Sector the round was built in")
	sessionSubmitCmd.Flags().IntVar(&submitScore, "score", 0, "Client-computed score (required)")
	sessionSubmitCmd.Flags().IntVar(&submitRemaining, "remaining", 0, "Seconds left on the countdown at submission")
	sessionSubmitCmd.MarkFlagRequired("score")
}

func runSessionStart(cmd *cobra.Command, args []string) error {
	resp, err := newAPI().StartSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Session started at %s\n", resp.StartedAt)
	return nil
}

func runSessionSubmit(cmd *cobra.Command, args []string) error {
	queue, err := openQueue()
	if err != nil {
		return err
	}
	defer queue.Close()

	submitter := client.NewSubmitter(newAPI(), queue, slog.Default())

	req := session.SubmitRequest{
		Phone:         args[0],
		Sector:        submitSector,
		Score:         &submitScore,
		TimeRemaining: &submitRemaining,
	}

	outcome, err := submitter.Submit(cmd.Context(), req)
	if err != nil {
		return err
	}

	if outcome.Queued {
		fmt.Printf("Server unreachable; submission queued locally (%s). Run \"plantctl flush\" once the server is back.\n", outcome.QueueID)
		return nil
	}

	printSubmitResponse(outcome.Response)
	return nil
}

func printSubmitResponse(resp *session.SubmitResponse) {
	fmt.Printf("Accepted score: %d", resp.AcceptedScore)
	if resp.AcceptedScore != resp.ClaimedScore {
		fmt.Printf(" (claimed %d)", resp.ClaimedScore)
	}
	fmt.Println()
	if resp.Warning != "" {
		fmt.Printf("Warning:        %s\n", resp.Warning)
	}
	fmt.Printf("Best score:     %d\n", resp.BestScore)
	fmt.Printf("Attempts:       %d\n", resp.AttemptCount)
	fmt.Println(resp.Message)
}
