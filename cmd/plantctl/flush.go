package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"plantbuilder-server/internal/client"
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Replay locally queued submissions",
	RunE:  runFlush,
}

func runFlush(cmd *cobra.Command, args []string) error {
	queue, err := openQueue()
	if err != nil {
		return err
	}
	defer queue.Close()

	pending, err := queue.Len(cmd.Context())
	if err != nil {
		return err
	}
	if pending == 0 {
		fmt.Println("Nothing queued.")
		return nil
	}

	submitter := client.NewSubmitter(newAPI(), queue, slog.Default())
	flushed, err := submitter.Flush(cmd.Context())
	if err != nil {
		return err
	}

	remaining, _ := queue.Len(cmd.Context())
	fmt.Printf("Replayed %d of %d queued submissions", flushed, pending)
	if remaining > 0 {
		fmt.Printf("; %d still queued (server unreachable)", remaining)
	}
	fmt.Println()
	return nil
}
