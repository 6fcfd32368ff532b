package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [sector]",
	Short: "List sectors, or show one sector's canonical sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	api := newAPI()

	if len(args) == 0 {
		sectors, err := api.Sectors(cmd.Context())
		if err != nil {
			return err
		}
		for _, sector := range sectors {
			fmt.Println(sector)
		}
		return nil
	}

	payload, err := api.Sector(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Sector: %v\n", payload["sector"])
	if sequence, ok := payload["sequence"].([]interface{}); ok {
		steps := make([]string, 0, len(sequence))
		for _, step := range sequence {
			steps = append(steps, fmt.Sprint(step))
		}
		fmt.Printf("Sequence: %s\n", strings.Join(steps, " -> "))
	}
	fmt.Printf("Slots: %v, expected connections: %v\n",
		payload["slot_count"], payload["expected_connections"])
	return nil
}
