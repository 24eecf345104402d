package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
)

func newListCmd(newClient func() *api.Client, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all feedback, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().List(cmd.Context())
			if err != nil {
				return err
			}
			if *jsonOutput {
				return writeJSON(cmd, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No feedback available yet.")
				return nil
			}
			for _, fb := range list {
				writeFeedback(cmd, fb)
			}
			return nil
		},
	}
}
