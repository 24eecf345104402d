package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
	"classpulse-backend/internal/speech"
)

func newReadCmd(newClient func() *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Read a feedback record aloud",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			list, err := newClient().List(cmd.Context())
			if err != nil {
				return err
			}

			var text string
			for _, fb := range list {
				if fb.ID == id {
					parts := []string{fb.Feedback}
					if fb.ExtractedText != "" {
						parts = append(parts, fb.ExtractedText)
					}
					text = strings.Join(parts, ". ")
					break
				}
			}
			if text == "" {
				return fmt.Errorf("feedback %s not found", id)
			}

			engine, err := speech.NewExecEngine()
			if err != nil {
				return err
			}
			controller := speech.NewController(engine)

			done, err := controller.Speak(id, text)
			if err != nil {
				return err
			}

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			defer signal.Stop(interrupt)

			select {
			case <-done:
			case <-interrupt:
				controller.Stop()
			case <-cmd.Context().Done():
				controller.Stop()
			}
			return nil
		},
	}
}
