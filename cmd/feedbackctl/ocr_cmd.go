package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
)

func newOCRCmd(newClient func() *api.Client, jsonOutput *bool) *cobra.Command {
	var feedback string

	cmd := &cobra.Command{
		Use:   "ocr <image file>",
		Short: "Extract text from an image via the OCR endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			resp, err := newClient().ExtractText(cmd.Context(), filepath.Base(args[0]), data, feedback)
			if err != nil {
				return err
			}
			if *jsonOutput {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.ExtractedText)
			return nil
		},
	}

	cmd.Flags().StringVar(&feedback, "feedback", "", "feedback text to send along with the image")
	return cmd
}
