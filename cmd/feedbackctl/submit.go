package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
)

func newSubmitCmd(newClient func() *api.Client) *cobra.Command {
	var (
		name      string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "submit <feedback text>",
		Short: "Submit feedback, optionally with an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				image     []byte
				imageName string
			)
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				image = data
				imageName = filepath.Base(imagePath)
			}

			resp, err := newClient().Submit(cmd.Context(), name, args[0], imageName, image)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "submitter name")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to an image to attach")
	return cmd
}
