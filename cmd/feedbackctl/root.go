package main

import (
	"os"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
)

const serverEnvKey = "FEEDBACK_SERVER"

func newRootCmd() *cobra.Command {
	var (
		serverURL  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "feedbackctl",
		Short: "Command-line client for the ClassPulse feedback service",
	}

	defaultServer := os.Getenv(serverEnvKey)
	if defaultServer == "" {
		defaultServer = "http://localhost:5000"
	}
	cmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "feedback server base URL")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")

	newClient := func() *api.Client {
		return api.NewClient(serverURL)
	}

	cmd.AddCommand(
		newListCmd(newClient, &jsonOutput),
		newSubmitCmd(newClient),
		newDeleteCmd(newClient),
		newReadCmd(newClient),
		newOCRCmd(newClient, &jsonOutput),
	)

	return cmd
}
