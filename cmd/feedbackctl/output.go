package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"classpulse-backend/internal/api"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFeedback(cmd *cobra.Command, fb api.FeedbackResponse) {
	out := cmd.OutOrStdout()

	ts := "-"
	if fb.Timestamp != nil {
		ts = *fb.Timestamp
	}
	who := fb.Name
	if who == "" {
		who = "Anonymous"
	}

	fmt.Fprintf(out, "%s  %s  %s\n", fb.ID, ts, who)
	fmt.Fprintf(out, "    %s\n", fb.Feedback)
	if fb.ImageURL != nil {
		fmt.Fprintf(out, "    image: %s\n", *fb.ImageURL)
	}
	if fb.ExtractedText != "" {
		fmt.Fprintf(out, "    extracted: %s\n", fb.ExtractedText)
	}
}
