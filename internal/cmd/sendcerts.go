package cmd

import (
	"fmt"

	"github.com/hackboard/hackboard/internal/models"
	"github.com/hackboard/hackboard/internal/services/dispatch"
	"github.com/spf13/cobra"
)

var sendCertsCmd = &cobra.Command{
	Use:   "send-certificates",
	Short: "Render and email certificates to all team members",
	Long: `Rank a hackathon's teams by total score, render a certificate for
every team member (winner variant for the top three teams), and email
the certificates in paced batches. Per-recipient failures are reported
at the end without aborting the run.

Examples:
  hackboard send-certificates --hackathon hack-2025 \
    --title "Spring Hackathon 2025" --date "June 14, 2025"`,
	RunE: runSendCerts,
}

var (
	sendCertsHackathonID string
	sendCertsTitle       string
	sendCertsDate        string
)

func init() {
	rootCmd.AddCommand(sendCertsCmd)

	sendCertsCmd.Flags().StringVar(&sendCertsHackathonID, "hackathon", "", "Hackathon ID (required)")
	sendCertsCmd.Flags().StringVar(&sendCertsTitle, "title", "", "Hackathon display title drawn on certificates (required)")
	sendCertsCmd.Flags().StringVar(&sendCertsDate, "date", "", "Event date text drawn on certificates")
	_ = sendCertsCmd.MarkFlagRequired("hackathon")
	_ = sendCertsCmd.MarkFlagRequired("title")
}

func runSendCerts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	output, err := a.dispatch.SendCertificates(ctx, &dispatch.SendCertificatesInput{
		HackathonID:    sendCertsHackathonID,
		HackathonTitle: sendCertsTitle,
		EventDate:      sendCertsDate,
	})
	if err != nil {
		return err
	}

	if len(output.Results) == 0 {
		fmt.Println("No teams found; nothing to send.")
		return nil
	}

	fmt.Printf("Dispatched %d certificate(s): %d succeeded, %d failed.\n",
		len(output.Results), output.Succeeded, output.Failed)

	for _, r := range output.Results {
		if r.Status == models.DispatchStatusFailed {
			fmt.Printf("  FAILED  %s <%s> (%s, rank %d): %s\n",
				r.Name, r.Email, r.TeamName, r.Rank, r.Error)
		}
	}
	return nil
}
