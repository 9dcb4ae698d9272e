package cmd

import (
	"fmt"

	"github.com/hackboard/hackboard/internal/services/formation"
	"github.com/spf13/cobra"
)

var formTeamsCmd = &cobra.Command{
	Use:   "form-teams",
	Short: "Form teams from approved participants",
	Long: `Form role-balanced teams from a hackathon's approved, unassigned
participants and email each member their assignment.

Examples:
  # Form teams of the configured size
  hackboard form-teams --hackathon hack-2025 --title "Spring Hackathon 2025"`,
	RunE: runFormTeams,
}

var (
	formTeamsHackathonID string
	formTeamsTitle       string
)

func init() {
	rootCmd.AddCommand(formTeamsCmd)

	formTeamsCmd.Flags().StringVar(&formTeamsHackathonID, "hackathon", "", "Hackathon ID (required)")
	formTeamsCmd.Flags().StringVar(&formTeamsTitle, "title", "", "Hackathon display title used in notifications")
	_ = formTeamsCmd.MarkFlagRequired("hackathon")
}

func runFormTeams(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	output, err := a.formation.FormTeams(ctx, &formation.FormTeamsInput{
		HackathonID:    formTeamsHackathonID,
		HackathonTitle: formTeamsTitle,
	})
	if err != nil {
		return err
	}

	if output.TeamsCreated == 0 {
		fmt.Println("No eligible participants; no teams formed.")
		return nil
	}

	fmt.Printf("Formed %d team(s), sent %d assignment notification(s).\n",
		output.TeamsCreated, output.NotificationsSent)
	return nil
}
