package cmd

import (
	"fmt"

	"github.com/hackboard/hackboard/internal/services/formation"
	"github.com/spf13/cobra"
)

var deleteTeamsCmd = &cobra.Command{
	Use:   "delete-teams",
	Short: "Delete a hackathon's teams",
	Long: `Delete every team of a hackathon and release its members back to
the unassigned pool, so teams can be re-formed.`,
	RunE: runDeleteTeams,
}

var deleteTeamsHackathonID string

func init() {
	rootCmd.AddCommand(deleteTeamsCmd)

	deleteTeamsCmd.Flags().StringVar(&deleteTeamsHackathonID, "hackathon", "", "Hackathon ID (required)")
	_ = deleteTeamsCmd.MarkFlagRequired("hackathon")
}

func runDeleteTeams(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	output, err := a.formation.DeleteAllTeams(ctx, &formation.DeleteAllTeamsInput{
		HackathonID: deleteTeamsHackathonID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d team(s), released %d participant(s).\n",
		output.TeamsDeleted, output.ParticipantsUnassigned)
	return nil
}
