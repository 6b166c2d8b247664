package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meetingworks/rollcall/internal/report"
	"github.com/meetingworks/rollcall/internal/sources"
	"github.com/meetingworks/rollcall/pkg/constants"
	"github.com/meetingworks/rollcall/pkg/logging"
	"github.com/meetingworks/rollcall/pkg/reconcile"
)

var sheetFlags struct {
	participants           string
	registrants            string
	delegates              string
	groups                 string
	output                 string
	delegatesNotRegistered bool
}

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Generate the annotated attendance sheet",
	Long: `Reconcile the meeting participant list against registrant and
delegate records and write an annotated attendance CSV. Each row carries
the participant's local group, registration status, delegate status, and
the matching rules that fired.`,
	RunE: runSheet,
}

func init() {
	sheetCmd.Flags().StringVar(&sheetFlags.participants, "participants",
		constants.DefaultParticipantsFile, "Path to the Zoom participants CSV file")
	sheetCmd.Flags().StringVar(&sheetFlags.registrants, "registrants",
		constants.DefaultRegistrantsFile, "Path to the registrants XLSX file")
	sheetCmd.Flags().StringVar(&sheetFlags.delegates, "delegates",
		constants.DefaultDelegatesFile, "Path to the delegates XLSX file")
	sheetCmd.Flags().StringVar(&sheetFlags.groups, "groups",
		constants.DefaultGroupsFile, "Path to the local groups list (TXT or YAML)")
	sheetCmd.Flags().StringVar(&sheetFlags.output, "output",
		constants.DefaultAttendanceFile, "Path for the output CSV file")
	sheetCmd.Flags().BoolVar(&sheetFlags.delegatesNotRegistered, "delegates-not-registered",
		false, "Allow delegate name-matching for unregistered participants")
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(cmd *cobra.Command, _ []string) error {
	log := logging.Default()
	ctx := logging.WithLogger(cmd.Context(), log)

	participants, err := sources.LoadParticipants(sheetFlags.participants)
	if err != nil {
		log.Error().Err(err).Str("file", sheetFlags.participants).Msg("Failed to load participants")
		return err
	}
	registrants, err := sources.LoadRegistrants(sheetFlags.registrants)
	if err != nil {
		log.Error().Err(err).Str("file", sheetFlags.registrants).Msg("Failed to load registrants")
		return err
	}
	delegates, err := sources.LoadDelegates(sheetFlags.delegates)
	if err != nil {
		log.Error().Err(err).Str("file", sheetFlags.delegates).Msg("Failed to load delegates")
		return err
	}
	groups, err := sources.LoadGroups(sheetFlags.groups)
	if err != nil {
		log.Error().Err(err).Str("file", sheetFlags.groups).Msg("Failed to load groups")
		return err
	}

	records := reconcile.Reconcile(ctx, participants, registrants, delegates, groups,
		reconcile.Config{DelegatesNotRegistered: sheetFlags.delegatesNotRegistered})

	if err := report.WriteAttendance(sheetFlags.output, records); err != nil {
		log.Error().Err(err).Str("file", sheetFlags.output).Msg("Failed to write attendance sheet")
		return err
	}

	log.Info().
		Int("attendees", len(records)).
		Str("output", sheetFlags.output).
		Msg("Attendance sheet written")
	return nil
}
