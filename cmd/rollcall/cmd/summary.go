package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meetingworks/rollcall/internal/report"
	"github.com/meetingworks/rollcall/internal/sources"
	"github.com/meetingworks/rollcall/pkg/constants"
	"github.com/meetingworks/rollcall/pkg/logging"
	"github.com/meetingworks/rollcall/pkg/summary"
)

var summaryFlags struct {
	input  string
	output string
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate the XLSX summary workbook",
	Long: `Read an annotated attendance CSV (produced by "rollcall sheet")
and generate a multi-sheet XLSX summary: headline metrics including the
quorum proxy, the delegate roster sorted for roll call, and the unmatched
and unregistered lists.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.input, "input",
		constants.DefaultAttendanceFile, "Path to the annotated attendance CSV file")
	summaryCmd.Flags().StringVar(&summaryFlags.output, "output",
		constants.DefaultSummaryFile, "Path for the output XLSX summary file")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	log := logging.Default()

	records, err := sources.LoadAttendance(summaryFlags.input)
	if err != nil {
		log.Error().Err(err).Str("file", summaryFlags.input).
			Msg("Failed to load attendance sheet; run 'rollcall sheet' first")
		return err
	}

	s := summary.Summarize(records)
	if err := report.WriteSummary(summaryFlags.output, s); err != nil {
		log.Error().Err(err).Str("file", summaryFlags.output).Msg("Failed to write summary workbook")
		return err
	}

	r := s.Report()
	log.Info().
		Int("total_attendees", r.TotalAttendees).
		Int("groups_with_delegate", r.GroupsWithDelegate).
		Int("unmatched", r.UnmatchedCount).
		Int("unregistered", r.UnregisteredCount).
		Str("output", summaryFlags.output).
		Msg("Summary workbook written")
	return nil
}
