package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meetingworks/rollcall/internal/report"
	"github.com/meetingworks/rollcall/internal/zoom"
	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/logging"
)

var fetchOverwrite bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <meeting-id> <output-file>",
	Short: "Fetch live meeting participants from Zoom",
	Long: `Fetch the participant list of a live Zoom meeting using
server-to-server OAuth and write it to a CSV file.

Required environment variables (also read from .env):
  ZOOM_CLIENT_ID     Zoom OAuth app client ID
  ZOOM_CLIENT_SECRET Zoom OAuth app client secret
  ZOOM_ACCOUNT_ID    Zoom account ID`,
	Args: cobra.ExactArgs(2),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchOverwrite, "overwrite", false,
		"Allow overwriting the output file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	meetingID, outputFile := args[0], args[1]
	log := logging.Default()

	if _, err := os.Stat(outputFile); err == nil && !fetchOverwrite {
		err := errors.NewIOError("create", outputFile, errors.ErrAlreadyExists)
		log.Error().Err(err).Msg("Output file exists; use --overwrite to replace it")
		return err
	}

	creds := zoom.Credentials{
		ClientID:     viper.GetString("ZOOM_CLIENT_ID"),
		ClientSecret: viper.GetString("ZOOM_CLIENT_SECRET"),
		AccountID:    viper.GetString("ZOOM_ACCOUNT_ID"),
	}
	if err := creds.Validate(); err != nil {
		log.Error().Err(err).Msg("Missing Zoom credentials")
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), log)
	client := zoom.New(creds)

	participants, err := client.Participants(ctx, meetingID)
	if err != nil {
		if errors.IsRateLimited(err) {
			log.Error().Err(err).Msg("Rate limit exceeded; retry later")
		} else {
			log.Error().Err(err).Msg("Failed to fetch participants")
		}
		return err
	}

	if err := report.WriteParticipants(outputFile, participants); err != nil {
		log.Error().Err(err).Msg("Failed to write participant list")
		return err
	}

	log.Info().
		Str("meeting_id", meetingID).
		Int("participants", len(participants)).
		Str("output", outputFile).
		Msg("Participants written")
	return nil
}
