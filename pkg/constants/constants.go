// Package constants provides shared constants used throughout the rollcall
// codebase: timeouts, file permissions, API limits, and the default file
// names the CLI falls back to.
package constants

import "time"

// Timeout constants define timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// meeting-platform API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like credentials (rw-------)
	SecureFilePermissions = 0600
)

// Zoom API constants
const (
	// ZoomPageSize is the participant page size requested from the metrics API
	ZoomPageSize = 150
)

// Default file names for the CLI, matching the historical tool the office
// staff already use.
const (
	DefaultParticipantsFile = "MeetingParticipants.csv"
	DefaultRegistrantsFile  = "CiviCRM_Participant_Search.xlsx"
	DefaultDelegatesFile    = "delegates.xlsx"
	DefaultGroupsFile       = "GNSW Local Groups.txt"
	DefaultAttendanceFile   = "MeetingAttendance.csv"
	DefaultSummaryFile      = "MeetingSummary.xlsx"
)
