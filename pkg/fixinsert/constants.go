package fixinsert

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Analysis completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error, or no input files
	ExitUsageError      = 2  // CLI usage error (unknown flags, invalid flag values)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid fixinsert.yaml or flag combination
	ExitConnectionError = 11 // Failed to connect to database (check command)
	ExitInputError      = 12 // Input file missing or unreadable
	ExitMismatch        = 13 // A statement had more values than fields
	ExitColumnOverflow  = 14 // check found columns narrower than observed values
)

const (
	// DefaultValueWidth is the minimum width the maximum length is right-aligned to.
	DefaultValueWidth = 5

	// MaxLineSize is the largest input line accepted by the analyzer.
	// Dumps written with extended inserts easily exceed bufio's 64 KiB default.
	MaxLineSize = 16 * 1024 * 1024

	// DefaultSchema is the schema queried by the check command when none is given.
	DefaultSchema = "public"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "fixinsert.yaml"
)

// DefaultExtensions are the file extensions picked up when a directory is given.
var DefaultExtensions = []string{".sql", ".txt"}
