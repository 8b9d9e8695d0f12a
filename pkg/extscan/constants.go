package extscan

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Run completed (including zero matches and user quit)
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags, bad extension)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitDirectoryError   = 10 // Root directory not found or unreadable
	ExitConfigError      = 11 // Invalid configuration file or environment
	ExitNothingProcessed = 12 // Every requested action failed
)

const (
	// DefaultDisplayLimit is the number of content bytes printed per file
	// before the output is truncated.
	DefaultDisplayLimit = 10000

	// BinarySniffLength is how many leading bytes are inspected for NUL
	// bytes when deciding whether content is text.
	BinarySniffLength = 8000

	// NoExtensionLabel is the rendered name of the bucket holding files
	// without an extension.
	NoExtensionLabel = "(no extension)"

	// ConfigFileName is the configuration file looked up in the working directory.
	ConfigFileName = ".extscan.yaml"

	// MaxPromptAttempts bounds how often an unrecognized answer is re-prompted
	// before it is treated as "no".
	MaxPromptAttempts = 3
)
