package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, write failure)
	ExitConfigError = 2 // Configuration error (bad catalog file)
	ExitDataError   = 3 // Data error (missing or malformed input CSV)
)
