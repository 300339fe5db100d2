// Package logging provides a simple leveled logging interface for the
// filesystem indexer.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information, including every skipped entry
//   - INFO: General operational messages
//   - WARN: Warning conditions such as unreadable directories
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable, or
// forced to debug with DEBUG=true.
//
// Components that need a logging collaborator (the walker, the explorer)
// accept a Logger. Default returns the package-level logger, Discard drops
// everything.
package logging
