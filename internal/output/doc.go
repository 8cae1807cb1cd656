// Package output provides structured output handling for the issuepage CLI.
//
// The Printer is the single path for anything a human or a script reads on
// stdout/stderr. It switches between styled text and JSON based on the
// --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
//
//	printer.Field("Exported to", path)
//	printer.Success(map[string]any{"output": path, "total": 42})
//	printer.Error(err)
//
// In JSON mode, errors are written as {"error": "message", "code": N}.
//
// # Preview
//
// Printer.Markdown renders a Markdown document with glamour. TTY output uses
// an auto-detected style; piped output uses the plain notty style.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Missing issues file, malformed record, bad config
//	output.ExitSystemError // 2: I/O error, git failure
//
// Use NewUserError / NewSystemError (and their WithCause variants) so the
// process exit code and the JSON error code agree.
package output
