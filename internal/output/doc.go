// Package output provides structured output handling for the inkwell CLI.
//
// Every command reports through a Printer, which switches between
// human-readable and JSON output based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Println("Building hello.md...")
//	printer.Warn("%s missing 'title' in frontmatter", name)
//	printer.Error(err)
//
// In human mode warnings and errors go to the writer set with WithStderr.
// In JSON mode they are written to the main writer as {"warning": "..."} and
// {"error": "...", "code": N} objects.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: build completed (posts may have been skipped)
//	output.ExitUserError   // 1: bad flags, missing blog or templates directory
//	output.ExitSystemError // 2: index write failure, other I/O errors
//	output.ExitConflict    // 3: refusing to overwrite an existing file
//
// Errors built with NewUserError, NewSystemError and NewConflictError carry
// their code; GetExitCode maps any error to a process exit status.
package output
