// Package actions applies the per-file actions of a search run: listing,
// displaying content and moving files to the trash.
//
// Runner.Run walks the already sorted entries once. For each file it displays
// content (when requested), then asks for confirmation and trashes it (when
// requested). A declined or failed file affects only that file; only a Quit
// decision or context cancellation ends the run early, and every file not yet
// reached is left untouched.
package actions
