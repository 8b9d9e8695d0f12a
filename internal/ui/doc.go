// Package ui provides the line-based confirmation prompts used when no
// interactive terminal is available, plus a scripted confirmer for tests and
// unattended runs.
package ui
