// Package app runs the filetools commands. Each Execute function loads its
// input, runs the transform from pkg/filetools, writes the result and
// reports progress through console notices and the structured log.
// Errors are returned to the caller; Report turns them into a notice.
package app
