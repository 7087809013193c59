// Package logger wraps a process-wide zap logger with an atomic level and
// context-taking helpers. A logger stored in a context with ToContext takes
// precedence over the global one.
package logger
