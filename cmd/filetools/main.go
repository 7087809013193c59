// Package main provides the CLI entry point for filetools.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ukaji3/filetools-go/internal/app"
	"github.com/ukaji3/filetools-go/internal/logger"
	"github.com/ukaji3/filetools-go/internal/notify"
)

func main() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()

	_ = logger.Logger().Sync()

	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		app.Report(ctx, notify.New(stderr), err)
		return 1
	}

	return 0
}
