// Package cmd hosts the frametool diagnostic CLI: a spf13/cobra
// entry point for exercising the codec from a shell, in the teacher's
// Execute()/init()-registration idiom.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frametool",
	Short: "frametool builds and inspects fixed-size Ethernet/IPv4/UDP/ARP/DHCP frames",
}

// Execute runs the CLI, returning any error from the selected
// sub-command.
func Execute() error {
	return rootCmd.Execute()
}

// contextWithCancelOnInterrupt returns a context canceled the moment
// SIGINT or SIGTERM arrives, so a sub-command's RunE can select on
// ctx.Done() instead of leaving os.Exit to short-circuit cleanup.
func contextWithCancelOnInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
