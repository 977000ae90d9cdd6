package signals

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

const shutDownTimeout = 30 * time.Second

// GoOnExitSignal calls onInterrupt when the process receives an interrupt or
// terminate signal. A second signal, or onInterrupt taking longer than
// shutDownTimeout, exits the process immediately.
func GoOnExitSignal(logger polylog.Logger, onInterrupt func()) {
	go func() {
		sigCh := make(chan os.Signal, 1)

		// DEV_NOTE: SIGKILL cannot be trapped, so we don't listen for it.
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		sig := <-sigCh
		logger.Info().Msgf("Received signal %s, starting graceful shutdown...", sig)

		done := make(chan struct{})
		go func() {
			defer close(done)
			onInterrupt()
		}()

		timer := time.NewTimer(shutDownTimeout)
		defer timer.Stop()

		select {
		case <-done:
			logger.Info().Msg("Graceful shutdown completed successfully.")
			return
		case sig := <-sigCh:
			logger.Warn().Msgf("Received another signal %s during shutdown, exiting immediately.", sig)
			os.Exit(130) // 128 + SIGINT
		case <-timer.C:
			logger.Warn().Msgf("Graceful shutdown timed out after %s, exiting immediately.", shutDownTimeout)
			os.Exit(1)
		}
	}()
}
