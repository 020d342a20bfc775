package shell

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/schemakit/schemakit/options"
)

// The signals that are forwarded to a running terraform process, so an interrupted fetch lets
// terraform clean up its own locks.
var forwardSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// SignalsForwarder forwards signals to a command, waiting for the command to finish.
type SignalsForwarder chan os.Signal

// NewSignalsForwarder returns a SignalsForwarder that forwards the given signals to the command
// until the command finishes, signaled via cmdChannel.
func NewSignalsForwarder(signals []os.Signal, c *exec.Cmd, opts *options.Options, cmdChannel chan error) SignalsForwarder {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, signals...)

	go func() {
		for {
			select {
			case s := <-signalChannel:
				opts.Logger.Debugf("Forwarding signal %v to %s.", s, c.Path)

				if err := c.Process.Signal(s); err != nil {
					opts.Logger.Errorf("Error forwarding signal: %v", err)
				}
			case <-cmdChannel:
				return
			}
		}
	}()

	return signalChannel
}

// Close stops forwarding and releases the signal channel. The send is non-blocking: if a signal
// arrived in the same instant the command finished, the buffer may still hold it and the forwarder
// goroutine is already gone.
func (signalChannel *SignalsForwarder) Close() error {
	signal.Stop(*signalChannel)

	select {
	case *signalChannel <- nil:
	default:
	}

	close(*signalChannel)

	return nil
}
