//go:build !windows

package daemon

import (
	"os"
	"syscall"
)

// StopSignals contains all the signals which will make the server shut down
// gracefully and remove its pidfile.
var StopSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
