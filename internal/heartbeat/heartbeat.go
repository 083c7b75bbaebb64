// Package heartbeat signals liveness to an external supervisor. Everything
// here is best effort: without a notify socket the calls are no-ops, and
// failures are deliberately ignored.
package heartbeat

import "github.com/coreos/go-systemd/v22/daemon"

// Ready tells the supervisor startup has finished.
func Ready() {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
}

// Beat feeds the supervisor watchdog after a completed cycle.
func Beat() {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
}
