package session

import (
	"fmt"
	"regexp"
)

// Tokens is the ephemeral request/state pair the portal embeds in its
// landing page. Both values are required to authorize a data fetch and are
// re-derived on every poll cycle, never cached across cycles.
type Tokens struct {
	Request string
	State   string
}

// ProtocolError reports a landing page that no longer carries one of the
// expected token assignments, i.e. the upstream page shape changed.
type ProtocolError struct {
	Variable string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("session: no %q assignment found in landing page", e.Variable)
}

var (
	requestPattern = regexp.MustCompile(`var request = (\d+);`)
	statePattern   = regexp.MustCompile(`var state = (\d+);`)
)

// Extract pulls the session token pair out of the landing page body.
func Extract(body string) (Tokens, error) {
	req := requestPattern.FindStringSubmatch(body)
	if req == nil {
		return Tokens{}, &ProtocolError{Variable: "request"}
	}
	state := statePattern.FindStringSubmatch(body)
	if state == nil {
		return Tokens{}, &ProtocolError{Variable: "state"}
	}
	return Tokens{Request: req[1], State: state[1]}, nil
}
