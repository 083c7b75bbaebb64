package session

import (
	"errors"
	"testing"
)

const landingFixture = `<html>
<head><script type="text/javascript">
var foo = 1;
var request = 123;
var state = 456;
init();
</script></head>
<body>Fahrzeugtracker</body>
</html>`

func TestExtract(t *testing.T) {
	tokens, err := Extract(landingFixture)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if tokens.Request != "123" {
		t.Errorf("request token: expected %q, got %q", "123", tokens.Request)
	}
	if tokens.State != "456" {
		t.Errorf("state token: expected %q, got %q", "456", tokens.State)
	}
}

func TestExtract_MissingAssignments(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		variable string
	}{
		{
			name:     "missing request",
			body:     "<html>var state = 456;</html>",
			variable: "request",
		},
		{
			name:     "missing state",
			body:     "<html>var request = 123;</html>",
			variable: "state",
		},
		{
			name:     "empty body",
			body:     "",
			variable: "request",
		},
		{
			name:     "non-numeric token",
			body:     "var request = abc; var state = 456;",
			variable: "request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.body)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var perr *ProtocolError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ProtocolError, got %T", err)
			}
			if perr.Variable != tt.variable {
				t.Errorf("expected failing variable %q, got %q", tt.variable, perr.Variable)
			}
		})
	}
}
