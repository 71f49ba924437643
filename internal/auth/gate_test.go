package auth

import "testing"

func TestGateVerify(t *testing.T) {
	gate, err := NewGate("admin", "hunter2")
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	result := gate.Verify("admin", "hunter2")
	if !result.Authenticated {
		t.Errorf("expected correct credentials to authenticate, reason %q", result.Reason)
	}
	if result.Reason != "" {
		t.Errorf("expected empty reason on success, got %q", result.Reason)
	}
}

func TestGateRejectsWrongPassword(t *testing.T) {
	gate, _ := NewGate("admin", "hunter2")

	result := gate.Verify("admin", "hunter3")
	if result.Authenticated {
		t.Error("expected wrong password to fail")
	}
	if result.Reason != ReasonBadCredentials {
		t.Errorf("expected ReasonBadCredentials, got %q", result.Reason)
	}
}

func TestGateRejectsWrongUsername(t *testing.T) {
	gate, _ := NewGate("admin", "hunter2")

	result := gate.Verify("root", "hunter2")
	if result.Authenticated {
		t.Error("expected wrong username to fail")
	}
	if result.Reason != ReasonBadCredentials {
		t.Errorf("expected ReasonBadCredentials, got %q", result.Reason)
	}
}

func TestGateUnconfigured(t *testing.T) {
	for _, pair := range [][2]string{{"", ""}, {"admin", ""}, {"", "hunter2"}} {
		gate, err := NewGate(pair[0], pair[1])
		if err != nil {
			t.Fatalf("NewGate(%q, %q): %v", pair[0], pair[1], err)
		}

		result := gate.Verify("admin", "hunter2")
		if result.Authenticated {
			t.Errorf("expected unconfigured gate (%q, %q) to reject everything", pair[0], pair[1])
		}
		if result.Reason != ReasonNotConfigured {
			t.Errorf("expected ReasonNotConfigured, got %q", result.Reason)
		}
	}
}

func TestGateEmptyAttemptAgainstConfiguredGate(t *testing.T) {
	gate, _ := NewGate("admin", "hunter2")

	result := gate.Verify("", "")
	if result.Authenticated {
		t.Error("expected empty credentials to fail")
	}
	if result.Reason != ReasonBadCredentials {
		t.Errorf("expected ReasonBadCredentials, got %q", result.Reason)
	}
}
