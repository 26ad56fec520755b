package daemon

import (
	"context"
	"testing"
	"time"
)

func newTestDaemon() *Daemon {
	return New("test-session", "dev", 0, newState(nil, "test-session"))
}

// TestDispatchUnknownActionReturnsError covers spec property 3: an invalid
// action never panics or returns a partial response, only success:false
// with a human-readable error.
func TestDispatchUnknownActionReturnsError(t *testing.T) {
	d := newTestDaemon()
	resp := d.dispatch(context.Background(), Request{Action: "not_a_real_action"})
	if resp.Success {
		t.Fatalf("expected success:false for unknown action")
	}
	if resp.Error == nil || resp.Error.Message == "" {
		t.Fatalf("expected a populated error message")
	}
}

// TestDispatchNoBrowserActionSkipsEnsureBrowser exercises an action in
// noBrowserActions against a state with a nil facade.Port: if dispatch
// tried to lazily start a browser it would panic on the nil port.
func TestDispatchNoBrowserActionSkipsEnsureBrowser(t *testing.T) {
	d := newTestDaemon()
	resp := d.dispatch(context.Background(), Request{Action: "session_info"})
	if !resp.Success {
		t.Fatalf("expected session_info to succeed without a browser, got error: %+v", resp.Error)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map data, got %T", resp.Data)
	}
	if data["session"] != "test-session" {
		t.Errorf("expected session name in response, got %v", data["session"])
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected register of a duplicate action name to panic")
		}
	}()
	register("session_info", func(ctx context.Context, d *Daemon, params map[string]interface{}) (interface{}, error) {
		return nil, nil
	})
}

func TestTouchActivityAdvancesLastActivity(t *testing.T) {
	d := newTestDaemon()
	before := d.lastActivity
	time.Sleep(time.Millisecond)
	d.touchActivity()
	if !d.lastActivity.After(before) {
		t.Errorf("expected touchActivity to advance lastActivity")
	}
}
