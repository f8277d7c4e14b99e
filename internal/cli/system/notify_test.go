package system

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/julianstephens/energycoach/internal/cli"
	"github.com/julianstephens/energycoach/internal/notifier"
	"github.com/julianstephens/energycoach/internal/storage/sqlite"
)

type stubChannel struct {
	mu        sync.Mutex
	perm      notifier.Permission
	err       error
	delivered []string
}

func (s *stubChannel) Name() string                           { return "stub" }
func (s *stubChannel) RequestPermission() notifier.Permission { return s.perm }
func (s *stubChannel) Deliver(title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, title+": "+body)
	return nil
}

func notifyContext(t *testing.T, ch notifier.Channel) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	out := &bytes.Buffer{}
	ctx := &cli.Context{Store: store, Out: out, Channel: ch}
	t.Cleanup(func() {
		ctx.Close()
		_ = store.Close()
	})
	return ctx, out
}

func TestNotifyTestCmd(t *testing.T) {
	ch := &stubChannel{perm: notifier.PermissionGranted}
	ctx, out := notifyContext(t, ch)

	cmd := &NotifyTestCmd{Title: "Energy Coach", Body: "hello"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("notify test failed: %v", err)
	}
	if len(ch.delivered) != 1 || ch.delivered[0] != "Energy Coach: hello" {
		t.Errorf("delivered = %v", ch.delivered)
	}
	if !strings.Contains(out.String(), "Channel: stub") || !strings.Contains(out.String(), "Notification sent") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestNotifyTestCmd_Unsupported(t *testing.T) {
	ctx, out := notifyContext(t, notifier.NoopChannel{})

	if err := (&NotifyTestCmd{}).Run(ctx); err != nil {
		t.Fatalf("notify test failed: %v", err)
	}
	if !strings.Contains(out.String(), "Permission: unsupported") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestNotifyTestCmd_DeliveryError(t *testing.T) {
	ch := &stubChannel{perm: notifier.PermissionGranted, err: errors.New("tray gone")}
	ctx, _ := notifyContext(t, ch)

	if err := (&NotifyTestCmd{Title: "t", Body: "b"}).Run(ctx); err == nil || !strings.Contains(err.Error(), "tray gone") {
		t.Errorf("error = %v", err)
	}
}
