package system

import (
	"strings"
	"testing"
)

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, _, out := setupTestInitDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Database is up to date") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMigrateCmd_Uninitialized(t *testing.T) {
	ctx, _, _ := setupTestInitDB(t)
	if err := (&MigrateCmd{}).Run(ctx); err == nil {
		t.Error("expected error for an uninitialized database")
	}
}
