package server

import (
	"testing"

	"fixtures-service/internal/config"
)

func TestBuildSnapshotsDisabled(t *testing.T) {
	snaps := buildSnapshots(config.Config{Snapshots: config.SnapshotConfig{Enabled: false, Folder: "data"}})
	if snaps.writer != nil || snaps.store != nil {
		t.Fatalf("expected empty components, got %+v", snaps)
	}

	snaps = buildSnapshots(config.Config{Snapshots: config.SnapshotConfig{Enabled: true, Folder: ""}})
	if snaps.writer != nil || snaps.store != nil {
		t.Fatal("expected empty components without a folder")
	}
}

func TestBuildSnapshotsEnabled(t *testing.T) {
	snaps := buildSnapshots(config.Config{Snapshots: config.SnapshotConfig{Enabled: true, Folder: t.TempDir()}})
	if snaps.writer == nil || snaps.store == nil {
		t.Fatal("expected writer and store when enabled")
	}
}
