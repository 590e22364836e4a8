package server

import (
	"fixtures-service/internal/config"
	"fixtures-service/internal/snapshots"
)

// snapshotComponents bundles the optional writer and read-back store.
type snapshotComponents struct {
	writer *snapshots.Writer
	store  snapshots.Store
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Folder == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		writer: snapshots.NewWriter(cfg.Snapshots.Folder),
		store:  snapshots.NewFSStore(cfg.Snapshots.Folder),
	}
}
