package store

import (
	"context"

	"github.com/rcliao/bio-browser/internal/model"
)

// ExportLatest returns the latest snapshot and its records in base order.
func (s *SQLiteStore) ExportLatest(ctx context.Context) (*Snapshot, []model.Record, error) {
	snap, err := s.Latest(ctx)
	if err != nil {
		return nil, nil, err
	}
	records, err := s.Records(ctx, snap.ID)
	if err != nil {
		return nil, nil, err
	}
	return snap, records, nil
}

// Import loads records from src and saves them as a new snapshot.
func (s *SQLiteStore) Import(ctx context.Context, source string, src Loader) (*Snapshot, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, source, records)
}
