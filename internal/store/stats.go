package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rcliao/bio-browser/internal/model"
)

// Stats holds database statistics for the latest snapshot.
type Stats struct {
	DBPath          string       `json:"db_path"`
	DBSizeBytes     int64        `json:"db_size_bytes"`
	Snapshots       int          `json:"snapshots"`
	Snapshot        *Snapshot    `json:"snapshot,omitempty"`
	Records         int          `json:"records"`
	AvgExperience   float64      `json:"avg_experience"`
	Domains         []FacetCount `json:"domains"`
	ConfidenceBands []FacetCount `json:"confidence_levels"`
	BioLengths      []FacetCount `json:"bio_lengths"`
}

// FacetCount is the number of records carrying one facet value.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// facetColumns maps each dimension to its records column.
var facetColumns = map[model.Dimension]string{
	model.DimensionDomain:     "skill_domain",
	model.DimensionConfidence: "ai_confidence",
	model.DimensionBioLength:  "biography_length",
}

// Stats returns database statistics. Facet counts list every known value
// in display order, including zero counts.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&st.Snapshots); err != nil {
		return nil, fmt.Errorf("count snapshots: %w", err)
	}

	snap, err := s.Latest(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return st, nil
	}
	if err != nil {
		return nil, err
	}
	st.Snapshot = snap

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(experience_level), 0) FROM records WHERE snapshot_id = ?`,
		snap.ID).Scan(&st.Records, &st.AvgExperience)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	if st.Domains, err = s.facetCounts(ctx, snap.ID, model.DimensionDomain); err != nil {
		return nil, err
	}
	if st.ConfidenceBands, err = s.facetCounts(ctx, snap.ID, model.DimensionConfidence); err != nil {
		return nil, err
	}
	if st.BioLengths, err = s.facetCounts(ctx, snap.ID, model.DimensionBioLength); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *SQLiteStore) facetCounts(ctx context.Context, snapshotID string, d model.Dimension) ([]FacetCount, error) {
	col := facetColumns[d]
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+col+`, COUNT(*) FROM records WHERE snapshot_id = ? GROUP BY `+col, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", d, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var value string
		var n int
		if err := rows.Scan(&value, &n); err != nil {
			return nil, err
		}
		counts[value] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]FacetCount, 0, len(d.Values()))
	for _, v := range d.Values() {
		out = append(out, FacetCount{Value: v, Count: counts[v]})
	}
	return out, nil
}
