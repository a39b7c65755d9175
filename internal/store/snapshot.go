package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jlozano/riskprep/ent"
	"github.com/jlozano/riskprep/ent/snapshot"
	"github.com/jlozano/riskprep/internal/progress"
)

type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := encodeState(snap.State)
	if err != nil {
		return fmt.Errorf("marshal snapshot state: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot, or (nil, nil) when none exists.
// Ordering uses the sequence field: SQLite hands timestamps back
// truncated to whole seconds, so saves within the same second would
// tie on timestamp.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return decodeSnapshot(s)
}

// Prune deletes everything older than the keep newest snapshots. The
// cutoff is the sequence number, which survives the round trip through
// SQLite exactly; a timestamp cutoff would lose sub-second precision
// and leave the boundary row behind.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	boundary, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(boundary) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(boundary[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeState round-trips the progress state through JSON into the
// map shape ent stores in the data column.
func encodeState(st progress.State) (map[string]any, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshot(s *ent.Snapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var st progress.State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot state: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		State:     st,
	}, nil
}
