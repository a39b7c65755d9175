package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/jlozano/riskprep/internal/progress"
)

// keepSnapshots bounds how much history Prune leaves behind.
const keepSnapshots = 20

// Persister adapts the snapshot repository to the progress package's
// Saver contract: every state mutation lands here as a full snapshot.
type Persister struct {
	repo SnapshotRepo
	seq  *sequenceCounter
}

// NewPersister wires a Persister to the store's snapshot repository.
func NewPersister(s *Store) *Persister {
	return &Persister{repo: s.SnapshotRepo(), seq: s.seq}
}

// Save writes the state as a new snapshot and prunes old ones.
func (p *Persister) Save(st progress.State) error {
	ctx := context.Background()
	seqNum, err := p.seq.Next(ctx)
	if err != nil {
		return err
	}
	snap := &Snapshot{
		Sequence:  seqNum,
		Timestamp: time.Now().UTC(),
		State:     st,
	}
	if err := p.repo.Save(ctx, snap); err != nil {
		return err
	}
	if err := p.repo.Prune(ctx, keepSnapshots); err != nil {
		slog.Warn("snapshot prune failed", "error", err)
	}
	return nil
}

// Load restores the latest persisted state. Missing or unreadable
// snapshots mean no prior progress: the caller starts fresh.
func (p *Persister) Load(ctx context.Context) *progress.State {
	snap, err := p.repo.Latest(ctx)
	if err != nil {
		slog.Warn("progress restore failed, starting fresh", "error", err)
		return nil
	}
	if snap == nil {
		return nil
	}
	st := snap.State
	return &st
}
