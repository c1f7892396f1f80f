package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// ShowHistoryInput contains the parameters for listing snapshots.
type ShowHistoryInput struct {
	Limit int // Maximum number of snapshots (0 = all)
}

// ShowHistoryOutput contains saved snapshots, newest first.
type ShowHistoryOutput struct {
	Snapshots []domain.SnapshotInfo
}

// ShowHistory is the use case for listing earlier snapshots of the collection.
// Only stores that keep history support it.
type ShowHistory struct {
	history domain.SnapshotHistory
}

// NewShowHistory creates a new ShowHistory use case.
// A nil history makes Execute return domain.ErrHistoryUnsupported.
func NewShowHistory(history domain.SnapshotHistory) *ShowHistory {
	return &ShowHistory{history: history}
}

// Execute lists the snapshots.
func (uc *ShowHistory) Execute(_ context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	if uc.history == nil {
		return nil, domain.ErrHistoryUnsupported
	}
	snapshots, err := uc.history.History(in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return &ShowHistoryOutput{Snapshots: snapshots}, nil
}
