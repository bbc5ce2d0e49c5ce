package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// WorkflowEvent is the contract every terminal workflow event satisfies, so
// outcomes of all four workflows can be journaled uniformly.
type WorkflowEvent interface {
	EventType() string
	IsFailure() bool
}

// AppendEvent appends a terminal workflow event to the journal.
func (s *Store) AppendEvent(ctx context.Context, event WorkflowEvent) error {
	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	query, _, err := s.dialect().
		Insert(s.tables.WorkflowEvents).
		Rows(goqu.Record{
			"id":          uuid.NewString(),
			"event_type":  event.EventType(),
			"is_failure":  event.IsFailure(),
			"occurred_at": s.clock().UTC(),
			"payload":     string(payload),
		}).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build event insert: %w", err)
	}

	if _, err := s.exec(ctx, query); err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	return nil
}
