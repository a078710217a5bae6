package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/wordcache/internal/lookup"
)

// InsertWordQueueName is the backlite queue that runs background inserts.
const InsertWordQueueName = "insert_word"

// WordInserter runs the insert workflow for one word.
type WordInserter interface {
	Insert(ctx context.Context, word string) (lookup.Outcome, error)
}

// InsertWordTask fetches and stores a single word.
type InsertWordTask struct {
	Word string `json:"word"`
}

// Config runs each insert once. A failed provider call is reported as a
// failed task; callers resubmit if they want another attempt.
func (t InsertWordTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        InsertWordQueueName,
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// InsertWordProcessor creates a processor that hands each task to the engine.
func InsertWordProcessor(inserter WordInserter) backlite.QueueProcessor[InsertWordTask] {
	return func(ctx context.Context, task InsertWordTask) error {
		outcome, err := inserter.Insert(ctx, task.Word)
		if err != nil {
			return fmt.Errorf("insert word %q: %w", task.Word, err)
		}

		switch outcome.Kind {
		case lookup.OutcomeRemoteUnavailable:
			return fmt.Errorf("insert word %q: %s", outcome.Word, outcome.Detail)
		case lookup.OutcomeRemoteNotFound:
			log.Printf("[TASK] Word %q unknown to provider, %d suggestions", outcome.Word, len(outcome.Suggestions))
		default:
			log.Printf("[TASK] Insert of %q: %s", outcome.Word, outcome.Kind)
		}
		return nil
	}
}

func NewInsertWordQueue(inserter WordInserter) backlite.Queue {
	return backlite.NewQueue(InsertWordProcessor(inserter))
}
