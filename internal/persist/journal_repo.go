package persist

import (
	"context"
	"fmt"
)

// JournalEntry is one run-journal record: a notable event in a character's
// run (kill, death, item use, descent). The journal is append-only and
// feeds the post-mortem screen.
type JournalEntry struct {
	CharID    int32
	EventType string // "kill", "death", "consume", "descend"
	Subject   string
	ItemID    int32
	Amount    int32
	Depth     int
	Turn      int64
}

type JournalRepo struct {
	db *DB
}

func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Append atomically writes a batch of journal entries in a single transaction.
func (r *JournalRepo) Append(ctx context.Context, entries []JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx,
			`INSERT INTO run_journal (char_id, event_type, subject, item_id, amount, depth, turn)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.CharID, e.EventType, e.Subject, e.ItemID, e.Amount, e.Depth, e.Turn,
		); err != nil {
			return fmt.Errorf("journal insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// LoadByCharID returns a character's journal, oldest first.
func (r *JournalRepo) LoadByCharID(ctx context.Context, charID int32) ([]JournalEntry, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT char_id, event_type, subject, item_id, amount, depth, turn
		 FROM run_journal WHERE char_id = $1 ORDER BY id`, charID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.CharID, &e.EventType, &e.Subject, &e.ItemID, &e.Amount, &e.Depth, &e.Turn); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
