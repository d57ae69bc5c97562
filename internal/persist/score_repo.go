package persist

import "context"

// ScoreRow is one high-score entry, written when a run ends.
type ScoreRow struct {
	ProfileName string
	CharName    string
	Score       int
	Depth       int
	Turn        int64
	DiedTo      string
}

type ScoreRepo struct {
	db *DB
}

func NewScoreRepo(db *DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

func (r *ScoreRepo) Insert(ctx context.Context, row ScoreRow) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO high_scores (profile_name, char_name, score, depth, turn, died_to)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		row.ProfileName, row.CharName, row.Score, row.Depth, row.Turn, row.DiedTo,
	)
	return err
}

// Top returns the best n scores.
func (r *ScoreRepo) Top(ctx context.Context, n int) ([]ScoreRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT profile_name, char_name, score, depth, turn, died_to
		 FROM high_scores ORDER BY score DESC, recorded_at LIMIT $1`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ScoreRow
	for rows.Next() {
		var s ScoreRow
		if err := rows.Scan(&s.ProfileName, &s.CharName, &s.Score, &s.Depth, &s.Turn, &s.DiedTo); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
