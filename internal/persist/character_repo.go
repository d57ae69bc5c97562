package persist

import (
	"context"
	"errors"

	"github.com/duskhall/server/internal/world"
	"github.com/jackc/pgx/v5"
)

// CharacterRow is a persisted hero. The map and position are not persisted:
// a resumed run regenerates a level at the saved depth from the run seed and
// places the hero at its entrance.
type CharacterRow struct {
	ID          int32
	ProfileName string
	Name        string
	HP          int
	MaxHP       int
	Power       int
	Defense     int
	Depth       int
	Turn        int64
	Score       int
	Seed        int64
	Alive       bool
}

type CharacterRepo struct {
	db *DB
}

func NewCharacterRepo(db *DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

// Load returns the newest living character for a profile, or nil.
func (r *CharacterRepo) Load(ctx context.Context, profileName string) (*CharacterRow, error) {
	row := &CharacterRow{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id, profile_name, name, hp, max_hp, power, defense, depth, turn, score, seed, alive
		 FROM characters WHERE profile_name = $1 AND alive ORDER BY updated_at DESC LIMIT 1`,
		profileName,
	).Scan(
		&row.ID, &row.ProfileName, &row.Name, &row.HP, &row.MaxHP, &row.Power, &row.Defense,
		&row.Depth, &row.Turn, &row.Score, &row.Seed, &row.Alive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create inserts a fresh hero and returns its DB id.
func (r *CharacterRepo) Create(ctx context.Context, row *CharacterRow) (int32, error) {
	var id int32
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO characters (profile_name, name, hp, max_hp, power, defense, depth, turn, score, seed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		row.ProfileName, row.Name, row.HP, row.MaxHP, row.Power, row.Defense,
		row.Depth, row.Turn, row.Score, row.Seed,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Save writes the hero's current state.
func (r *CharacterRepo) Save(ctx context.Context, charID int32, p *world.ActorInfo, turn int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE characters
		 SET hp = $2, max_hp = $3, power = $4, defense = $5,
		     depth = $6, turn = $7, score = $8,
		     alive = $9, updated_at = now()
		 WHERE id = $1`,
		charID, p.Fighter.HP, p.Fighter.MaxHP, p.Fighter.Power, p.Fighter.Defense,
		p.Depth, turn, p.Score, !p.Dead,
	)
	return err
}
