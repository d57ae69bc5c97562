package persist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ProfileRow is a local player profile. Profiles scope saved characters and
// high scores on a shared machine.
type ProfileRow struct {
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	LastActive   *time.Time
}

type ProfileRepo struct {
	db *DB
}

func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Load returns the profile, or nil if it doesn't exist.
func (r *ProfileRepo) Load(ctx context.Context, name string) (*ProfileRow, error) {
	row := &ProfileRow{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT name, password_hash, created_at, last_active
		 FROM profiles WHERE name = $1`, name,
	).Scan(&row.Name, &row.PasswordHash, &row.CreatedAt, &row.LastActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create hashes the password and inserts a new profile.
func (r *ProfileRepo) Create(ctx context.Context, name, rawPassword string) (*ProfileRow, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	row := &ProfileRow{
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastActive:   &now,
	}
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO profiles (name, password_hash, last_active) VALUES ($1, $2, $3)`,
		row.Name, row.PasswordHash, row.LastActive,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ProfileRepo) ValidatePassword(hash string, rawPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPassword)) == nil
}

func (r *ProfileRepo) TouchLastActive(ctx context.Context, name string) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE profiles SET last_active = now() WHERE name = $1`, name)
	return err
}
