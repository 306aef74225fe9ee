// Package share stores uploaded scripts so a presenter can open them later
// by id.
package share

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ziadkadry99/prompter/internal/db"
	"github.com/ziadkadry99/prompter/internal/script"
)

// DefaultMaxChars is the largest script accepted for sharing.
const DefaultMaxChars = 100_000

var (
	ErrEmptyScript    = errors.New("script content cannot be empty")
	ErrScriptTooLarge = errors.New("script too large")
	ErrNotFound       = errors.New("shared script not found: it may have expired or been removed")
)

// MaxBodyBytes bounds a request carrying a script of at most maxChars
// characters: four bytes per rune plus room for the JSON envelope.
func MaxBodyBytes(maxChars int) int64 {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return int64(maxChars)*4 + 1024
}

// SharedScript is one stored upload.
type SharedScript struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateContent checks an upload against the size bounds. maxChars <= 0
// means DefaultMaxChars.
func ValidateContent(content string, maxChars int) error {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if content == "" {
		return ErrEmptyScript
	}
	if n := utf8.RuneCountInString(content); n > maxChars {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrScriptTooLarge, n, maxChars)
	}
	return nil
}

// Store manages persistence of shared scripts.
type Store struct {
	db       *db.DB
	maxChars int
	now      func() time.Time
}

// NewStore creates a share store. maxChars <= 0 means DefaultMaxChars.
func NewStore(database *db.DB, maxChars int) *Store {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Store{db: database, maxChars: maxChars, now: time.Now}
}

// MaxChars returns the upload limit in characters.
func (s *Store) MaxChars() int { return s.maxChars }

const idAttempts = 5

// Save validates content and stores it under a fresh id.
func (s *Store) Save(ctx context.Context, content string) (*SharedScript, error) {
	if err := ValidateContent(content, s.maxChars); err != nil {
		return nil, err
	}

	sc := &SharedScript{Content: content, CreatedAt: s.now().UTC()}
	for attempt := 0; attempt < idAttempts; attempt++ {
		sc.ID = NewID()
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO scripts (id, content, created_at) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO NOTHING`,
			sc.ID, sc.Content, sc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting script: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 1 {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("allocating script id: %d collisions", idAttempts)
}

// Load returns the script stored under id, or ErrNotFound.
func (s *Store) Load(ctx context.Context, id string) (*SharedScript, error) {
	var sc SharedScript
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, created_at FROM scripts WHERE id = ?`, id,
	).Scan(&sc.ID, &sc.Content, &sc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting script: %w", err)
	}
	return &sc, nil
}

// DeleteBefore removes scripts created before cutoff and returns how many
// were removed.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM scripts WHERE created_at < ?`, cutoff.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old scripts: %w", err)
	}
	return res.RowsAffected()
}

// Loader fetches shared script text by id.
type Loader interface {
	Load(ctx context.Context, id string) (*SharedScript, error)
}

// LoadScript fetches and parses a shared script. A missing id is not an
// error: it reports ok=false so the caller can stay on the input stage.
func LoadScript(ctx context.Context, l Loader, id string) (script.Script, bool, error) {
	sc, err := l.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return script.Parse(sc.Content), true, nil
}
