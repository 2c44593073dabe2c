// Package favorites persists the pets a user has starred.
package favorites

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Favorite is a starred pet.
type Favorite struct {
	PetID     string    `db:"pet_id"`
	Name      string    `db:"name"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// Store handles favorite persistence.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens or creates the favorites database at the given path.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers; a single connection keeps :memory: coherent
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		pet_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add stars a pet. Adding an existing favorite updates its name and note.
func (s *Store) Add(petID, name, note string) error {
	fav := Favorite{PetID: petID, Name: name, Note: note, CreatedAt: s.now().UTC()}
	_, err := s.db.NamedExec(`
		INSERT INTO favorites (pet_id, name, note, created_at)
		VALUES (:pet_id, :name, :note, :created_at)
		ON CONFLICT(pet_id) DO UPDATE SET name = excluded.name, note = excluded.note`, fav)
	if err != nil {
		return fmt.Errorf("add favorite %s: %w", petID, err)
	}
	return nil
}

// Remove un-stars a pet. Removing an unknown pet is not an error.
func (s *Store) Remove(petID string) error {
	if _, err := s.db.Exec(`DELETE FROM favorites WHERE pet_id = ?`, petID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", petID, err)
	}
	return nil
}

// IsFavorite reports whether petID is starred.
func (s *Store) IsFavorite(petID string) (bool, error) {
	var one int
	err := s.db.Get(&one, `SELECT 1 FROM favorites WHERE pet_id = ?`, petID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query favorite %s: %w", petID, err)
	}
	return true, nil
}

// Toggle flips a pet's favorite status and returns the new status.
func (s *Store) Toggle(petID, name string) (bool, error) {
	fav, err := s.IsFavorite(petID)
	if err != nil {
		return false, err
	}
	if fav {
		return false, s.Remove(petID)
	}
	return true, s.Add(petID, name, "")
}

// List returns all favorites, newest first.
func (s *Store) List() ([]Favorite, error) {
	var favs []Favorite
	if err := s.db.Select(&favs, `SELECT pet_id, name, note, created_at FROM favorites ORDER BY created_at DESC, pet_id`); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

// IDs returns the set of starred pet IDs.
func (s *Store) IDs() (map[string]bool, error) {
	var ids []string
	if err := s.db.Select(&ids, `SELECT pet_id FROM favorites`); err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Clear removes every favorite and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM favorites`)
	if err != nil {
		return 0, fmt.Errorf("clear favorites: %w", err)
	}
	return res.RowsAffected()
}
