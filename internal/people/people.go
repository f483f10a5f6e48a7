// Package people loads the recipient directory that turns email addresses
// into display names and status text for the compose placeholder.
//
// The directory is a TOML file:
//
//	[[person]]
//	user_id = 1
//	email = "alice@example.com"
//	full_name = "Alice Liddell"
//	status = "In a meeting"
package people

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/treykane/composer/internal/compose"
	"github.com/treykane/composer/internal/logging"
)

var peopleLog = logging.New("people")

// ErrInvalidPerson marks a directory entry that cannot be indexed.
var ErrInvalidPerson = errors.New("invalid person")

type file struct {
	Person []entry `toml:"person"`
}

type entry struct {
	UserID   int    `toml:"user_id"`
	Email    string `toml:"email"`
	FullName string `toml:"full_name"`
	Status   string `toml:"status"`
}

// Directory is an in-memory people directory keyed by lowercased email.
type Directory struct {
	byEmail map[string]compose.Person
	byID    map[int]string
	status  map[int]string
}

// New returns an empty directory.
func New() *Directory {
	return &Directory{
		byEmail: map[string]compose.Person{},
		byID:    map[int]string{},
		status:  map[int]string{},
	}
}

// Load reads the directory at path. A missing file is an empty directory.
func Load(path string) (*Directory, error) {
	dir := New()
	if strings.TrimSpace(path) == "" {
		return dir, nil
	}

	var parsed file
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			peopleLog.Debug("people file missing", "path", path)
			return dir, nil
		}
		return nil, fmt.Errorf("parse people file %q: %w", path, err)
	}

	for i, e := range parsed.Person {
		if err := dir.Add(e.UserID, e.Email, e.FullName, e.Status); err != nil {
			return nil, fmt.Errorf("%s: person %d: %w", path, i+1, err)
		}
	}
	peopleLog.Info("loaded people directory", "path", path, "count", dir.Len())
	return dir, nil
}

// Add indexes one person. Emails must be non-empty and unique
// (case-insensitively). User IDs must be positive and unique since status
// text is keyed by them.
func (d *Directory) Add(userID int, email, fullName, status string) error {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidPerson)
	}
	if _, ok := d.byEmail[key]; ok {
		return fmt.Errorf("%w: duplicate email %q", ErrInvalidPerson, key)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: %s: user_id must be positive", ErrInvalidPerson, key)
	}
	if other, ok := d.byID[userID]; ok {
		return fmt.Errorf("%w: user_id %d is used by %s and %s", ErrInvalidPerson, userID, other, key)
	}
	d.byID[userID] = key
	d.byEmail[key] = compose.Person{
		UserID:   userID,
		Email:    key,
		FullName: strings.TrimSpace(fullName),
	}
	if status = strings.TrimSpace(status); status != "" {
		d.status[userID] = status
	}
	return nil
}

// PersonByEmail looks up email case-insensitively.
func (d *Directory) PersonByEmail(email string) (compose.Person, bool) {
	p, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	return p, ok
}

// StatusText returns the status text set for userID, if any.
func (d *Directory) StatusText(userID int) string {
	return d.status[userID]
}

// Len returns the number of people in the directory.
func (d *Directory) Len() int {
	return len(d.byEmail)
}
