package store

import (
	"encoding/json"
	"fmt"
	"os"

	"course-dash/internal/domain"
)

// User is the stored account record. Passwords are kept only as bcrypt
// hashes; the profile shape handed to clients comes from Profile().
type User struct {
	ID              int    `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	HashedPassword  string `json:"hashed_password"`
	EnrolledCourses []int  `json:"enrolled_courses"`
}

// Profile strips the credential hash off a stored user.
func (u User) Profile() domain.UserProfile {
	return domain.UserProfile{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		EnrolledCourseIDs: u.EnrolledCourses,
	}
}

// DB is the on-disk database shape.
type DB struct {
	Users   []User          `json:"users"`
	Courses []domain.Course `json:"courses"`
}

// Store reads a JSON database file. The file is re-read on every Load so
// edits to it show up without a restart; the catalog is small enough that
// this costs nothing.
type Store struct {
	path string
}

func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (DB, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return DB{}, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var db DB
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{}, fmt.Errorf("store: parse %s: %w", s.path, err)
	}
	return db, nil
}

// UserByUsername finds an account by username.
func (db DB) UserByUsername(username string) (User, bool) {
	for _, u := range db.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// UserByID finds an account by id.
func (db DB) UserByID(id int) (User, bool) {
	for _, u := range db.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Validate checks that every enrollment references a catalog course.
func (db DB) Validate() error {
	catalog := make(map[int]bool, len(db.Courses))
	for _, c := range db.Courses {
		catalog[c.ID] = true
	}

	for _, u := range db.Users {
		for _, id := range u.EnrolledCourses {
			if !catalog[id] {
				return fmt.Errorf("store: user %q enrolled in unknown course %d", u.Username, id)
			}
		}
	}
	return nil
}

// Write saves a database file with stable formatting.
func Write(path string, db DB) error {
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return nil
}
