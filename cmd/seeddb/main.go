package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"course-dash/internal/auth"
	"course-dash/internal/concurrency"
	"course-dash/internal/service/memory"
	"course-dash/internal/store"
)

type seedAccount struct {
	id       int
	username string
	email    string
	password string
	enrolled []int
}

func main() {
	out := flag.String("out", "db.json", "output path")
	flag.Parse()

	accounts := []seedAccount{
		{1, "testuser", "testuser@example.com", "password", []int{101, 103}},
		{2, "newbie", "newbie@example.com", "letmein", nil},
	}

	// bcrypt is deliberately slow; hash the seed passwords in parallel.
	hashes, errs := concurrency.Map(context.Background(), accounts, 4,
		func(ctx context.Context, index int, a seedAccount) (string, error) {
			return auth.HashPassword(a.password)
		},
	)
	if len(errs) > 0 {
		log.Fatalf("hash error: %v", errs[0])
	}

	users := make([]store.User, 0, len(accounts))
	for i, a := range accounts {
		users = append(users, store.User{
			ID:              a.id,
			Username:        a.username,
			Email:           a.email,
			HashedPassword:  hashes[i],
			EnrolledCourses: a.enrolled,
		})
	}

	db := store.DB{Users: users, Courses: memory.SeedCatalog()}
	if err := db.Validate(); err != nil {
		log.Fatalf("seed data invalid: %v", err)
	}

	if err := store.Write(*out, db); err != nil {
		log.Fatalf("write error: %v", err)
	}

	fmt.Printf("OK: wrote %s (%d users, %d courses)\n", *out, len(db.Users), len(db.Courses))
}
