package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"course-dash/internal/config"
	"course-dash/internal/controller"
	"course-dash/internal/service"
	"course-dash/internal/service/httpapi"
	"course-dash/internal/service/memory"
	"course-dash/internal/session"
)

func main() {
	base := flag.String("base", "", "course service base URL (empty: built-in in-memory service)")
	username := flag.String("user", "testuser", "username")
	password := flag.String("pass", "password", "password")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	baseURL := *base
	if baseURL == "" {
		baseURL = cfg.ServiceBaseURL
	}

	var svc service.CourseService
	if baseURL != "" {
		fmt.Printf("using course service at %s\n", baseURL)
		svc = httpapi.New(baseURL)
	} else {
		fmt.Println("using built-in in-memory course service")
		svc, err = memory.NewSeeded()
		if err != nil {
			log.Fatalf("seed error: %v", err)
		}
	}

	sess := session.New()
	ctrl := controller.New(svc, sess)

	if err := ctrl.Mount(ctx); err != nil {
		log.Fatalf("mount error: %v", err)
	}

	if err := ctrl.Login(ctx, *username, *password); err != nil {
		log.Fatalf("login error: %v", err)
	}

	user := sess.User()
	fmt.Printf("OK: logged in as %s (id=%d)\n\n", user.Username, user.ID)

	vm := ctrl.View()

	fmt.Printf("Recommended for you (%d):\n", len(vm.Recommendations))
	for i, r := range vm.Recommendations {
		fmt.Printf("%d) %s [%s, %s]: %s\n", i+1, r.Title, r.Category, r.Difficulty, r.Reason)
	}

	fmt.Printf("\nCourse catalog (%d):\n", len(vm.Courses))
	for _, c := range vm.Courses {
		marker := " "
		if c.Enrolled {
			marker = "*"
		}
		fmt.Printf("%s %d: %s [%s, %s]\n", marker, c.ID, c.Title, c.Category, c.Difficulty)
	}
	fmt.Println("\n(* = enrolled)")
}
