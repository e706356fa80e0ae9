// Command createrecruiter seeds a recruiter account. Recruiters cannot be
// created through the public registration flow, which always assigns the
// applicant role.
package main

import (
	"context"
	"flag"
	"log"

	"recruitment-portal-api/config"
	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/internal/repository/postgres"
	"recruitment-portal-api/pkg/auth"
	"recruitment-portal-api/pkg/database"
)

func main() {
	firstName := flag.String("first", "Rita", "first name")
	lastName := flag.String("last", "Recruiter", "last name")
	email := flag.String("email", "", "unique email (required)")
	personNumber := flag.String("pnr", "", "person number YYYYMMDD-XXXX (required)")
	username := flag.String("user", "", "unique username (required)")
	password := flag.String("pass", "", "password, min 6 characters (required)")
	flag.Parse()

	if *email == "" || *personNumber == "" || *username == "" || len(*password) < 6 {
		flag.Usage()
		log.Fatal("email, pnr, user and a password of at least 6 characters are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	person := &domain.Person{
		FirstName:    *firstName,
		LastName:     *lastName,
		Email:        *email,
		PersonNumber: *personNumber,
		Username:     *username,
		PasswordHash: hash,
		Role:         domain.RoleRecruiter,
	}

	store := postgres.NewStore(pool)
	if err := store.Persons().Create(context.Background(), person); err != nil {
		log.Fatalf("Failed to create recruiter: %v", err)
	}

	log.Printf("Recruiter %q created with id %d", person.Username, person.PersonID)
}
