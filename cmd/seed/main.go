package main

import (
	"fmt"
	"log"

	"circular-lab/auth"
	"circular-lab/directory"
	"circular-lab/domain"
	"circular-lab/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// seedUsers is a small campus roster: enough to exercise every group
// selection and the sender-exclusion rule.
var seedUsers = []directory.User{
	{ID: "student-1", Name: "Alice Martin", Role: domain.RoleStudent},
	{ID: "student-2", Name: "Bruno Costa", Role: domain.RoleStudent},
	{ID: "student-3", Name: "Chloé Dubois", Role: domain.RoleStudent},
	{ID: "prof-1", Name: "Diane Keller", Role: domain.RoleProfessor},
	{ID: "prof-2", Name: "Émile Laurent", Role: domain.RoleProfessor},
	{ID: "mgmt-1", Name: "Farid Benali", Role: domain.RoleManagement},
	{ID: "alumni-1", Name: "Gabrielle Roy", Role: domain.RoleAlumni},
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger (shared with the server when it is not running)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	dir := directory.NewBadgerDirectory(db, logger)

	header := color.New(color.BgBlack, color.FgGreen).Render(" Seeding campus directory ")
	fmt.Println(header)

	// 3. Insert users and print a ready-to-use bearer token for each
	for _, user := range seedUsers {
		if err := dir.AddUser(user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.ID, err)
		}

		token, err := auth.GenerateToken([]byte(config.JWTSecret),
			user.ID, user.Role, config.AuthTokenDuration)
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", user.ID, err)
		}

		fmt.Printf("%s %s (%s)\n",
			color.Green.Render("✔"),
			user.Name,
			color.Gray.Render(string(user.Role)),
		)
		fmt.Printf("  %s %s\n", color.Yellow.Render("token:"), token)
	}

	fmt.Printf("\n%d users seeded into %s\n", len(seedUsers), config.BadgerFilepath)
}
