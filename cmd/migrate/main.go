package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"continuity/config"
	"continuity/internal/domain"
	"continuity/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

const usage = `
Continuity - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all migrations (SQL + GORM)
  status      Show database connection status
  seed        Seed the database with an admin user
  reset       Drop all tables and re-run migrations (DANGEROUS)

Flags:
  -migrations string   Path to migrations directory (default "migrations")
  -admin-email string  Admin email for seeding (default "admin@continuity.local")
  -admin-pass string   Admin password for seeding (default "Admin@123!")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
  go run cmd/migrate/main.go reset
`

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")
	adminEmail := flag.String("admin-email", "admin@continuity.local", "Admin email for seeding")
	adminPass := flag.String("admin-pass", "Admin@123!", "Admin password for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	database.Connect(cfg)
	defer database.Close()

	switch command {
	case "up":
		runMigrationsUp(*migrationsDir)
	case "status":
		showStatus()
	case "seed":
		runSeed(*adminEmail, *adminPass)
	case "reset":
		runReset(*migrationsDir)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(migrationsDir string) {
	log.Println("Running migrations...")

	if err := database.RunFullMigration(migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func showStatus() {
	log.Println("Checking database status...")

	if err := database.Ping(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	tables := []string{"users", "spaces", "user_spaces", "folders", "snapshots", "characters", "attachments"}
	for _, table := range tables {
		exists, err := database.TableExists(table)
		if err != nil {
			log.Printf("Error checking table %s: %v", table, err)
			continue
		}
		if exists {
			log.Printf("Table %s: present", table)
		} else {
			log.Printf("Table %s: MISSING", table)
		}
	}
}

func runSeed(email, password string) {
	log.Println("Seeding admin user...")

	var count int64
	if err := database.DB.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatalf("Seed check failed: %v", err)
	}
	if count > 0 {
		log.Printf("User %s already exists, nothing to do", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Password hashing failed: %v", err)
	}

	admin := domain.User{
		Email:        email,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: string(hash),
		CreatedOn:    time.Now().UTC(),
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seeded admin user %s (id=%d)", email, admin.ID)
}

func runReset(migrationsDir string) {
	log.Println("Dropping all tables...")

	tables := []string{"attachments", "snapshots", "folders", "user_spaces", "characters", "spaces", "users"}
	for _, table := range tables {
		if err := database.DB.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
			log.Fatalf("Dropping %s failed: %v", table, err)
		}
	}

	runMigrationsUp(migrationsDir)
}
