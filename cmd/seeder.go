package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM entry_exit_logs").Error; err != nil {
				log.Fatalf("failed to clear entry_exit_logs: %v", err)
			}
			if err := db.Exec("DELETE FROM gate_passes").Error; err != nil {
				log.Fatalf("failed to clear gate_passes: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedUsers := []struct {
			Name       string
			Email      string
			Role       string
			RollNumber *string
			Department *string
			EmployeeID *string
		}{
			{"Alice Kumar", "alice@campus.edu", "student", strptr("R100"), strptr("CSE"), nil},
			{"Dr. Rao", "rao@campus.edu", "hod", nil, strptr("CSE"), strptr("H100")},
			{"Ravi Singh", "ravi@campus.edu", "security", nil, nil, strptr("S100")},
		}

		for _, u := range seedUsers {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}

			if err := db.Exec(
				"INSERT INTO users (name, email, password_hash, role, roll_number, department, employee_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, now(), now())",
				u.Name, u.Email, string(hash), u.Role, u.RollNumber, u.Department, u.EmployeeID,
			).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded %s user: %s\n", u.Role, u.Email)
		}

		fmt.Println("Seed data loaded successfully")
	},
}

func strptr(s string) *string { return &s }
