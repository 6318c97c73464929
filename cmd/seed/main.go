package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"equipshare/internal/database"
	"equipshare/internal/domain"
	"equipshare/internal/repository"
)

// Seeds a development database with accounts, profiles, equipment, role
// grants and a couple of active reservations. Destructive: wipes the
// existing rows first.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "equipshare.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM permissions")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	accounts := repository.NewAccountRepository(db)
	equipment := repository.NewEquipmentRepository(db)
	reservations := repository.NewReservationRepository(db)
	permissions := repository.NewPermissionRepository(db)

	// ================== ACCOUNTS & PROFILES ==================
	log.Println("Creating accounts...")

	type seedUser struct {
		pid      int64
		first    string
		last     string
		password string
		role     domain.Role
	}
	seedUsers := []seedUser{
		{999999999, "Super", "User", "root123", domain.RoleAdmin},
		{100000000, "Sol", "Student", "sol123", domain.RoleUser},
		{100000001, "Arden", "Reyes", "arden123", domain.RoleUser},
		{100000002, "Merritt", "Blake", "merritt123", domain.RoleStaff},
	}

	profiles := make(map[int64]domain.User)
	for _, su := range seedUsers {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if hashErr != nil {
			log.Fatal("bcrypt failed:", hashErr)
		}
		if err := accounts.Create(ctx, &domain.Account{
			PID:          su.pid,
			PasswordHash: string(hash),
			Role:         su.role,
		}); err != nil {
			log.Fatal("account create failed:", err)
		}

		u := domain.User{PID: su.pid, FirstName: su.first, LastName: su.last}
		if err := users.Create(ctx, &u); err != nil {
			log.Fatal("user create failed:", err)
		}
		profiles[su.pid] = u
		log.Printf("Account created: pid=%d role=%s password=%s", su.pid, su.role, su.password)
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	items := []domain.Equipment{
		{Name: "Asus Monitor", Type: "monitor", Status: domain.StatusAvailable},
		{Name: "Dell Monitor", Type: "monitor", Status: domain.StatusAvailable},
		{Name: "Logitech Keyboard", Type: "keyboard", Status: domain.StatusAvailable, Notes: "f key broken"},
		{Name: "Sony Camera", Type: "camera", Status: domain.StatusAvailable},
		{Name: "Lenovo Laptop", Type: "laptop", Status: domain.StatusAvailable, Notes: "has a short battery life"},
		{Name: "Lenovo Laptop", Type: "laptop", Status: domain.StatusAvailable},
	}
	for i := range items {
		if err := equipment.Create(ctx, &items[i]); err != nil {
			log.Fatal("equipment create failed:", err)
		}
	}

	// ================== PERMISSIONS ==================
	log.Println("Creating role grants...")

	grants := []domain.Permission{
		{Role: domain.RoleAdmin, Action: "*", Resource: "*"},
		{Role: domain.RoleManager, Action: "equipment.*", Resource: "equipment/*"},
		{Role: domain.RoleManager, Action: "reservation.*", Resource: "reservation/*"},
		{Role: domain.RoleManager, Action: "user.list", Resource: "user/"},
		{Role: domain.RoleStaff, Action: "reservation.*", Resource: "reservation/*"},
		{Role: domain.RoleStaff, Action: "user.list", Resource: "user/"},
	}
	for i := range grants {
		if err := permissions.Create(ctx, &grants[i]); err != nil {
			log.Fatal("permission create failed:", err)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	seedRes := []struct {
		pid  int64
		item int
	}{
		{100000000, 2}, // Sol has the keyboard
		{100000001, 4}, // Arden has a laptop
	}
	for _, sr := range seedRes {
		item := items[sr.item]
		res := domain.Reservation{
			Type:      item.Type,
			User:      profiles[sr.pid],
			Equipment: item,
			Notes:     item.Notes,
		}
		if err := reservations.Create(ctx, &res); err != nil {
			log.Fatal("reservation create failed:", err)
		}
		if err := equipment.UpdateStatus(ctx, item.ID, domain.StatusUnavailable); err != nil {
			log.Fatal("checkout failed:", err)
		}
	}

	log.Printf("Seed complete: %d accounts, %d equipment items, %d grants, %d reservations",
		len(seedUsers), len(items), len(grants), len(seedRes))
}
