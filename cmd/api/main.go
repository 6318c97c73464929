package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"equipshare/internal/database"
	"equipshare/internal/middleware"
	"equipshare/internal/modules/auth"
	"equipshare/internal/modules/equipment"
	"equipshare/internal/modules/permission"
	"equipshare/internal/modules/profile"
	"equipshare/internal/modules/reservation"
	jwtsvc "equipshare/internal/pkg/jwt"
	"equipshare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(accountRepo, j)
	authHandler := auth.NewHandler(authService)

	permissionService := permission.NewService(permissionRepo)
	permissionHandler := permission.NewHandler(permissionService)

	hub := equipment.NewHub()
	defer hub.Close()

	equipmentService := equipment.NewService(equipmentRepo, permissionService, hub)
	equipmentHandler := equipment.NewHandler(equipmentService, hub)

	reservationService := reservation.NewService(reservationRepo, equipmentService, permissionService)
	reservationHandler := reservation.NewHandler(reservationService)

	profileService := profile.NewService(userRepo)
	profileHandler := profile.NewHandler(profileService)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		// everything else requires a valid token
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			equipmentHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			permissionHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
