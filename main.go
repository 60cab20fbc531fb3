package main

import (
	"fmt"
	"log"
	"os"

	"halo-lounge-backend/cart"
	"halo-lounge-backend/config"
	"halo-lounge-backend/controllers"
	"halo-lounge-backend/models"
	"halo-lounge-backend/routes"
	"halo-lounge-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.Order{},
		&models.OrderItem{},
		&models.ReminderLog{},
	)

	// Backstop for the check-then-insert booking path: two concurrent
	// bookings of the same slot cannot both commit.
	config.DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_service_slot
		ON appointments (service_id, date, start_time)
		WHERE status NOT IN ('CANCELLED', 'NO_SHOW') AND deleted_at IS NULL`)

	config.SeedDB()
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	controllers.Carts = cart.NewManager(cartPersistence())

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// cartPersistence picks the cart storage backend; without a writable
// directory carts stay in memory for the process lifetime
func cartPersistence() cart.Persistence {
	dir := os.Getenv("CART_STORAGE_DIR")
	if dir == "" {
		dir = "./data"
	}
	store, err := cart.NewFileStore(dir)
	if err != nil {
		log.Printf("Cart storage unavailable at %s, keeping carts in memory: %v", dir, err)
		return cart.NoopStore{}
	}
	return store
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
