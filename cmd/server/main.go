package main // Entry point for the backend rental service

import (
	"log" // Logging library

	"github.com/joho/godotenv" // Loads .env files into the environment

	"github.com/iliyamo/car-rental-platform/internal/config"     // Environment config loader
	"github.com/iliyamo/car-rental-platform/internal/database"   // MySQL connection helper
	"github.com/iliyamo/car-rental-platform/internal/queue"      // Reservation event publishing and consumption
	"github.com/iliyamo/car-rental-platform/internal/repository" // Data access layer
	"github.com/iliyamo/car-rental-platform/internal/rpc"        // RPC surface of the service
	"github.com/iliyamo/car-rental-platform/internal/service"    // Business rules
)

func main() {
	_ = godotenv.Load() // Optional .env for local development

	cfg := config.LoadServer()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	cars := repository.NewCarRepo(db)
	reservations := repository.NewReservationRepo(db)

	svc := service.New(users, cars, reservations,
		service.WithEvents(queue.NewPublisher()))

	// The consumer drains reservation events into the audit log.  It
	// reconnects on broker failures and never takes the service down.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.RPC.Port
	log.Printf("rental service %q listening on %s (env=%s)", cfg.RPC.ServiceName, addr, cfg.Env)

	if err := rpc.Serve(addr, cfg.RPC.ServiceName, rpc.NewHandler(svc)); err != nil {
		log.Fatal(err)
	}
}
