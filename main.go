package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fpl-onboarding/pkg/api"
	"fpl-onboarding/pkg/clients/fpl"
	"fpl-onboarding/pkg/config"
	"fpl-onboarding/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded, using environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// The team lookup collaborator is optional; without it team names are
	// only checked for presence and logged.
	var teamLookup services.TeamLookup
	if cfg.FPLLookupEnabled {
		teamLookup = fpl.NewClient(cfg.FPLBaseURL, cfg.FPLTimeout)
		log.Printf("FPL team lookup enabled against %s", cfg.FPLBaseURL)
	}

	// Initialize services
	flows := services.NewFlowStore(cfg.SessionTTL)
	signupService := services.NewSignupService(services.PrototypeAuthenticator{})
	teamService := services.NewTeamService(teamLookup, log.Default())

	gin.SetMode(cfg.GinMode)

	handlers := api.NewHandlers(flows, signupService, teamService)
	router := api.NewRouter(handlers, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		server.Close()
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Error starting server: %v", err)
	}
	log.Println("Server stopped")
}
