package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"mall-storefront/internal/client"
	"mall-storefront/internal/config"
	"mall-storefront/internal/server"
	"mall-storefront/internal/service"
	"mall-storefront/internal/store"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	prefsDB, err := store.InitPrefsDB(cfg.PrefsPath)
	if err != nil {
		log.Fatal("init prefs db: ", err)
	}
	prefs := store.NewPrefStore(prefsDB)

	prefs.Subscribe(func(loggedIn bool) {
		log.Println("session changed, logged in:", loggedIn)
	})

	apiClient := client.NewStorefrontClient(&cfg.API, prefs)

	notifier := service.NewToastHub(service.DefaultToastTTL)
	sessions := service.NewSessionService(apiClient, prefs)
	cart := service.NewCartService(apiClient)
	checkout := service.NewCheckoutService(apiClient, notifier, service.QRSettleDelay)
	orders := service.NewOrderService(apiClient, notifier)
	toggles := service.NewToggleService(apiClient, prefs, notifier)

	srv := server.NewServer(apiClient, prefs, sessions, cart, checkout, orders, toggles, notifier)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
