package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Eursukkul/transit-booking/config"
	"github.com/Eursukkul/transit-booking/internal/handler"
	"github.com/Eursukkul/transit-booking/internal/ledger"
	"github.com/Eursukkul/transit-booking/internal/repository"
	"github.com/Eursukkul/transit-booking/internal/service"
	"github.com/Eursukkul/transit-booking/pkg/database"
	"github.com/Eursukkul/transit-booking/pkg/rabbitmq"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		log.Printf("[Startup] console stopped: %v", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		storeDriver  string
		servicesFile string
		bookingsFile string
		envFile      string
		showHelp     bool
	)
	flags := pflag.NewFlagSet("transit-booking", pflag.ExitOnError)
	flags.StringVar(&storeDriver, "store", "", "storage backend: file or postgres (overrides STORE_DRIVER)")
	flags.StringVar(&servicesFile, "services-file", "", "services data file (overrides SERVICES_FILE)")
	flags.StringVar(&bookingsFile, "bookings-file", "", "bookings data file (overrides BOOKINGS_FILE)")
	flags.StringVar(&envFile, "env-file", "", "dotenv file to load instead of .env")
	flags.BoolVarP(&showHelp, "help", "h", false, "show this help")
	flags.Parse(os.Args[1:])

	if showHelp {
		fmt.Fprintln(os.Stderr, "Usage: transit-booking [flags]")
		flags.PrintDefaults()
		return nil
	}

	var cfg *config.Config
	if envFile != "" {
		cfg = config.Load(envFile)
	} else {
		cfg = config.Load()
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	if servicesFile != "" {
		cfg.ServicesFile = servicesFile
	}
	if bookingsFile != "" {
		cfg.BookingsFile = bookingsFile
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Startup] invalid configuration: %v", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[Startup] failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx := context.Background()

	var persister repository.Persister
	switch cfg.StoreDriver {
	case config.StorePostgres:
		persister = repository.NewGormPersister(database.NewPostgresDB(cfg.DSN()))
	default:
		persister = repository.NewFilePersister(cfg.ServicesFile, cfg.BookingsFile)
	}

	// RabbitMQ publisher is optional; a nil interface disables notifications.
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		mqPublisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("[Startup] RabbitMQ unavailable, notifications disabled: %v", err)
		} else {
			defer mqPublisher.Close()
			publisher = mqPublisher
		}
	}

	store := repository.NewRecordStore(persister)
	if err := store.Load(ctx); err != nil {
		log.Printf("[Startup] could not persist default services: %v", err)
	}
	for _, d := range ledger.Audit(store.Services(), store.Bookings()) {
		log.Printf("[Startup] inventory mismatch: %s", d)
	}

	bookingSvc := service.NewBookingService(store, publisher)
	catalogSvc := service.NewCatalogService(store, publisher)

	console := handler.NewConsole(bookingSvc, catalogSvc, store, cfg.AdminPassword, os.Stdin, os.Stdout)
	return console.Run(ctx)
}
