package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"pagescroll/internal/config"
	"pagescroll/internal/discovery"
	"pagescroll/internal/eventbus"
	"pagescroll/internal/ui"
)

func main() {
	// Parse command line arguments
	var targetDir, configPath, logPath string
	var debug bool
	flag.StringVar(&targetDir, "dir", "", "Directory to load documents from")
	flag.StringVar(&targetDir, "d", "", "Directory to load documents from (shorthand)")
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&logPath, "log", "pagescroll.log", "Path to the log file")
	flag.BoolVar(&debug, "debug", false, "Log at debug level")
	flag.Parse()

	// Documents come from -d and any positional files or directories
	var roots []string
	if targetDir != "" {
		roots = append(roots, targetDir)
	}
	roots = append(roots, flag.Args()...)
	for i, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		roots[i] = abs
	}

	// Set up logging
	log.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		DisableColors:   true,
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, configErr := loadOrCreateConfig(configSvc)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)
	uiModel.SetReadyMarker(os.Getenv("PAGESCROLL_E2E_TEST") == "1")
	if len(roots) == 0 {
		for _, doc := range demoDocuments() {
			uiModel.AddDocument(doc)
		}
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	forwarder := newEventForwarder(100)
	for _, t := range []eventbus.EventType{
		eventbus.EventDocumentDiscovered,
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forwarder.Forward)
	}
	bus.Subscribe(eventbus.EventPageMoveFinished, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageMoveFinishedEvent); ok {
			log.WithFields(log.Fields{
				"page":     event.Index,
				"document": event.DocumentID,
			}).Debug("Page settled")
		}
	})

	// Start forwarding events to UI in background
	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		forwarder.Run(p.Send)
	}()

	if configErr != nil {
		bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Config error, using defaults: %v", configErr),
			Err:     configErr,
		})
	}

	// Start initial scan
	discoverySvc := discovery.NewDiscoveryService(bus)
	if len(roots) > 0 {
		if err := discoverySvc.StartScan(ctx, roots); err != nil {
			log.WithError(err).Error("Scan failed")
		}
	}

	// Quit the program when a signal cancels the context
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	log.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("Error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")

	// Cleanup
	discoverySvc.StopScan()
	forwarder.Close()
	<-forwardDone
	cancel()
}

// loadOrCreateConfig loads the config file, writing the defaults out when there is none.
// A broken file is left alone; the defaults are used and the load error returned.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(configSvc.Path()); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			log.WithError(err).Error("Error loading config, using defaults")
			return config.DefaultConfig(), err
		}
		log.WithField("path", configSvc.Path()).Info("Loaded config")
		return cfg, nil
	}

	log.WithField("path", configSvc.Path()).Info("Creating default config")
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.WithError(err).Warn("Failed to save config")
	}
	return cfg, nil
}
