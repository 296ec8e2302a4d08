package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"chartfix/internal/app"
	"chartfix/internal/config"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	noBackup := flag.Bool("no-backup", false, "do not create .bak copies before rewriting")
	workers := flag.Int("workers", 1, "parallel file workers")
	prettyOut := flag.Bool("pretty", false, "re-indent rewritten JSON documents")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	root := flag.Arg(0)
	if root == "" {
		root = "."
	}

	// Flags feed the env so config.Init sees one source of truth
	os.Setenv("CHARTFIX_ROOT", root)
	os.Setenv("CHARTFIX_BACKUP", strconv.FormatBool(!*noBackup))
	os.Setenv("CHARTFIX_WORKERS", strconv.Itoa(*workers))
	os.Setenv("CHARTFIX_PRETTY", strconv.FormatBool(*prettyOut))
	os.Setenv("CHARTFIX_LOG_LEVEL", *logLevel)

	// Load .env (optional)
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setupLog(cfg.LogLevel)

	// Bad root is the one fatal configuration error
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		log.Fatalf("invalid root directory: %s", cfg.Root)
	}

	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	if _, err := a.Run(ctx); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}

func setupLog(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
