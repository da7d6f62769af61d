package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/tempo/internal/cli"
	"github.com/alexanderramin/tempo/internal/config"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/intelligence"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/search"
	"github.com/alexanderramin/tempo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.tempo/tempo.db
	dbPath := os.Getenv("TEMPO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempo", "tempo.db")
	}

	cfgPath := os.Getenv("TEMPO_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteItemRepo(database)

	app := &cli.App{
		Items:  service.NewItemService(itemRepo),
		Week:   service.NewWeekService(itemRepo),
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// LLM-backed features are wired only when enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)

		app.Decompose = intelligence.NewDecomposeService(client)

		store, err := search.NewVecStore(database)
		if err != nil {
			return fmt.Errorf("opening vector store: %w", err)
		}
		app.Search = search.NewService(store, client, itemRepo)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
