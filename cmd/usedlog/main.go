package main

import (
	"fmt"
	"os"

	"github.com/Nao-Mk2/usedlog/cmd"
	"github.com/Nao-Mk2/usedlog/internal/logging"
	"github.com/Nao-Mk2/usedlog/internal/store"
)

func main() {
	logging.Setup(false)

	cfg, err := cmd.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// create db file if it doesn't exist
	if err := store.NewFile(cfg.DBPath).Ensure(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	root := cmd.NewRootCommand(cmd.Deps{Config: cfg, Stdout: os.Stdout}, os.Args[1:])
	if err := root.Execute(); err != nil {
		// Usage was already printed for unknown verbs; flag errors still carry detail
		if err != cmd.ErrUnknownCommand {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
