package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/config"
	"todotui/internal/store"
	_ "todotui/internal/store/memory"
	_ "todotui/internal/store/sqlite"
	"todotui/internal/tui"
)

// demoTitles seed the list when -demo is given, so there is something to
// poke at in an otherwise empty session
var demoTitles = []string{
	"Buy milk",
	"Walk the dog",
	"Write trip report",
	"Book dentist appointment",
}

func main() {
	backend := flag.String("backend", "", "store backend to use (memory, sqlite)")
	demo := flag.Bool("demo", false, "seed the list with sample tasks")
	initConfig := flag.Bool("init-config", false, "write the default config file and exit")
	flag.Parse()

	if *initConfig {
		if err := config.Default().Save(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Wrote default config to ~/.config/todo-tui/config.toml")
		return
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		cfg.Store.Backend = *backend
	}

	// Create the task store
	st, err := store.Create(cfg.Store.Backend)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if *demo {
		for _, title := range demoTitles {
			if _, err := st.Add(title); err != nil {
				log.Fatal(err)
			}
		}
	}

	// Create model
	model, err := tui.New(st, cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Start the program
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
