package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"euchre/internal/config"
	"euchre/internal/logger"
	"euchre/internal/sound"
	"euchre/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML rules/table file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			log.Printf("crash details written to %s", logger.GetLogPath())
			panic(r)
		}
	}()

	sounds := sound.NewManager()
	if cfg.Rules.SoundOn {
		if err := sounds.Init(); err != nil {
			// No audio device is not fatal; play on silently.
			logger.LogError("sound init: %v", err)
		}
	}
	defer sounds.Close()

	p := tea.NewProgram(ui.New(cfg, sounds), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
