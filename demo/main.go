package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"shortlaunch/config"
	"shortlaunch/demo/tui"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.LoadClient()

	p := tea.NewProgram(tui.NewModel(cfg.APIBaseURL, cfg.DefaultHashtags))
	if _, err := p.Run(); err != nil {
		log.Fatalf("client error: %v", err)
	}
}
