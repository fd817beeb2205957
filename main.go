package main

import (
	"Countdown/audio"
	"Countdown/timer"
	"Countdown/ui"
	"embed"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

//go:embed assets/*
var content embed.FS

func main() {
	fyneApp := app.NewWithID("com.countdown.app")

	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		log.Printf("Failed to load icon. %v", err)
	}

	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	cfg, err := timer.LoadConfig(content, timer.ConfigPath)
	if err != nil {
		log.Printf("Using default timer config. %v", err)
	}
	log.Printf("Timer set to %s.", timer.FormatTime(cfg.InitialSeconds))

	player := audio.NewSpeaker()
	player.LoadCues(content, "assets", cfg.CueFiles())

	a := NewAppManager(cfg, player, timer.SystemClock)

	w, screen := ui.CreateMainWindow(a, fyneApp, cfg.DraftMaxLength)
	go a.forwardEvents(screen)

	w.SetOnClosed(func() {
		a.Shutdown()
		player.Close()
	})

	w.ShowAndRun()
}
