package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/peterh/liner"

	"github.com/brewcode/brewcode/internal/config"
	"github.com/brewcode/brewcode/internal/db"
	"github.com/brewcode/brewcode/internal/recipe"
)

func main() {
	// .env is optional; explicit env vars win either way.
	_ = godotenv.Load()
	cfg := config.Load()

	var recipes *recipe.Service
	gdb, err := db.ConnectAndMigrate(cfg.DatabaseDSN)
	if err != nil {
		fmt.Println("Recipe storage unavailable:", err)
	} else {
		recipes = recipe.New(gdb)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".brewcode_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Welcome to BrewCode!")
	if err := mainMenu(line, recipes); err != nil {
		fmt.Println("Error:", err)
	}
	fmt.Println("Exiting BrewCode. Cheers!")
}
