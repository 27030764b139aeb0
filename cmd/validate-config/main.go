// Command validate-config loads the environment the same way the app does
// and prints what it found, with secrets masked.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"aicoach/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("note: .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config validation failed:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("configuration:")
	fmt.Printf("  - OpenRouter API key: %s\n", maskToken(cfg.AI.APIKey))
	fmt.Printf("  - Model: %s\n", cfg.AI.Model)
	fmt.Printf("  - Base URL: %s\n", cfg.AI.BaseURL)
	fmt.Printf("  - DB path: %s\n", cfg.DB.Path)
	fmt.Printf("  - Log level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log format: %s\n", cfg.Logger.Format)

	if cfg.AI.APIKey == "" {
		fmt.Println("warning: OPENROUTER_API_KEY is not set; the app will refuse to start")
		os.Exit(1)
	}
}

func maskToken(token string) string {
	if token == "" {
		return "<not set>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
