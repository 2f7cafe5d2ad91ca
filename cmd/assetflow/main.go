package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/assetflow/backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	ctx := context.Background()
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
