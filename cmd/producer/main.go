package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cardwise/card-assistant/internal/models"
	red "github.com/cardwise/card-assistant/internal/redis"
	setuplogger "github.com/cardwise/card-assistant/internal/setup/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to an extracted text document")
	name := flag.String("name", "", "Document name (defaults to the file base name)")
	stream := flag.String("stream", "card-documents", "Stream name")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -file <path> [-name <document name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = setuplogger.New(os.Getenv("LOG_LEVEL")).
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*file, *name, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(file, name, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if name == "" {
		name = filepath.Base(file)
	}

	event := models.DocumentIngestEvent{
		FileName:   name,
		Text:       string(data),
		ReceivedAt: time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := red.Connect(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("file", name).Msg("Published successfully!")
	return nil
}
