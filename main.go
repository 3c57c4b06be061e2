package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"docbot/bot"
	"docbot/document"
	"docbot/pdf"
	"docbot/repository"
	"docbot/service"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	calcRepo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Printf("using redis cache at %s", addr)
	}

	loanService := service.NewLoanService(calcRepo, cache)

	assets := document.Assets{
		LogoPath:      env("LOGO_PATH", "image1.png"),
		SignaturePath: env("SIGNATURE_PATH", "image2.png"),
		IconPath:      env("SMALL_LOGO_PATH", "image3.png"),
		PlaceName:     env("PLACE_NAME", document.DefaultPlace),
	}
	for _, path := range []string{assets.LogoPath, assets.SignaturePath, assets.IconPath} {
		if _, err := os.Stat(path); err != nil {
			log.Printf("Warning: asset %s unavailable, documents will omit it", path)
		}
	}

	builder := document.NewBuilder(pdf.NewEngine(), assets)

	transport, err := bot.NewTelegramTransport(token)
	if err != nil {
		log.Fatalf("telegram authorization failed: %v", err)
	}
	log.Printf("authorized as @%s", transport.Username())

	machine := bot.NewMachine(loanService, builder, transport)

	rateLimiter := bot.NewRateLimiter(20, time.Minute)
	defer rateLimiter.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		transport.Run(ctx, bot.Throttled(rateLimiter, transport, machine.HandleMessage))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down bot...")

	cancel()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		log.Println("Warning: update loop did not stop in time")
	}

	log.Println("Bot exited")
}
