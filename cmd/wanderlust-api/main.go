// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"wanderlust/internal/ai"
	"wanderlust/internal/config"
	httptransport "wanderlust/internal/http"
	"wanderlust/internal/http/handlers"
	"wanderlust/internal/infra"
	"wanderlust/internal/maps"
	"wanderlust/internal/modules/plan"
	"wanderlust/internal/modules/trips"
	"wanderlust/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	var grounder plan.Grounder
	var mapImage handlers.MapImageFetcher
	if cfg.Maps.APIKey != "" {
		places, err := maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		staticMaps, err := maps.NewStaticMapService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		grounder = places
		mapImage = staticMaps
	} else {
		log.Print("MAPS_API_KEY not set; place grounding and offline maps disabled")
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	usageSvc := usage.NewService(usage.NewStore(dbPool))
	tripsSvc := trips.NewService(trips.NewRedisStorage(redisClient))
	planSvc := plan.NewService(provider, grounder)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Plan:              planSvc,
		Trips:             tripsSvc,
		Usage:             usageSvc,
		AI:                provider,
		MapImage:          mapImage,
		GeneratePerMinute: cfg.RateLimit.GeneratePerMinute,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
