// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"atlas/internal/ai"
	"atlas/internal/config"
	httptransport "atlas/internal/http"
	"atlas/internal/images"
	"atlas/internal/infra"
	atlasmaps "atlas/internal/maps"
	"atlas/internal/modules/aiusage"
	"atlas/internal/modules/trip"
	"atlas/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// The generator is only constructed when a key is present; without one
	// the trip service answers every request with a configuration error
	// before reaching the generator.
	var generator trip.Generator
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		generator = provider
	} else {
		log.Printf("GEMINI_API_KEY not set; trip generation will be rejected")
	}

	var geocoder trip.Geocoder
	if cfg.Maps.APIKey != "" {
		geo, err := atlasmaps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = geo
	}

	var verifier infra.TokenVerifier
	var userSvc *user.Service
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
		userSvc = user.NewService(user.NewStore(dbPool))
	} else {
		log.Printf("ATLAS_FIREBASE_PROJECT_ID not set; user routes disabled")
	}

	imageClient := images.NewClient(cfg.Images.UnsplashKey, redisClient)
	usageSvc := aiusage.NewService(aiusage.NewStore(dbPool))

	tripStore := trip.NewStore(dbPool)
	tripSvc := trip.NewService(tripStore, generator, imageClient, geocoder, usageSvc, trip.Credentials{
		GeminiKey:   cfg.AI.GeminiKey,
		UnsplashKey: cfg.Images.UnsplashKey,
	})

	router := httptransport.NewRouter(tripSvc, userSvc, verifier)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
