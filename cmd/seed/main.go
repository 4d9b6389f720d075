package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/bachelorhub-backend/internal/seed"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/db"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"github.com/angelmondragon/bachelorhub-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	_ = godotenv.Load()

	xlsx := flag.String("xlsx", "", "workbook with Housing, Shops and Maids sheets; the built-in sample is used when empty")
	keep := flag.Bool("keep", false, "keep existing listings instead of clearing them first")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(context.Background(), logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})
	ctx := logg.WithFields(context.Background(), map[string]any{"env": cfg.App.Env, "xlsx": *xlsx})

	data := seed.Sample()
	if *xlsx != "" {
		f, err := os.Open(*xlsx)
		requireResource(ctx, logg, "workbook", err)
		data, err = seed.ReadWorkbook(f)
		_ = f.Close()
		requireResource(ctx, logg, "workbook", err)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	requireResource(ctx, logg, "migrations", migrate.MaybeRunDev(ctx, cfg, logg, dbClient))

	seeder, err := seed.NewSeeder(dbClient.DB(), logg)
	requireResource(ctx, logg, "seeder", err)

	result, err := seeder.Run(ctx, data, seed.Options{Clear: !*keep})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed:\n%v\n", err)
		os.Exit(1)
	}
	fmt.Printf("seeded %d housing, %d shops, %d maids\n", result.Housing, result.Shops, result.Maids)
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
