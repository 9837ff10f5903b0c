package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"healthmate/database"
	"healthmate/internal/config"
	"healthmate/internal/logger"
	"healthmate/internal/utils"

	"gorm.io/gorm"
)

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedEmail := seedCmd.String("email", utils.DefaultDemoEmail, "Demo account email")
	seedPassword := seedCmd.String("password", utils.DefaultDemoPassword, "Demo account password (used only when the account is created)")
	days := seedCmd.Int("days", utils.DefaultDemoDays, "Number of days of vitals to generate")
	seed := seedCmd.Int64("seed", 0, "Random seed for the vitals series (0 = time based)")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearEmail := clearCmd.String("email", utils.DefaultDemoEmail, "Account to remove with all of its records")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	config.LoadDotEnv(".env", "../.env", "../../.env")
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch os.Args[1] {
	case "seed":
		_ = seedCmd.Parse(os.Args[2:])
		db := connect(cfg, log)
		defer database.Close(db)

		res, err := utils.SeedDemo(context.Background(), db, utils.SeedOptions{
			Email:    *seedEmail,
			Password: *seedPassword,
			Days:     *days,
			Seed:     *seed,
		})
		if err != nil {
			log.Fatal("seeding failed", "error", err)
		}
		log.Info("seeded demo data",
			"email", res.User.Email,
			"user_id", res.User.ID,
			"created", res.Created,
			"vitals", res.Vitals,
			"messages", res.Messages,
		)

	case "clear":
		_ = clearCmd.Parse(os.Args[2:])
		db := connect(cfg, log)
		defer database.Close(db)

		res, err := utils.ClearDemo(context.Background(), db, *clearEmail)
		if err != nil {
			log.Fatal("clear failed", "email", *clearEmail, "error", err)
		}
		log.Info("removed account",
			"email", *clearEmail,
			"vitals", res.Vitals,
			"reports", res.Reports,
			"chats", res.Chats,
			"messages", res.Messages,
		)

	case "help", "-h", "--help":
		printHelp()

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func connect(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run database migrations", "error", err)
	}
	return db
}

func printHelp() {
	fmt.Println(`HealthMate demo data tool

Usage:
  seed seed  [--email EMAIL] [--password PASSWORD] [--days N] [--seed N]
  seed clear [--email EMAIL]

Commands:
  seed    Create the demo account if missing and add a vitals series and a chat
  clear   Delete an account with its vitals, reports and chats`)
}
