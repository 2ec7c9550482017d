package main

import (
	"log"

	"EmpTrack/CronJobs"
	"EmpTrack/FiberConfig"
	"EmpTrack/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := FiberConfig.LoadConfig()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := Models.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sweeper := CronJobs.NewLedgerSweeper(db)
	if err := sweeper.Start(); err != nil {
		log.Fatal("Failed to start time log sweeper: ", err)
	}
	defer sweeper.Stop()

	if err := FiberConfig.Run(db, cfg); err != nil {
		log.Fatal(err)
	}
}
