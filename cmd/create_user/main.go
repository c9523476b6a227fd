package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"profilehub/pkg/app"
	"profilehub/pkg/config"
	"profilehub/pkg/database"
	"profilehub/pkg/profilesync"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Println("usage: go run ./cmd/create_user <full-name> <phone> <email> <password>")
		os.Exit(2)
	}
	req := profilesync.SignupRequest{
		FullName:    os.Args[1],
		PhoneNumber: os.Args[2],
		Email:       os.Args[3],
		Password:    os.Args[4],
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	db, err := database.Open(cfg.DatabaseDSN, false)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	ctx := context.Background()
	a, err := app.Build(ctx, cfg, db, app.Options{})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer a.Close()

	id, err := a.Sync.CreateAccount(ctx, req)
	if errors.Is(err, profilesync.ErrEmailInUse) {
		fmt.Printf("account %s already exists\n", req.Email)
		return
	}
	if err != nil {
		log.Fatalf("failed to create account: %v", err)
	}
	fmt.Printf("created account %s id=%s\n", req.Email, id)
}
