package main

import (
	"log"

	"github.com/itemhub/itemhub/internal/config"
	"github.com/itemhub/itemhub/internal/db"
	"github.com/itemhub/itemhub/internal/mail"
	"github.com/itemhub/itemhub/internal/model"
	"github.com/itemhub/itemhub/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("missing environment variables: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.Item{}, &model.ItemImage{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	sender, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	if err != nil {
		log.Fatalf("mail client error: %v", err)
	}

	srv := server.New(cfg, conn, sender)
	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
