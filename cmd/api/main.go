package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/config"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/pkg/db"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/pkg/log"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/repository"
	th "github.com/atharvrajmane/channel-partner-form-backend/internal/transport/http"
	"github.com/atharvrajmane/channel-partner-form-backend/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log.Init(cfg.LogLevel)
	defer log.Sync()

	pool, err := db.NewPool(cfg.PGDSN)
	if err != nil {
		log.Fatalw("db connect", "err", err)
	}
	defer pool.Close()

	repo := repository.NewPgPartnerRepo(pool)
	uc := usecase.NewPartnerUC(repo)
	h := th.NewHandler(uc)
	r := th.NewRouter(h, cfg.CORSAllow)

	addr := ":" + cfg.Port
	log.Infow("listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Errorw("server stopped", "err", err)
		os.Exit(1)
	}
}
