package main

import (
	"log"

	"github.com/gorilla/mux"

	"countryhub/internal/config"
	"countryhub/internal/logger"
	"countryhub/internal/routing"
	"countryhub/internal/sqlite"
	"countryhub/pkg/middleware"
	"countryhub/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sqlite.Load(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("load db: %v", err)
	}
	defer db.Close()

	logger := logger.Load()

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recover(logger))
	api.Use(middleware.Auth(session.NewSQLStore(db), cfg.CookieName, logger))

	routing.InitRoutes(api, db, cfg, logger)
	routing.StartServer(r, cfg.Addr)
}
