package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"countryhub/internal/config"
	"countryhub/pkg/country"
	"countryhub/pkg/handlers"
	"countryhub/pkg/session"
	"countryhub/pkg/user"
)

func InitRoutes(api *mux.Router, db *sql.DB, cfg *config.Config, logger *slog.Logger) {

	sessionStore := session.NewSQLStore(db)

	userService := user.NewService(user.NewSQLRepo(db))
	sessionManager := session.NewManager(sessionStore, userService, cfg.KeyTTL, cfg.AllowExpiredKeyDeletion)

	authHandler := handlers.NewAuthHandler(userService, sessionManager, logger, cfg.CookieName)

	countryClient := country.NewClient(cfg.CountryAPIBaseURL, cfg.CountryAPITimeout)
	countryHandler := handlers.NewCountryHandler(countryClient, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("/auth").Subrouter()
	countryRouter := api.PathPrefix("/countries").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/register", authHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", authHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/logout", authHandler.Logout).Methods("POST").Name("logout")

	/* key management routers */
	authRouter.HandleFunc("/generateNewKey/{userId:[a-zA-Z0-9]+}", authHandler.GenerateNewKey).Methods("POST")
	authRouter.HandleFunc("/apiKeys/{userId:[a-zA-Z0-9]+}", authHandler.ListKeys).Methods("GET")
	authRouter.HandleFunc("/deleteKey", authHandler.DeleteKey).Methods("DELETE")

	/* country routers */
	countryRouter.HandleFunc("/{country}", countryHandler.GetCountry).Methods("GET")
}

func StartServer(r *mux.Router, addr string) {
	fmt.Printf("\n\033[32m The server is running on http://localhost%s \033[0m\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
