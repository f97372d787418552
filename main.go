package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kwatson/inkwell/internal/auth"
	"github.com/kwatson/inkwell/internal/config"
	"github.com/kwatson/inkwell/internal/creds"
	"github.com/kwatson/inkwell/internal/docs"
	"github.com/kwatson/inkwell/internal/handlers"
	"github.com/kwatson/inkwell/internal/middleware"
	"github.com/kwatson/inkwell/internal/render"
	"github.com/kwatson/inkwell/internal/session"
	"github.com/kwatson/inkwell/internal/store"
	"github.com/kwatson/inkwell/internal/store/sqlstore"
	"github.com/kwatson/inkwell/internal/store/yamlstore"
)

var addr = flag.String("addr", "", "http service address (overrides ADDR)")

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	if *addr != "" {
		cfg.Addr = *addr
	}

	var users store.UserStore
	switch cfg.UserStoreDriver {
	case "sqlite3":
		s, err := sqlstore.New("sqlite3", cfg.UserStoreDSN)
		if err != nil {
			log.Fatal(err)
		}
		defer s.Close()
		users = s
	default:
		users = yamlstore.New(cfg.UsersFile)
	}

	repo, err := docs.NewRepository(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	pages := handlers.NewPages()
	sessions := &middleware.SessionLoader{
		Store:  session.NewStore(),
		Signer: auth.NewSigner(cfg.SecretKey),
	}
	docHandler := &handlers.DocHandler{Repo: repo, Renderer: render.New(), Pages: pages}
	authHandler := &handlers.AuthHandler{Creds: creds.NewService(users), Pages: pages}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handlers.NewRouter(docHandler, authHandler, sessions),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		s := <-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		log.Println("shutting down:", s)
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Println("Starting server on", cfg.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("HTTP server ListenAndServe: %v", err)
	}

	<-idleConnsClosed
}
