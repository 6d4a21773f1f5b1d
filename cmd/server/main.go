package main

import (
	"context"
	"log"
	nethttp "net/http"
	"os"
	"strings"

	httpadapter "purrhaven/internal/adapter/http"
	metricsinmem "purrhaven/internal/adapter/metrics/inmemory"
	wsadapter "purrhaven/internal/adapter/notify/ws"
	gormrepo "purrhaven/internal/adapter/repo/gorm"
	memrepo "purrhaven/internal/adapter/repo/memory"
	"purrhaven/internal/app/ports"
	"purrhaven/internal/app/session"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	repo, journal, txManager := mustBuildRepos()
	recorder := metricsinmem.NewRecorder()
	hub := wsadapter.NewHub(nil)

	manager := session.NewManager(session.Deps{
		Repo:        repo,
		Tx:          txManager,
		Journal:     journal,
		NotifierFor: hub.PublisherFor,
		Metrics:     recorder,
	})

	wsAddr := strEnv("PURRHAVEN_WS_ADDR", ":8081")
	wsHandler := wsadapter.NewHandler(hub, manager, nil)
	go func() {
		mux := nethttp.NewServeMux()
		mux.HandleFunc("/ws", wsHandler.Handle)
		log.Printf("purrhaven websocket listening on %s", wsAddr)
		if err := nethttp.ListenAndServe(wsAddr, mux); err != nil {
			log.Fatalf("websocket server: %v", err)
		}
	}()

	h := httpadapter.Handler{
		Sessions: manager,
		Journal:  journal,
		Metrics:  recorder,
	}

	addr := strEnv("PURRHAVEN_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("purrhaven server listening on %s", addr)
	s.Spin()

	manager.Close(context.Background())
}

func mustBuildRepos() (ports.SaveRepository, ports.MilestoneJournal, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("PURRHAVEN_DB_DSN"))
	if dsn == "" {
		log.Println("PURRHAVEN_DB_DSN not set, using in-memory saves")
		store := memrepo.NewStore()
		return memrepo.NewSaveRepo(store), memrepo.NewJournalRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	dir := strEnv("PURRHAVEN_MIGRATIONS_DIR", "./migrations")
	if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormrepo.NewSaveRepo(db), gormrepo.NewJournalRepo(db), gormrepo.NewTxManager(db)
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
