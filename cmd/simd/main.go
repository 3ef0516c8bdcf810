package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	pb "github.com/UditKarth/Reward-Modeling-Viz/gen/simpb"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/outcomes"
	"github.com/UditKarth/Reward-Modeling-Viz/internal/server"
	"google.golang.org/grpc"
)

// #region main
func main() {
	addr := envOr("SIM_ADDR", "localhost:50061")
	dbPath := envOr("SIM_DB", "outcomes.db")

	// Open the outcomes store. SIM_DB=off runs without persistence.
	var store *outcomes.Store
	if dbPath != "off" {
		var err error
		store, err = outcomes.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer store.Close()
	}

	srv, err := server.New(store)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterSimServiceServer(grpcServer, srv)

	log.Printf("[SIMD] listening on %s | db=%s", addr, dbPath)

	// Stop gracefully on SIGINT/SIGTERM so in-flight batches finish.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sig
		log.Printf("[SIMD] %v received, shutting down", s)
		grpcServer.GracefulStop()
	}()

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
