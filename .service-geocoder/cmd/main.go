package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolaev/service-geocoder/internal/rpc/resolve"
	"github.com/nikolaev/service-geocoder/internal/usecase/hashgeo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	defaultAddr = ":50051"
	centerLat   = 52.52
	centerLon   = 13.405
)

func main() {
	addr := os.Getenv("GEOCODER_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen %s: %v", addr, err)
	}

	server := grpc.NewServer()
	server.RegisterService(&resolve.ServiceDesc, resolve.New(hashgeo.New(centerLat, centerLon)))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
		<-sig
		healthServer.Shutdown()
		server.GracefulStop()
	}()

	log.Printf("geocoder stub listening on %s", addr)
	if err := server.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
