// Package server wires the reservation runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	reservationv1 "github.com/louisbranch/booking.space/api/gen/go/reservation/v1"
	"github.com/louisbranch/booking.space/internal/platform/config"
	reservationservice "github.com/louisbranch/booking.space/internal/services/reservation/api/grpc/reservation"
	"github.com/louisbranch/booking.space/internal/services/reservation/storage/postgres"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBHost     string `env:"BOOKING_SPACE_DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"BOOKING_SPACE_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"BOOKING_SPACE_DB_USER" envDefault:"postgres"`
	DBPassword string `env:"BOOKING_SPACE_DB_PASSWORD"`
	DBName     string `env:"BOOKING_SPACE_DB_NAME" envDefault:"reservation"`
	DBSSLMode  string `env:"BOOKING_SPACE_DB_SSLMODE" envDefault:"disable"`
	DBMaxConns int    `env:"BOOKING_SPACE_DB_MAX_CONNS" envDefault:"5"`
}

func loadServerEnv() (serverEnv, error) {
	var cfg serverEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return serverEnv{}, err
	}
	return cfg, nil
}

func (e serverEnv) storeConfig() postgres.Config {
	return postgres.Config{
		Host:     e.DBHost,
		Port:     e.DBPort,
		User:     e.DBUser,
		Password: e.DBPassword,
		DBName:   e.DBName,
		SSLMode:  e.DBSSLMode,
		MaxConns: e.DBMaxConns,
	}
}

// LoadStoreConfig loads Postgres connection parameters from the environment.
func LoadStoreConfig() (postgres.Config, error) {
	env, err := loadServerEnv()
	if err != nil {
		return postgres.Config{}, err
	}
	return env.storeConfig(), nil
}

// Server hosts the reservation gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *postgres.Store
}

// New creates a configured reservation server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured reservation server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env, err := loadServerEnv()
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	store, err := postgres.Open(env.storeConfig())
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("open reservation postgres store: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := reservationservice.NewService(store)
	healthServer := health.NewServer()
	reservationv1.RegisterReservationServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("reservation.v1.ReservationService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a reservation server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("reservation server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases reservation server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close reservation store: %v", err)
		}
	}
}
