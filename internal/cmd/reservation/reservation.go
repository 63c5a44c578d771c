// Package reservation parses reservation service flags and launches the service.
package reservation

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/booking.space/internal/platform/cmd"
	server "github.com/louisbranch/booking.space/internal/services/reservation/app"
)

// Config holds reservation command configuration.
type Config struct {
	Port int `env:"BOOKING_SPACE_RESERVATION_PORT" envDefault:"50051"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The reservation gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the reservation gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReservation, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
