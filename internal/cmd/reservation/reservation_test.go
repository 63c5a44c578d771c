package reservation

import (
	"flag"
	"testing"
)

func TestParseConfigDefaultsAndFlags(t *testing.T) {
	t.Setenv("BOOKING_SPACE_RESERVATION_PORT", "")

	fs := flag.NewFlagSet("reservation", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("port = %d, want default 50051", cfg.Port)
	}

	fs = flag.NewFlagSet("reservation", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-port", "60061"})
	if err != nil {
		t.Fatalf("parse config with flag: %v", err)
	}
	if cfg.Port != 60061 {
		t.Fatalf("port = %d, want flag override 60061", cfg.Port)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("BOOKING_SPACE_RESERVATION_PORT", "50099")

	fs := flag.NewFlagSet("reservation", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50099 {
		t.Fatalf("port = %d, want env value 50099", cfg.Port)
	}
}
