package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/you/go-ride-agent/internal/config"
	"github.com/you/go-ride-agent/internal/geocode"
	"github.com/you/go-ride-agent/internal/metrics"
	"github.com/you/go-ride-agent/internal/providers"
	"github.com/you/go-ride-agent/internal/render"
	"github.com/you/go-ride-agent/internal/service"
)

func main() {
	var noMock bool
	flag.BoolVar(&noMock, "no-mock", false, "disable the mock quote fallback")
	flag.Parse()

	if err := run(!noMock); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func run(useMockIfNeeded bool) error {
	cfg := config.Load()

	// Warnings only, and on stderr: the transcript owns stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	geocoder := geocode.NewNominatim(cfg.GeocodeURL, cfg.GeocodeUserAgent, logger)
	prov := []providers.RideProvider{
		providers.NewLyft(cfg),
		providers.NewUber(cfg),
	}
	svc := service.NewRideService(geocoder, prov, logger,
		metrics.NewMetrics(prometheus.NewRegistry()))

	req, err := promptUser(os.Stdin)
	if err != nil {
		return err
	}

	res, err := svc.BestRide(context.Background(), req, useMockIfNeeded)
	if err != nil {
		return err
	}

	fmt.Print("\n" + render.CLI(res))
	return nil
}

// promptUser collects the trip interactively. Pickup and dropoff re-prompt
// until non-empty; vehicle need defaults to "cheapest".
func promptUser(in *os.File) (providers.RideRequest, error) {
	fmt.Println("\nRide Agent (finished core + mock mode, real APIs later)")
	fmt.Println()

	sc := bufio.NewScanner(in)

	pickup, err := promptNonEmpty(sc, "Pickup location: ", "Pickup location (can't be empty): ")
	if err != nil {
		return providers.RideRequest{}, err
	}
	dropoff, err := promptNonEmpty(sc, "Dropoff location: ", "Dropoff location (can't be empty): ")
	if err != nil {
		return providers.RideRequest{}, err
	}

	fmt.Print("Vehicle need (cheapest / XL / black / lux / 6 seats) [default: cheapest]: ")
	need := ""
	if sc.Scan() {
		need = strings.TrimSpace(sc.Text())
	}
	if need == "" {
		need = "cheapest"
	}

	return providers.RideRequest{Pickup: pickup, Dropoff: dropoff, VehicleNeed: need}, nil
}

func promptNonEmpty(sc *bufio.Scanner, prompt, reprompt string) (string, error) {
	fmt.Print(prompt)
	for sc.Scan() {
		if v := strings.TrimSpace(sc.Text()); v != "" {
			return v, nil
		}
		fmt.Print(reprompt)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("stdin closed before input was complete")
}
