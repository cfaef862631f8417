// Command hidctl is a small demonstration client that opens a
// mouse and keyboard Device Core, runs a short scripted input
// sequence, and closes both. It exercises the public API end to end;
// it is not an orchestrator and carries no gameplay logic.
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"rocinante-hid/internal/config"
	"rocinante-hid/internal/hid"
	"rocinante-hid/keyboard"
	"rocinante-hid/mouse"
)

func main() {
	pollingHz := flag.Int("polling-hz", 0, "polling rate override in Hz (0 = preset default selection)")
	profileID := flag.String("profile-id", "", "profile id override (empty = config default)")
	logLevel := flag.String("log-level", "", "log level override (empty = config value)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	zerolog.SetGlobalLevel(parseLevel(level))

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	profile := cfg.DefaultProfileID
	if *profileID != "" {
		profile = *profileID
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0xda7a))
	mousePreset, kbdPreset := resolvePair(cfg, rng)

	mouseHz := *pollingHz
	if mouseHz == 0 {
		mouseHz = mousePresetRate(mousePreset, rng)
	}
	kbdHz := *pollingHz
	if kbdHz == 0 {
		kbdHz = kbdPresetRate(kbdPreset, rng)
	}

	m, err := mouse.New(mousePreset, mouseHz, profile, nil, hid.WithHubPort(cfg.HubPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open mouse device")
	}
	defer m.Close()

	kbd, err := keyboard.New(kbdPreset, kbdHz, profile, hid.WithHubPort(cfg.HubPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open keyboard device")
	}
	defer kbd.Close()

	log.Info().
		Str("mouse", mousePreset.Name).
		Str("keyboard", kbdPreset.Name).
		Str("profile_id", profile).
		Msg("devices created, running demo sequence")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runDemo(ctx, m, kbd); err != nil {
		log.Warn().Err(err).Msg("demo sequence ended early")
	}

	log.Info().Msg("demo sequence complete, closing devices")
}

func runDemo(ctx context.Context, m *mouse.Mouse, kbd *keyboard.Keyboard) error {
	if err := m.MoveBy(120, -40); err != nil {
		return err
	}

	if err := m.Click(ctx, 0x110, 40); err != nil {
		return err
	}

	if err := m.Scroll(-3); err != nil {
		return err
	}

	for _, r := range "hello rocinante" {
		if err := kbd.TypeChar(ctx, r, 30); err != nil {
			return err
		}
		if err := sleepCancellable(ctx, 15*time.Millisecond); err != nil {
			return err
		}
	}

	return nil
}

func sleepCancellable(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}
