package main

import (
	"math/rand/v2"

	"rocinante-hid/internal/config"
	"rocinante-hid/internal/preset"
)

// resolvePair picks the mouse/keyboard preset pair the demo will use:
// an explicit name in cfg wins for that slot, otherwise it is filled
// from a randomly matched pair.
func resolvePair(cfg *config.Engine, rng *rand.Rand) (preset.Preset, preset.Preset) {
	randMouse, randKbd := preset.RandomMatchingPair(rng)

	m := randMouse
	if cfg.PreferredMouse != "" {
		if p, ok := preset.ByName(cfg.PreferredMouse); ok {
			m = p
		}
	}

	k := randKbd
	if cfg.PreferredKeyboard != "" {
		if p, ok := preset.ByName(cfg.PreferredKeyboard); ok {
			k = p
		}
	}

	return m, k
}

func mousePresetRate(p preset.Preset, rng *rand.Rand) int {
	return preset.SelectPollingRate(p, rng)
}

func kbdPresetRate(p preset.Preset, rng *rand.Rand) int {
	return preset.SelectPollingRate(p, rng)
}
