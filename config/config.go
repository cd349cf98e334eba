package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Tuning variables. These aren't user facing but useful for adjusting
// playback pacing and server limits without rebuilding.
var (
	// TickRate paces live playback, in ticks per second.
	TickRate = rate.Limit(getEnvInt("TICK_RPS", 5))
	// TickBurst is the playback limiter burst size.
	TickBurst = getEnvInt("TICK_BURST", 1)
	// FrameBacklog caps the frames buffered per websocket viewer.
	FrameBacklog = getEnvInt("FRAME_BACKLOG", 64)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
