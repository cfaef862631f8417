package hid

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// newLogger builds a per-Device-Core logger tagged with a session id
// (for log correlation only — it is never transmitted to the kernel)
// and the caller's profile-id. Event-level (per 24-byte write) logging
// is deliberately never emitted; it would perturb the soft-real-time
// emission path.
func newLogger(profileID, kind string) (zerolog.Logger, uuid.UUID) {
	sessionID := uuid.New()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("session_id", sessionID.String()).
		Str("profile_id", profileID).
		Str("kind", kind).
		Logger()

	return logger, sessionID
}
