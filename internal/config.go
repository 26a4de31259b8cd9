package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host      string `env:"HOST,default=localhost"`
	Port      int    `env:"PORT,default=8080"`
	DebugPort int    `env:"DEBUG_PORT,default=8081"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`

	BannedWordsPath string `env:"BANNED_WORDS_PATH"`
	MaskCharacter   string `env:"MODERATION_MASK_CHARACTER,default=*"`

	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE,default=256"`
	LookupMaxTries    uint          `env:"LOOKUP_MAX_TRIES,default=3"`
	LookupTimeout     time.Duration `env:"LOOKUP_TIMEOUT,default=2s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=5s"`
}

// MaskRune validates that the configured mask is a single character.
func MaskRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_MASK_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
