package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateBookingReference creates the human-readable reference shown to the
// user, distinct from the row id. Format: BK-<unix-millis>-<4-char suffix>.
func GenerateBookingReference() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return fmt.Sprintf("BK-%d-%s", time.Now().UnixMilli(), suffix)
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
