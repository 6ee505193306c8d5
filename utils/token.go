package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateTokenNumber produces the human-facing queue ticket printed on a
// booking, e.g. "GB-7F3A2C". It survives reschedules unchanged.
func GenerateTokenNumber() string {
	id := uuid.New()
	return fmt.Sprintf("GB-%s", strings.ToUpper(id.String()[:6]))
}
