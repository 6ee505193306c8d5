package reschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildNoticeMessage(t *testing.T) {
	notice := Notice{
		BookingID:    7,
		ClientName:   "Amira",
		ClientPhone:  "+15550100",
		ProviderName: "Rosa's Salon",
		OriginalTime: time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		NewTime:      time.Date(2026, 3, 2, 11, 45, 0, 0, time.UTC),
		TokenNumber:  "GB-B2",
	}

	msg := BuildNoticeMessage(notice)

	assert.Contains(t, msg, "Amira")
	assert.Contains(t, msg, "Rosa's Salon")
	assert.Contains(t, msg, "Mar 2, 2026 at 11:00 AM")
	assert.Contains(t, msg, "Mar 2, 2026 at 11:45 AM")
	assert.Contains(t, msg, "Previous appointment ran overtime")
	assert.Contains(t, msg, "GB-B2")
	assert.Contains(t, msg, "apologize")
}
