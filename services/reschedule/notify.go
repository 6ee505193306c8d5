package reschedule

import (
	"context"
	"fmt"
)

// noticeTimeFormat renders instants in the customer-facing message, e.g.
// "Jan 2, 2026 at 3:04 PM".
const noticeTimeFormat = "Jan 2, 2006 at 3:04 PM"

// notify formats and dispatches the reschedule SMS. Clients with no phone
// on file are skipped silently.
func (e *DefaultEngine) notify(ctx context.Context, n Notice) error {
	if n.ClientPhone == "" {
		return nil
	}
	return e.SMS.Send(ctx, n.ClientPhone, BuildNoticeMessage(n))
}

// BuildNoticeMessage renders the customer-facing reschedule text.
func BuildNoticeMessage(n Notice) string {
	return fmt.Sprintf(
		"Dear %s, your appointment with %s originally scheduled for %s has been moved to %s. Reason: %s. Your token number %s remains valid. We apologize for the inconvenience.",
		n.ClientName,
		n.ProviderName,
		n.OriginalTime.Format(noticeTimeFormat),
		n.NewTime.Format(noticeTimeFormat),
		RescheduleReason,
		n.TokenNumber,
	)
}
