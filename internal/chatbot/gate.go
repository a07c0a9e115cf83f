package chatbot

import (
	"errors"

	"github.com/agora-voto/campaign-service/internal/domain"
)

// ErrOvernightWindow flags a window whose start sorts after its end. Such
// windows would need midnight-wrap handling that this gate does not do; the
// caller must treat the bot as inactive and surface the misconfiguration
// instead of pretending the comparison was meaningful.
var ErrOvernightWindow = errors.New("active-hours window crosses midnight")

// IsActive reports whether now (zero-padded "HH:MM") falls inside the
// window, using lexicographic comparison. Both bounds are inclusive. Only
// same-day windows are supported.
func IsActive(now string, window domain.ActiveHours) (bool, error) {
	if window.Start > window.End {
		return false, ErrOvernightWindow
	}
	return window.Start <= now && now <= window.End, nil
}
