package utils

import (
	"fmt"
	"time"

	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
)

// Clock supplies the current wall-clock time. Injectable so the countdown
// logic is testable at fixed instants; time.Now in production.
type Clock func() time.Time

// CancelDeadline is the instant the customer's cancellation right expires.
func CancelDeadline(fechaCreacion time.Time) time.Time {
	return fechaCreacion.Add(entity.CancelWindow)
}

// RemainingCancelSeconds is the advisory countdown shown to the customer,
// clamped at zero. The server re-validates the same window on every cancel
// and start-preparation call.
func RemainingCancelSeconds(fechaCreacion, now time.Time) int {
	rem := CancelDeadline(fechaCreacion).Sub(now)
	if rem <= 0 {
		return 0
	}
	return int(rem.Round(time.Second) / time.Second)
}

// FormatCountdown renders seconds as m:ss, the way the customer screen
// shows the cancel timer.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ElapsedMinutes since a timestamp, for the kitchen board's "started X min
// ago" labels.
func ElapsedMinutes(since, now time.Time) int {
	m := int(now.Sub(since) / time.Minute)
	if m < 0 {
		return 0
	}
	return m
}
