// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import "fmt"

// DefaultWarnDays is the number of remaining days at or below which a
// certificate is reported as expiring soon.
const DefaultWarnDays = 30

// Status classifies a certificate by its remaining validity.
type Status string

const (
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// Status classifies i using warnDays as the expiring-soon threshold.
func (i *Info) Status(warnDays int) Status {
	switch {
	case i.IsExpired:
		return StatusExpired
	case i.DaysRemaining <= warnDays:
		return StatusExpiringSoon
	default:
		return StatusValid
	}
}

// StatusText returns a one-line summary such as "Valid: 120 days remaining",
// "Expiring soon: 12 days remaining", or "Expired 3 days ago".
func (i *Info) StatusText(warnDays int) string {
	switch i.Status(warnDays) {
	case StatusExpired:
		days := i.DaysRemaining
		if days < 0 {
			days = -days
		}
		return fmt.Sprintf("Expired %d days ago", days)
	case StatusExpiringSoon:
		return fmt.Sprintf("Expiring soon: %d days remaining", i.DaysRemaining)
	default:
		return fmt.Sprintf("Valid: %d days remaining", i.DaysRemaining)
	}
}
