// Package application describes a submitted registration.
package application

import (
	"fmt"
	"time"
)

// Serial numbers are four digits: 1000 through 9999.
const (
	serialBase  = 1000
	serialRange = 9000
)

// Application is a registration confirmed on the review page.
type Application struct {
	ID          string            `json:"id"`
	Fields      map[string]string `json:"fields"`
	SubmittedAt time.Time         `json:"submitted_at"`
}

// NewID builds an identifier of the form PREFIX-YEAR-NNNN. intn must
// return a value in [0, n), as math/rand/v2.IntN does.
func NewID(prefix string, now time.Time, intn func(n int) int) string {
	return fmt.Sprintf("%s-%d-%d", prefix, now.Year(), serialBase+intn(serialRange))
}
