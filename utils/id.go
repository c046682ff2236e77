package utils

import (
	"strconv"
	"time"
)

// NewID returns a time-derived identifier. Uniqueness is only required
// within a single running process.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
