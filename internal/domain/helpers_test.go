package domain

import (
	"fmt"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%d", s.n)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func newTestCollection(tasks ...Task) *Collection {
	return NewCollection(tasks, &seqIDs{n: 100}, &fixedClock{now: date(2025, time.June, 1)})
}
