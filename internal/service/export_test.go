package service

import "time"

// SetClock replaces the time source used for date validation.
func (s *TripService) SetClock(now func() time.Time) { s.now = now }
