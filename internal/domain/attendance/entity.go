package attendance

import "time"

// ClockRecord is one clock-in/clock-out pair. It is open while ClockOut is nil.
type ClockRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
}

func (c ClockRecord) IsOpen() bool {
	return c.ClockOut == nil
}

// IsClosed reports whether both timestamps are present.
func (c ClockRecord) IsClosed() bool {
	return c.ClockIn != nil && c.ClockOut != nil
}
