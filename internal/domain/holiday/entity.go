package holiday

import "time"

const DefaultType = "regular"

type Holiday struct {
	ID   string
	Name string
	Date time.Time
	Type string
}
