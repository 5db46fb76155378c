package employee

import "time"

type Employee struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	HireDate   *time.Time
}
