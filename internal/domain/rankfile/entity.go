package rankfile

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAchievement   Type = "achievement"
	TypeTraining      Type = "training"
	TypeCertification Type = "certification"
	TypeEvaluation    Type = "evaluation"
)

// RankFile is an achievement, training, certification or evaluation entry
// in an employee's record.
type RankFile struct {
	ID          string
	EmployeeID  string
	Type        Type
	Title       string
	Description string
	Date        *time.Time
	Score       *decimal.Decimal
}
