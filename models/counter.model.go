package models

// Counter names.
const (
	CounterTraineeSequence = "trainee_sequence"
)

// Counter backs atomic sequence allocation. Incrementing the row with a
// single UPDATE avoids the duplicate-ID race a count-then-insert scheme has.
type Counter struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `gorm:"not null" json:"value"`
}
