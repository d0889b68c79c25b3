package database

import (
	"fams/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextTraineeSequence allocates the next trainee sequence number atomically.
// The counter row is incremented with a single UPDATE inside a transaction,
// so concurrent registrations can never receive the same number. The counter
// is seeded lazily from the current trainee count, which keeps the original
// numbering (count + 1, zero-padded) intact for existing deployments.
func NextTraineeSequence(db *gorm.DB) (int64, error) {
	var seq int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Counter{}).
			Where("name = ?", models.CounterTraineeSequence).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Trainee{}).Count(&count).Error; err != nil {
				return err
			}
			// Two transactions can race to seed the counter. The insert
			// tolerates losing, and the follow-up UPDATE claims a number
			// from whichever row survived.
			counter := models.Counter{Name: models.CounterTraineeSequence, Value: count}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error; err != nil {
				return err
			}
			res = tx.Model(&models.Counter{}).
				Where("name = ?", models.CounterTraineeSequence).
				UpdateColumn("value", gorm.Expr("value + 1"))
			if res.Error != nil {
				return res.Error
			}
		}

		var counter models.Counter
		if err := tx.Where("name = ?", models.CounterTraineeSequence).First(&counter).Error; err != nil {
			return err
		}
		seq = counter.Value
		return nil
	})
	return seq, err
}
