package utils

import (
	"fmt"
	"math/rand"
)

// Venues assigned round-the-hat at registration completion.
var (
	LectureVenues = []string{"Gold Hall", "Silver Hall", "White Hall"}
	MealVenues    = []string{"Restaurant 1", "Restaurant 2", "Restaurant 3"}
)

// GenerateVerificationCode generates a 6-digit numeric code in [100000, 999999].
func GenerateVerificationCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// PickLectureVenue draws a lecture venue uniformly at random.
func PickLectureVenue() string {
	return LectureVenues[rand.Intn(len(LectureVenues))]
}

// PickMealVenue draws a meal venue uniformly at random.
func PickMealVenue() string {
	return MealVenues[rand.Intn(len(MealVenues))]
}

// PickRoomNumber assigns a room in [100, 399].
func PickRoomNumber() string {
	return fmt.Sprintf("%d", 100+rand.Intn(300))
}

// FormatTraineeID renders a sequence number as the public trainee identifier.
func FormatTraineeID(seq int64) string {
	return fmt.Sprintf("TRAINEE-%04d", seq)
}

// FormatTagNumber renders a sequence number as the physical tag identifier.
func FormatTagNumber(seq int64) string {
	return fmt.Sprintf("FAMS-%04d", seq)
}
