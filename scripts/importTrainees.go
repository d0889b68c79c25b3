package main

import (
	"encoding/csv"
	"fams/config"
	"fams/database"
	"fams/models"
	"fams/utils"
	"log"
	"os"
	"strings"
)

// Bulk-imports a pre-registered trainee roster from a CSV file. Expected
// headers: FirstName, LastName, Email, PhoneNumber, Gender, DateOfBirth,
// StateOfOrigin, LocalGovernmentArea, Nationality. Imported trainees are
// attached to the currently active sponsor and get system-assigned
// identifiers, rooms and venues like any other registration.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "trainees.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}
	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	db := database.Database.Db

	var sponsor models.Sponsor
	if err := db.Where("is_active = ?", true).First(&sponsor).Error; err != nil {
		log.Fatal("No active sponsor; activate a sponsor before importing trainees")
	}

	log.Printf("Importing %d rows into sponsor %q", len(records)-1, sponsor.Name)

	inserted := 0
	skipped := 0
	for _, row := range records[1:] {
		email := field(row, "Email")
		if email == "" {
			skipped++
			continue
		}

		if err := db.Where("email = ?", email).First(&models.Trainee{}).Error; err == nil {
			log.Printf("Skipping %s: already registered", email)
			skipped++
			continue
		}

		seq, err := database.NextTraineeSequence(db)
		if err != nil {
			log.Fatalf("Failed to allocate sequence: %v", err)
		}

		nationality := field(row, "Nationality")
		if nationality == "" {
			nationality = "Nigerian"
		}

		trainee := models.Trainee{
			TraineeID:           utils.FormatTraineeID(seq),
			TagNumber:           utils.FormatTagNumber(seq),
			FirstName:           field(row, "FirstName"),
			LastName:            field(row, "LastName"),
			Email:               email,
			PhoneNumber:         field(row, "PhoneNumber"),
			Gender:              field(row, "Gender"),
			DateOfBirth:         field(row, "DateOfBirth"),
			StateOfOrigin:       field(row, "StateOfOrigin"),
			LocalGovernmentArea: field(row, "LocalGovernmentArea"),
			Nationality:         nationality,
			SponsorID:           &sponsor.ID,
			RoomNumber:          utils.PickRoomNumber(),
			LectureVenue:        utils.PickLectureVenue(),
			MealVenue:           utils.PickMealVenue(),
			IsActive:            true,
			EmailVerified:       true,
		}

		if err := db.Create(&trainee).Error; err != nil {
			log.Printf("Failed to insert %s: %v", email, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import finished: %d inserted, %d skipped", inserted, skipped)
}
