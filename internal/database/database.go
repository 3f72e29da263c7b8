package database

import (
	"log"
	"strings"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/config"
	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	// Immediate transactions make writers queue on the busy timeout instead
	// of failing with SQLITE_BUSY when admissions race.
	dsn := cfg.DatabasePath
	if !strings.Contains(dsn, "?") {
		dsn += "?_txlock=immediate&_busy_timeout=5000"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(&models.Seminar{}, &models.Registration{})
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}

// Seed upserts the configured seminar so a fresh database is immediately
// usable. An existing row is left untouched, including its counter.
func Seed(db *gorm.DB, cfg *config.Config) error {
	date, err := time.Parse("2006-01-02", cfg.SeminarDate)
	if err != nil {
		return err
	}

	seminar := models.Seminar{
		ID:          cfg.SeminarID,
		Title:       cfg.SeminarTitle,
		Description: cfg.SeminarDescription,
		Date:        date,
		StartTime:   cfg.SeminarStartTime,
		EndTime:     cfg.SeminarEndTime,
		Venue:       cfg.SeminarVenue,
		Capacity:    cfg.SeminarCapacity,
		Status:      models.SeminarOpen,
	}

	return db.FirstOrCreate(&seminar, models.Seminar{ID: cfg.SeminarID}).Error
}
