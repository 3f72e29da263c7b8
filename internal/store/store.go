// Package store implements the persistence gateway for seminars and
// registrations on top of GORM. Admission runs as a single transaction so
// two requests racing for the last seat cannot both get in.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bkkdevs/seminar-registration-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSeminarNotFound       = errors.New("seminar not found")
	ErrSeminarClosed         = errors.New("seminar is closed for registration")
	ErrCapacityExceeded      = errors.New("seminar has no remaining seats")
	ErrDuplicateRegistration = errors.New("email already registered for this seminar")
	ErrRegistrationNotFound  = errors.New("registration not found")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

type AdmitInput struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	SeminarID    string
}

// Admit records one attendee for a seminar. The whole flow runs in one
// transaction and the counter increment is conditional on remaining
// capacity, so two admissions racing for the last seat cannot both commit.
// The (seminar_id, email) unique index backs the duplicate lookup.
func (s *Store) Admit(ctx context.Context, in AdmitInput) (*models.Registration, *models.Seminar, error) {
	email := strings.ToLower(in.Email)

	var reg models.Registration
	var seminar models.Seminar
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&seminar, "id = ?", in.SeminarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSeminarNotFound
			}
			return fmt.Errorf("load seminar: %w", err)
		}

		if seminar.Status != models.SeminarOpen {
			return ErrSeminarClosed
		}
		if seminar.RegisteredCount >= seminar.Capacity {
			return ErrCapacityExceeded
		}

		var existing models.Registration
		err := tx.Where("seminar_id = ? AND email = ?", in.SeminarID, email).First(&existing).Error
		if err == nil {
			return ErrDuplicateRegistration
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check duplicate: %w", err)
		}

		reg = models.Registration{
			ID:               uuid.NewString(),
			Name:             in.Name,
			Email:            email,
			Phone:            in.Phone,
			Organization:     in.Organization,
			SeminarID:        in.SeminarID,
			Status:           models.StatusConfirmed,
			RegistrationDate: time.Now(),
		}
		if err := tx.Create(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRegistration
			}
			return fmt.Errorf("create registration: %w", err)
		}

		res := tx.Model(&models.Seminar{}).
			Where("id = ? AND registered_count < capacity", in.SeminarID).
			UpdateColumn("registered_count", gorm.Expr("registered_count + 1"))
		if res.Error != nil {
			return fmt.Errorf("increment registered count: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrCapacityExceeded
		}
		seminar.RegisteredCount++

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &reg, &seminar, nil
}

func (s *Store) FindSeminarByID(ctx context.Context, id string) (*models.Seminar, error) {
	var seminar models.Seminar
	if err := s.db.WithContext(ctx).First(&seminar, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, fmt.Errorf("find seminar: %w", err)
	}
	return &seminar, nil
}

// OpenSeminar returns the seminar currently accepting registrations.
func (s *Store) OpenSeminar(ctx context.Context) (*models.Seminar, error) {
	var seminar models.Seminar
	if err := s.db.WithContext(ctx).Where("status = ?", models.SeminarOpen).First(&seminar).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeminarNotFound
		}
		return nil, fmt.Errorf("find open seminar: %w", err)
	}
	return &seminar, nil
}

func (s *Store) FindRegistration(ctx context.Context, seminarID, email string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).
		Where("seminar_id = ? AND email = ?", seminarID, strings.ToLower(email)).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	return &reg, nil
}

// LatestRegistrationByEmail resolves the most recent registration for an
// email across seminars, with its seminar preloaded.
func (s *Store) LatestRegistrationByEmail(ctx context.Context, email string) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.WithContext(ctx).
		Preload("Seminar").
		Where("email = ?", strings.ToLower(email)).
		Order("registration_date DESC").
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find latest registration: %w", err)
	}
	return &reg, nil
}

func (s *Store) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.db.WithContext(ctx).Order("registration_date DESC").Find(&regs).Error; err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
