package database

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/devfolio/backend/models"
)

func TestEnsureDefaultsSeedsSingletonsOnce(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepo(db)

	if err := profiles.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if err := profiles.UpdateProfile(&models.Profile{FullName: "Ada"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	// A second run must not reset the edited row.
	if err := profiles.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults again: %v", err)
	}

	profile, err := profiles.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile == nil || profile.FullName != "Ada" {
		t.Fatalf("expected seeded row to survive, got %+v", profile)
	}
}

func TestGetProfileMissingRowIsNil(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepo(db)

	profile, err := profiles.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil for missing singleton, got %+v", profile)
	}
}

func TestUpdateExperienceMissingRowReturnsNotFound(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepo(db)

	err := profiles.UpdateExperience(&models.Experience{ID: 77, Title: "Ghost"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestUpdateEducationMissingRowReturnsNotFound(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepo(db)

	err := profiles.UpdateEducation(&models.Education{ID: 77, School: "Ghost U"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestInterestsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	profiles := NewProfileRepo(db)

	if err := profiles.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if err := profiles.UpdateInterests("hiking, radios"); err != nil {
		t.Fatalf("UpdateInterests: %v", err)
	}

	interest, err := profiles.GetInterests()
	if err != nil {
		t.Fatalf("GetInterests: %v", err)
	}
	if interest == nil || interest.Content != "hiking, radios" {
		t.Fatalf("unexpected interests row: %+v", interest)
	}
}
