package services

import (
	"encoding/json"
	"testing"

	"github.com/devfolio/backend/models"
)

func TestAboutGroupsSkillsAndDropsUnknownCategories(t *testing.T) {
	_, db := openTestDB(t)
	repo := db.ProfileRepo()
	service := NewProfileService(repo)

	for _, skill := range []models.Skill{
		{Category: models.SkillCategoryProgramming, SkillName: "Go", SortOrder: 2},
		{Category: models.SkillCategoryProgramming, SkillName: "SQL", SortOrder: 1},
		{Category: models.SkillCategoryTools, SkillName: "Docker", SortOrder: 0},
		{Category: models.SkillCategoryProfessional, SkillName: "Writing", SortOrder: 0},
		{Category: "design", SkillName: "Figma", SortOrder: 0},
	} {
		skill := skill
		if err := repo.AddSkill(&skill); err != nil {
			t.Fatalf("add skill: %v", err)
		}
	}

	doc, err := service.About()
	if err != nil {
		t.Fatalf("About: %v", err)
	}

	if len(doc.Skills.Programming) != 2 || doc.Skills.Programming[0] != "SQL" || doc.Skills.Programming[1] != "Go" {
		t.Fatalf("programming bucket wrong or out of sort order: %v", doc.Skills.Programming)
	}
	if len(doc.Skills.Tools) != 1 || doc.Skills.Tools[0] != "Docker" {
		t.Fatalf("tools bucket wrong: %v", doc.Skills.Tools)
	}
	if len(doc.Skills.Professional) != 1 || doc.Skills.Professional[0] != "Writing" {
		t.Fatalf("professional bucket wrong: %v", doc.Skills.Professional)
	}

	// "design" is filtered from the projection...
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	skills := decoded["skills"].(map[string]any)
	if _, ok := skills["design"]; ok {
		t.Fatal("unrecognized category must not appear in the grouped result")
	}

	// ...but stays untouched in storage.
	all, err := repo.FindAllSkills()
	if err != nil {
		t.Fatalf("FindAllSkills: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected all 5 skills in storage, got %d", len(all))
	}
}

func TestAboutEmptyDatabaseShape(t *testing.T) {
	_, db := openTestDB(t)
	service := NewProfileService(db.ProfileRepo())

	doc, err := service.About()
	if err != nil {
		t.Fatalf("About: %v", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	profile, ok := decoded["profile"].(map[string]any)
	if !ok || len(profile) != 0 {
		t.Fatalf("expected empty profile object, got %v", decoded["profile"])
	}

	skills := decoded["skills"].(map[string]any)
	for _, key := range []string{"programming", "tools", "professional"} {
		bucket, ok := skills[key].([]any)
		if !ok {
			t.Fatalf("bucket %q missing or not an array: %v", key, skills[key])
		}
		if len(bucket) != 0 {
			t.Fatalf("bucket %q should be empty, got %v", key, bucket)
		}
	}

	if _, ok := decoded["experience"].([]any); !ok {
		t.Fatalf("experience must be an array, got %v", decoded["experience"])
	}
	if _, ok := decoded["education"].([]any); !ok {
		t.Fatalf("education must be an array, got %v", decoded["education"])
	}
	if decoded["interests"] != "" {
		t.Fatalf("interests must be empty string, got %v", decoded["interests"])
	}
}

func TestAboutIsAllOrNothing(t *testing.T) {
	gdb, db := openTestDB(t)
	service := NewProfileService(db.ProfileRepo())

	// Break exactly one of the five reads; the whole aggregation must fail
	// rather than return a partial document.
	if err := gdb.Migrator().DropTable(&models.Skill{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if _, err := service.About(); err == nil {
		t.Fatal("expected aggregation to fail when one read fails")
	}
}

func TestAboutIncludesSingletonsWhenPresent(t *testing.T) {
	_, db := openTestDB(t)
	repo := db.ProfileRepo()
	service := NewProfileService(repo)

	if err := repo.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}
	if err := repo.UpdateProfile(&models.Profile{FullName: "Ada Lovelace", Bio: "curator"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if err := repo.UpdateInterests("analog synths"); err != nil {
		t.Fatalf("UpdateInterests: %v", err)
	}

	doc, err := service.About()
	if err != nil {
		t.Fatalf("About: %v", err)
	}

	profile, ok := doc.Profile.(*models.Profile)
	if !ok {
		t.Fatalf("expected profile row, got %T", doc.Profile)
	}
	if profile.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if doc.Interests != "analog synths" {
		t.Fatalf("unexpected interests: %q", doc.Interests)
	}
}
