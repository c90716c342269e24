package services

import (
	"golang.org/x/sync/errgroup"

	"github.com/devfolio/backend/database"
	"github.com/devfolio/backend/models"
)

// SkillGroups buckets skill names by recognized category. All three keys are
// always present in the JSON document even when empty.
type SkillGroups struct {
	Programming  []string `json:"programming"`
	Tools        []string `json:"tools"`
	Professional []string `json:"professional"`
}

// AboutDocument is the aggregate served by GET /api/profile. Profile is the
// singleton row or an empty object when none exists; Experience and
// Education are never null; Interests is the singleton content or "".
type AboutDocument struct {
	Profile    any                 `json:"profile"`
	Skills     SkillGroups         `json:"skills"`
	Experience []models.Experience `json:"experience"`
	Education  []models.Education  `json:"education"`
	Interests  string              `json:"interests"`
}

// ProfileService assembles the about-page aggregate from five independent
// record sets.
type ProfileService struct {
	profileRepo *database.ProfileRepo
}

func NewProfileService(profileRepo *database.ProfileRepo) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// About fans out to the five reads concurrently and joins on all of them
// before assembling the document. The reads have no ordering dependency;
// the contract is all-or-nothing: if any read fails, no partial document is
// returned. Parallelism is bounded by the shared connection pool.
func (s *ProfileService) About() (*AboutDocument, error) {
	var (
		profile    *models.Profile
		skills     []models.Skill
		experience []models.Experience
		education  []models.Education
		interests  *models.Interest
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		profile, err = s.profileRepo.GetProfile()
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.profileRepo.FindAllSkills()
		return err
	})
	g.Go(func() error {
		var err error
		experience, err = s.profileRepo.FindAllExperience()
		return err
	})
	g.Go(func() error {
		var err error
		education, err = s.profileRepo.FindAllEducation()
		return err
	})
	g.Go(func() error {
		var err error
		interests, err = s.profileRepo.GetInterests()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &AboutDocument{
		Skills:     groupSkills(skills),
		Experience: experience,
		Education:  education,
	}

	if profile != nil {
		doc.Profile = profile
	} else {
		doc.Profile = struct{}{}
	}
	if doc.Experience == nil {
		doc.Experience = []models.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []models.Education{}
	}
	if interests != nil {
		doc.Interests = interests.Content
	}

	return doc, nil
}

// groupSkills projects skills into the three recognized category buckets,
// preserving the ascending sort_order the repository read them in. Skills
// under any other category are intentionally dropped from this projection;
// they stay untouched in storage and remain visible to direct reads.
func groupSkills(skills []models.Skill) SkillGroups {
	groups := SkillGroups{
		Programming:  []string{},
		Tools:        []string{},
		Professional: []string{},
	}
	for _, skill := range skills {
		switch skill.Category {
		case models.SkillCategoryProgramming:
			groups.Programming = append(groups.Programming, skill.SkillName)
		case models.SkillCategoryTools:
			groups.Tools = append(groups.Tools, skill.SkillName)
		case models.SkillCategoryProfessional:
			groups.Professional = append(groups.Professional, skill.SkillName)
		}
	}
	return groups
}
