package models

import "strings"

type EducationLevel int

const (
	EducationUnspecified EducationLevel = iota
	EducationDiploma
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

// EducationLevels lists the level names in ordinal order.
var EducationLevels = []string{"unspecified", "diploma", "bachelor", "master", "doctorate"}

func (l EducationLevel) String() string {
	if l < 0 || int(l) >= len(EducationLevels) {
		return EducationLevels[0]
	}
	return EducationLevels[l]
}

// Degree returns the display name of the level, empty for unspecified.
func (l EducationLevel) Degree() string {
	switch l {
	case EducationDiploma:
		return "Diploma"
	case EducationBachelor:
		return "Bachelor's degree"
	case EducationMaster:
		return "Master's degree"
	case EducationDoctorate:
		return "Doctorate"
	default:
		return ""
	}
}

type Education struct {
	Level EducationLevel `json:"level"`
	Field string         `json:"field"`
}

func (e Education) Display() string {
	degree := e.Level.Degree()
	if degree == "" {
		return "Not specified"
	}
	if e.Field == "" {
		return degree
	}
	return degree + " in " + e.Field
}

// CandidateProfile holds the attributes extracted from one resume.
// Zero values are the documented defaults.
type CandidateProfile struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Education       Education `json:"education"`
	ExperienceYears float64   `json:"experience_years"`
	Skills          []string  `json:"skills"`
}

func (p CandidateProfile) SkillsDisplay() string {
	return strings.Join(p.Skills, ", ")
}

// FeatureVector is ordered as [experience, education, skill_0..skill_n].
type FeatureVector []float64
