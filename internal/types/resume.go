// Package types provides type definitions for structured data used throughout the resume-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Resume is the root of the normalized resume document.
// Field order matches the declared schema order.
type Resume struct {
	ContactInformation ContactInformation     `json:"contactInformation" validate:"required"`
	WorkHistory        []WorkHistoryItem      `json:"workHistory" validate:"dive"`
	EducationHistory   []EducationHistoryItem `json:"educationHistory" validate:"dive"`
	Skills             []string               `json:"skills,omitempty"`
	Certifications     []string               `json:"certifications,omitempty"`
	Publications       []string               `json:"publications,omitempty"`
	Patents            []string               `json:"patents,omitempty"`
	Websites           []string               `json:"websites,omitempty"`
}

// ContactInformation holds the candidate's personal contact details.
// Pointer fields are optional and may be explicitly null in the source document.
type ContactInformation struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Country   string  `json:"country" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
}

// DateRange represents a start/end date pair at year, year-month, or
// year-month-day precision. A DateRange is all-or-nothing: when the object is
// present, both start and end are required.
type DateRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// WorkHistoryItem represents a single employment entry.
// Duration is required but nullable; a nil Duration means the dates are unknown
// or the position is ongoing.
type WorkHistoryItem struct {
	PositionOrTitle  string     `json:"workPositionOrTitle" validate:"required"`
	CompanyName      string     `json:"workForCompanyName" validate:"required"`
	LocationOrRemote string     `json:"workLocationOrRemote" validate:"required"`
	Duration         *DateRange `json:"duration"`
	Responsibilities []string   `json:"workResponsibilitiesAccomplishments"`
}

// EducationHistoryItem represents a single education entry.
type EducationHistoryItem struct {
	Institution       string     `json:"institution" validate:"required"`
	Degree            string     `json:"degree" validate:"required"`
	Duration          *DateRange `json:"duration"`
	Majors            []string   `json:"majors,omitempty"`
	Minors            []string   `json:"minors,omitempty"`
	GradePointAverage *string    `json:"gradePointAverage,omitempty"`
}

// resumeValidator reports violations by JSON field name so paths in error
// messages line up with the source document.
var resumeValidator = newResumeValidator()

func newResumeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates the normalized Resume using the validator.
func (r *Resume) Validate() error {
	return resumeValidator.Struct(r)
}
