package domain

import (
	"context"
	"time"
)

// Candidate is one submitted resume. ID, ResumeFilename and CreatedAt are
// assigned on creation and never change.
type Candidate struct {
	ID                     int       `json:"id"`
	FullName               string    `json:"full_name"`
	DOB                    string    `json:"dob"`
	ContactNumber          string    `json:"contact_number"`
	ContactAddress         string    `json:"contact_address"`
	EducationQualification string    `json:"education_qualification"`
	GraduationYear         int       `json:"graduation_year"`
	YearsOfExperience      float64   `json:"years_of_experience"`
	SkillSet               []string  `json:"skill_set"`
	ResumeFilename         string    `json:"resume_filename"`
	CreatedAt              time.Time `json:"created_at"`
}

// SubmitCandidateInput carries the raw upload payload. SkillSet is the
// comma-separated form value; parsing happens in the usecase.
type SubmitCandidateInput struct {
	FullName               string  `json:"full_name" validate:"required,min=2,max=100"`
	DOB                    string  `json:"dob" validate:"required,past_date"`
	ContactNumber          string  `json:"contact_number" validate:"required,contact_number"`
	ContactAddress         string  `json:"contact_address" validate:"required,min=10,max=500"`
	EducationQualification string  `json:"education_qualification" validate:"required,min=2,max=100"`
	GraduationYear         int     `json:"graduation_year" validate:"required,gte=1950,lte=2030"`
	YearsOfExperience      float64 `json:"years_of_experience" validate:"gte=0,lte=50"`
	SkillSet               string  `json:"skill_set" validate:"required"`
	ResumeFileName         string  `json:"-" validate:"required"`
	ResumeData             []byte  `json:"-"`
}

// CandidateFilter holds the optional list filters. Nil means no constraint
// on that field; all provided filters combine with AND.
type CandidateFilter struct {
	Skill          string
	MinExperience  *float64
	MaxExperience  *float64
	GraduationYear *int
}

// DeleteResult is the response body for a successful removal.
type DeleteResult struct {
	Message          string           `json:"message"`
	DeletedCandidate DeletedCandidate `json:"deleted_candidate"`
}

type DeletedCandidate struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

// StoreStats summarizes store contents.
type StoreStats struct {
	TotalCandidates int `json:"total_candidates"`
}

// CandidateStore is the concurrency-safe record mapping. Insert assigns the
// next id atomically; Get and Delete return nil when the id is absent.
type CandidateStore interface {
	Insert(ctx context.Context, candidate Candidate) (*Candidate, error)
	Get(ctx context.Context, id int) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	Delete(ctx context.Context, id int) (*Candidate, error)
	Count(ctx context.Context) int
}

type CandidateUsecase interface {
	Submit(ctx context.Context, input *SubmitCandidateInput) (*Candidate, error)
	Find(ctx context.Context, id int) (*Candidate, error)
	Query(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	Remove(ctx context.Context, id int) (*DeleteResult, error)
	Stats(ctx context.Context) (*StoreStats, error)
}
