package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-resume-collector/internal/domain"
	"go-resume-collector/pkg/apperror"
	"go-resume-collector/pkg/filestore"
	"go-resume-collector/pkg/logger"
	"go-resume-collector/pkg/validation"
)

type candidateUsecase struct {
	store    domain.CandidateStore
	files    filestore.Store
	validate *validator.Validate
}

func NewCandidateUsecase(store domain.CandidateStore, files filestore.Store, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		store:    store,
		files:    files,
		validate: validate,
	}
}

func (u *candidateUsecase) Submit(ctx context.Context, input *domain.SubmitCandidateInput) (*domain.Candidate, error) {
	// Metadata validation runs before any side effect
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation("Request validation failed").WithDetail(validationDetail(err))
	}

	skills := parseSkillSet(input.SkillSet)
	if len(skills) == 0 {
		return nil, apperror.Validation("At least one skill must be provided")
	}

	storedName, err := u.files.Save(input.ResumeFileName, input.ResumeData)
	if err != nil {
		return nil, err
	}

	candidate, err := u.store.Insert(ctx, domain.Candidate{
		FullName:               input.FullName,
		DOB:                    input.DOB,
		ContactNumber:          validation.NormalizePhone(input.ContactNumber),
		ContactAddress:         input.ContactAddress,
		EducationQualification: input.EducationQualification,
		GraduationYear:         input.GraduationYear,
		YearsOfExperience:      input.YearsOfExperience,
		SkillSet:               skills,
		ResumeFilename:         storedName,
	})
	if err != nil {
		// Compensating cleanup: the file was already written
		if delErr := u.files.Delete(storedName); delErr != nil {
			logger.Log.Error("Failed to clean up file after insert failure",
				"filename", storedName, "error", delErr)
		}
		return nil, apperror.Storage("Failed to create candidate record", err)
	}

	logger.Log.Info("Candidate created", "id", candidate.ID, "name", candidate.FullName,
		"resume", storedName)
	return candidate, nil
}

func (u *candidateUsecase) Find(ctx context.Context, id int) (*domain.Candidate, error) {
	candidate, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Candidate with ID %d not found", id))
	}
	return candidate, nil
}

func (u *candidateUsecase) Query(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	if filter.MinExperience != nil && filter.MaxExperience != nil &&
		*filter.MaxExperience < *filter.MinExperience {
		return nil, apperror.Validation("max_experience must be greater than or equal to min_experience")
	}
	return u.store.List(ctx, filter)
}

func (u *candidateUsecase) Remove(ctx context.Context, id int) (*domain.DeleteResult, error) {
	candidate, err := u.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Candidate with ID %d not found", id))
	}

	// Best effort on the file side: a missing file must never block removal
	if candidate.ResumeFilename != "" {
		if err := u.files.Delete(candidate.ResumeFilename); err != nil {
			logger.Log.Warn("Resume file not removed during candidate deletion",
				"id", id, "filename", candidate.ResumeFilename, "error", err)
		}
	}

	logger.Log.Info("Candidate deleted", "id", id, "name", candidate.FullName)
	return &domain.DeleteResult{
		Message: fmt.Sprintf("Candidate %d deleted successfully", id),
		DeletedCandidate: domain.DeletedCandidate{
			ID:       candidate.ID,
			FullName: candidate.FullName,
		},
	}, nil
}

func (u *candidateUsecase) Stats(ctx context.Context) (*domain.StoreStats, error) {
	return &domain.StoreStats{TotalCandidates: u.store.Count(ctx)}, nil
}

// parseSkillSet splits a comma-separated value, trims whitespace, drops
// empty tokens and case-insensitive duplicates, preserving first-seen order.
func parseSkillSet(raw string) []string {
	seen := make(map[string]bool)
	var skills []string
	for _, token := range strings.Split(raw, ",") {
		skill := strings.TrimSpace(token)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, skill)
	}
	return skills
}

// validationDetail flattens validator.v10 errors into field/rule pairs for
// the error body.
func validationDetail(err error) interface{} {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	detail := make([]map[string]string, 0, len(errs))
	for _, fe := range errs {
		detail = append(detail, map[string]string{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		})
	}
	return detail
}
