// Package memory implements the candidate store as a mutex-guarded map.
// Data does not survive a restart; that is the point of this service.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go-resume-collector/internal/domain"
)

type CandidateStore struct {
	mu     sync.Mutex
	data   map[int]domain.Candidate
	nextID int
}

func NewCandidateStore() *CandidateStore {
	return &CandidateStore{
		data:   make(map[int]domain.Candidate),
		nextID: 1,
	}
}

// Insert assigns the next id and stores the record atomically. The lock is
// held only for the map mutation, never across any I/O.
func (s *CandidateStore) Insert(ctx context.Context, candidate domain.Candidate) (*domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = s.nextID
	s.nextID++
	candidate.CreatedAt = time.Now()
	// Detach from the caller's slice so later mutations of the input (or of
	// the returned record) cannot reach the stored copy
	candidate.SkillSet = append([]string(nil), candidate.SkillSet...)
	s.data[candidate.ID] = candidate

	return copyOf(candidate), nil
}

func (s *CandidateStore) Get(ctx context.Context, id int) (*domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	return copyOf(candidate), nil
}

// List returns matching records in insertion order. Ids are strictly
// increasing in allocation order, so sorting by id is insertion order.
func (s *CandidateStore) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]domain.Candidate, 0, len(ids))
	for _, id := range ids {
		candidate := s.data[id]
		if matches(candidate, filter) {
			result = append(result, *copyOf(candidate))
		}
	}
	return result, nil
}

func (s *CandidateStore) Delete(ctx context.Context, id int) (*domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	delete(s.data, id)
	return copyOf(candidate), nil
}

func (s *CandidateStore) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func matches(c domain.Candidate, f domain.CandidateFilter) bool {
	if f.Skill != "" {
		skill := strings.ToLower(f.Skill)
		found := false
		for _, s := range c.SkillSet {
			if strings.Contains(strings.ToLower(s), skill) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinExperience != nil && c.YearsOfExperience < *f.MinExperience {
		return false
	}
	if f.MaxExperience != nil && c.YearsOfExperience > *f.MaxExperience {
		return false
	}
	if f.GraduationYear != nil && c.GraduationYear != *f.GraduationYear {
		return false
	}
	return true
}

// copyOf clones the record including its skill slice so callers never hold
// a reference into the store.
func copyOf(c domain.Candidate) *domain.Candidate {
	clone := c
	clone.SkillSet = append([]string(nil), c.SkillSet...)
	return &clone
}
