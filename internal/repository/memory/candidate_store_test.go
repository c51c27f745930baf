package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-collector/internal/domain"
	"go-resume-collector/internal/repository/memory"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestInsertAssignsSequentialIDs(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	first, err := store.Insert(ctx, domain.Candidate{FullName: "Alice"})
	require.NoError(t, err)
	second, err := store.Insert(ctx, domain.Candidate{FullName: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestConcurrentInsertsProduceUniqueIDs(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	const n = 200
	var wg sync.WaitGroup
	ids := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := store.Insert(ctx, domain.Candidate{FullName: fmt.Sprintf("Candidate %d", i)})
			if !assert.NoError(t, err) {
				return
			}
			ids <- c.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	// Exactly {1..n}: no duplicates, no gaps
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "missing id %d", i)
	}
}

func TestGetReturnsNilForUnknownID(t *testing.T) {
	store := memory.NewCandidateStore()

	c, err := store.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestListReturnsInsertionOrder(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol", "Dan"}
	for _, name := range names {
		_, err := store.Insert(ctx, domain.Candidate{FullName: name})
		require.NoError(t, err)
	}

	all, err := store.List(ctx, domain.CandidateFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, c := range all {
		assert.Equal(t, names[i], c.FullName)
		assert.Equal(t, i+1, c.ID)
	}
}

func TestListFilters(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, domain.Candidate{
		FullName:          "Alice",
		GraduationYear:    2020,
		YearsOfExperience: 3.5,
		SkillSet:          []string{"Python", "FastAPI", "Docker"},
	})
	require.NoError(t, err)
	_, err = store.Insert(ctx, domain.Candidate{
		FullName:          "Bob",
		GraduationYear:    2021,
		YearsOfExperience: 1.0,
		SkillSet:          []string{"Java", "Spring"},
	})
	require.NoError(t, err)

	t.Run("skill match is case-insensitive", func(t *testing.T) {
		result, err := store.List(ctx, domain.CandidateFilter{Skill: "python"})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Alice", result[0].FullName)
	})

	t.Run("min experience is inclusive lower bound", func(t *testing.T) {
		result, err := store.List(ctx, domain.CandidateFilter{MinExperience: floatPtr(2)})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Alice", result[0].FullName)
	})

	t.Run("max experience is inclusive upper bound", func(t *testing.T) {
		result, err := store.List(ctx, domain.CandidateFilter{MaxExperience: floatPtr(1.0)})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Bob", result[0].FullName)
	})

	t.Run("graduation year is exact match", func(t *testing.T) {
		result, err := store.List(ctx, domain.CandidateFilter{GraduationYear: intPtr(2021)})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Bob", result[0].FullName)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		result, err := store.List(ctx, domain.CandidateFilter{
			Skill:          "python",
			GraduationYear: intPtr(2021),
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestDeleteRemovesAndReturnsRecord(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	inserted, err := store.Insert(ctx, domain.Candidate{FullName: "Alice"})
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, inserted.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Alice", deleted.FullName)

	// Delete is visible immediately to subsequent reads
	got, err := store.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Count(ctx))
}

func TestDeleteUnknownIDLeavesStoreUnchanged(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	_, err := store.Insert(ctx, domain.Candidate{FullName: "Alice"})
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, deleted)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	store := memory.NewCandidateStore()
	ctx := context.Background()

	input := domain.Candidate{
		FullName: "Alice",
		SkillSet: []string{"Go"},
	}
	inserted, err := store.Insert(ctx, input)
	require.NoError(t, err)

	// Mutating the record returned by Insert must not reach the store
	inserted.SkillSet[0] = "mutated"
	got, err := store.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.SkillSet)

	// Neither must mutating the caller's original input slice
	input.SkillSet[0] = "mutated-again"
	got, err = store.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.SkillSet)

	// And records returned by Get are themselves detached
	got.SkillSet[0] = "mutated-once-more"
	again, err := store.Get(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, again.SkillSet)
}
