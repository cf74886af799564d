package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateSaveDuplicatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(NewMemoryStore())
	require.NoError(t, repo.Load(ctx))

	first, err := repo.Save(ctx, "gm. we build.")
	require.NoError(t, err)
	second, err := repo.Save(ctx, "gm. we build.")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	items := repo.List(ctx)
	require.Len(t, items, 2)
	// Newest first
	assert.Equal(t, second.ID, items[0].ID)
}

func TestTemplateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(NewMemoryStore())
	require.NoError(t, repo.Load(ctx))

	keep, err := repo.Save(ctx, "keep me")
	require.NoError(t, err)
	drop, err := repo.Save(ctx, "drop me")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, drop.ID))

	items := repo.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
}

func TestTemplateDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewTemplateRepository(NewMemoryStore())
	require.NoError(t, repo.Load(ctx))

	err := repo.Delete(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTemplateLoadCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(KeyTemplates, "[broken")

	repo := NewTemplateRepository(store)
	require.NoError(t, repo.Load(ctx))
	assert.Empty(t, repo.List(ctx))
}

func TestTemplateSaveFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewTemplateRepository(store)
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Save(ctx, "persisted")
	require.NoError(t, err)

	store.SaveErr = fmt.Errorf("disk full")
	_, err = repo.Save(ctx, "lost")
	require.Error(t, err)

	items := repo.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "persisted", items[0].Text)
}
