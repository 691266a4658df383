package documents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo()}
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestCreateStartsAtVersionOne(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Create(context.Background(), "user-a", CreateInput{
		Type:  "skills",
		Title: "Go",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Version)
	assert.Equal(t, "skills", doc.Type)
	assert.Equal(t, "", doc.Content)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), "user-a", CreateInput{Type: "banana", Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateCollectsAllFieldViolations(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), "user-a", CreateInput{Type: "skills", Title: "🎉"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Errors)
}

func TestVersionMonotonicity(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go", Content: "5 years"})
	require.NoError(t, err)

	// Alternate PUT and PATCH; version must equal successful mutations + 1.
	doc2, err := svc.Update(ctx, doc.ID, "user-a", UpdateInput{Title: strPtr("Go and Rust")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc2.Version)

	doc3, err := svc.Patch(ctx, doc.ID, "user-a", PatchInput{Content: strPtr("6 years"), Version: int64Ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), doc3.Version)

	doc4, err := svc.Update(ctx, doc.ID, "user-a", UpdateInput{Content: strPtr("7 years")})
	require.NoError(t, err)
	assert.Equal(t, int64(4), doc4.Version)
}

func TestPatchStaleVersionConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go", Content: "5 years"})
	require.NoError(t, err)

	_, err = svc.Patch(ctx, doc.ID, "user-a", PatchInput{Content: strPtr("6 years"), Version: int64Ptr(1)})
	require.NoError(t, err)

	_, err = svc.Patch(ctx, doc.ID, "user-a", PatchInput{Content: strPtr("lost update"), Version: int64Ptr(1)})
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, int64(2), cErr.CurrentVersion)
	assert.Equal(t, "6 years", cErr.Current.Content)

	// The stored document is unchanged by the failed PATCH.
	stored, err := svc.Get(ctx, doc.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)
	assert.Equal(t, "6 years", stored.Content)
}

func TestPatchWithoutVersionForces(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "values", Title: "Honesty"})
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, doc.ID, "user-a", PatchInput{Content: strPtr("tell the truth")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), patched.Version)
}

func TestPatchAppliesExplicitEmptyString(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go", Content: "5 years"})
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, doc.ID, "user-a", PatchInput{Content: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "", patched.Content)
	assert.Equal(t, "Go", patched.Title)
}

func TestPatchRequiresSomeField(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go"})
	require.NoError(t, err)

	_, err = svc.Patch(ctx, doc.ID, "user-a", PatchInput{Version: int64Ptr(1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, doc.ID, "user-a", UpdateInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOwnershipIsolation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, doc.ID, "user-b")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, doc.ID, "user-b", UpdateInput{Title: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Patch(ctx, doc.ID, "user-b", PatchInput{Title: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, doc.ID, "user-b")
	assert.ErrorIs(t, err, ErrForbidden)

	// Untouched.
	stored, err := svc.Get(ctx, doc.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Go", stored.Title)
	assert.Equal(t, int64(1), stored.Version)
}

func TestGetUnknownIDNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "missing", "user-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndIgnoresInvalidFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-a", CreateInput{Type: "experience", Title: "Backend work"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-b", CreateInput{Type: "skills", Title: "Rust"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "user-a", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	skills, err := svc.List(ctx, "user-a", "skills")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Title)

	// Invalid filter degrades to "all documents".
	degraded, err := svc.List(ctx, "user-a", "not-a-type")
	require.NoError(t, err)
	assert.Len(t, degraded, 2)
}

func TestDeleteIsHard(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, doc.ID, "user-a"))

	_, err = svc.Get(ctx, doc.ID, "user-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutHasNoVersionCheck(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	doc, err := svc.Create(ctx, "user-a", CreateInput{Type: "skills", Title: "Go", Content: "v1"})
	require.NoError(t, err)

	// Two sequential PUTs both succeed; last writer wins.
	_, err = svc.Update(ctx, doc.ID, "user-a", UpdateInput{Content: strPtr("writer one")})
	require.NoError(t, err)
	final, err := svc.Update(ctx, doc.ID, "user-a", UpdateInput{Content: strPtr("writer two")})
	require.NoError(t, err)
	assert.Equal(t, "writer two", final.Content)
	assert.Equal(t, int64(3), final.Version)
}
