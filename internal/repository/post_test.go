package repository

import (
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_ListAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	author := createTestUser(t, db, "leo")
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	old := createTestPost(t, db, author, nil, "written first", base)
	mid := createTestPost(t, db, author, nil, "written second", base.Add(time.Hour))
	newest := createTestPost(t, db, author, nil, "written last", base.Add(2*time.Hour))

	posts, err := repo.ListAll(testCtx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, mid.ID, posts[1].ID)
	assert.Equal(t, old.ID, posts[2].ID)
	assert.Equal(t, "leo", posts[0].Author.Username)
}

func TestPostRepository_ListByGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	author := createTestUser(t, db, "anna")
	cats := createTestGroup(t, db, "cats")
	dogs := createTestGroup(t, db, "dogs")
	now := time.Now().UTC()
	inCats := createTestPost(t, db, author, cats, "a cat post", now)
	createTestPost(t, db, author, dogs, "a dog post", now)
	createTestPost(t, db, author, nil, "an ungrouped post", now)

	posts, err := repo.ListByGroup(testCtx, cats.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, inCats.ID, posts[0].ID)
	require.NotNil(t, posts[0].Group)
	assert.Equal(t, "cats", posts[0].Group.Slug)
}

func TestPostRepository_ListByFollowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)

	reader := createTestUser(t, db, "reader")
	followed := createTestUser(t, db, "followed")
	stranger := createTestUser(t, db, "stranger")
	now := time.Now().UTC()
	wanted := createTestPost(t, db, followed, nil, "from someone I follow", now)
	createTestPost(t, db, stranger, nil, "from a stranger", now)

	require.NoError(t, follows.Follow(testCtx, reader.ID, followed.ID))

	posts, err := repo.ListByFollowed(testCtx, reader.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, wanted.ID, posts[0].ID)

	// A user following nobody gets an empty feed, not an error.
	posts, err = repo.ListByFollowed(testCtx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepository_GetByID_CommentsCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	author := createTestUser(t, db, "maya")
	post := createTestPost(t, db, author, nil, "a commented post", time.Now().UTC())
	createTestComment(t, db, post, author, "first")
	createTestComment(t, db, post, author, "second")

	got, err := repo.GetByID(testCtx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestPostRepository_Delete_CascadesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	author := createTestUser(t, db, "erin")
	post := createTestPost(t, db, author, nil, "doomed post", time.Now().UTC())
	keep := createTestPost(t, db, author, nil, "surviving post", time.Now().UTC())
	createTestComment(t, db, post, author, "will vanish")
	createTestComment(t, db, keep, author, "will remain")

	require.NoError(t, repo.Delete(testCtx, post.ID))

	_, err := repo.GetByID(testCtx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}, "post_id = ?", post.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.Comment{}, "post_id = ?", keep.ID))
}
