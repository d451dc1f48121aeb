package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followCount(t *testing.T, srv *Server, userID, authorID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, srv.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error)
	return count
}

func TestFollowUnfollowFlow(t *testing.T) {
	srv, app := setupTestServer(t)
	reader := createUser(t, srv, "reader")
	author := createUser(t, srv, "author")
	token := authToken(t, srv, reader)

	// Requires auth.
	resp := doJSON(t, app, http.MethodPost, "/api/users/author/follow", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Follow, then follow again: still a single record.
	resp = doJSON(t, app, http.MethodPost, "/api/users/author/follow", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/users/author/follow", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, followCount(t, srv, reader.ID, author.ID))

	// Unfollow, then unfollow again: both succeed.
	resp = doJSON(t, app, http.MethodDelete, "/api/users/author/follow", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/users/author/follow", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, followCount(t, srv, reader.ID, author.ID))
}

func TestSelfFollowIsSilentNoOp(t *testing.T) {
	srv, app := setupTestServer(t)
	reader := createUser(t, srv, "reader")

	resp := doJSON(t, app, http.MethodPost, "/api/users/reader/follow", authToken(t, srv, reader), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, followCount(t, srv, reader.ID, reader.ID))
}

func TestFollowUnknownUser(t *testing.T) {
	srv, app := setupTestServer(t)
	reader := createUser(t, srv, "reader")

	resp := doJSON(t, app, http.MethodPost, "/api/users/ghost/follow", authToken(t, srv, reader), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
