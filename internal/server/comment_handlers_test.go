package server

import (
	"fmt"
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	srv, app := setupTestServer(t)
	author := createUser(t, srv, "writer")
	commenter := createUser(t, srv, "talker")
	post := &models.Post{Text: "discuss below", AuthorID: author.ID}
	require.NoError(t, srv.db.Create(post).Error)
	path := fmt.Sprintf("/api/posts/%d/comments", post.ID)
	token := authToken(t, srv, commenter)

	tests := []struct {
		name           string
		token          string
		path           string
		body           map[string]string
		expectedStatus int
	}{
		{"Success", token, path, map[string]string{"text": "well said"}, http.StatusCreated},
		{"Unauthenticated", "", path, map[string]string{"text": "anon"}, http.StatusUnauthorized},
		{"Empty Text", token, path, map[string]string{"text": "  "}, http.StatusBadRequest},
		{"Unknown Post", token, "/api/posts/9999/comments", map[string]string{"text": "hi"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				var comment struct {
					Text   string `json:"text"`
					Author struct {
						Username string `json:"username"`
					} `json:"author"`
				}
				decodeBody(t, resp, &comment)
				assert.Equal(t, "well said", comment.Text)
				assert.Equal(t, "talker", comment.Author.Username)
			}
		})
	}
}

func TestListComments(t *testing.T) {
	srv, app := setupTestServer(t)
	author := createUser(t, srv, "writer")
	post := &models.Post{Text: "busy thread", AuthorID: author.ID}
	require.NoError(t, srv.db.Create(post).Error)
	require.NoError(t, srv.db.Create(&models.Comment{Text: "first", PostID: post.ID, AuthorID: author.ID}).Error)
	require.NoError(t, srv.db.Create(&models.Comment{Text: "second", PostID: post.ID, AuthorID: author.ID}).Error)

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []struct {
		Text string `json:"text"`
	}
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/9999/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteComment(t *testing.T) {
	srv, app := setupTestServer(t)
	author := createUser(t, srv, "writer")
	intruder := createUser(t, srv, "intruder")
	post := &models.Post{Text: "thread", AuthorID: author.ID}
	require.NoError(t, srv.db.Create(post).Error)
	comment := &models.Comment{Text: "mine", PostID: post.ID, AuthorID: author.ID}
	require.NoError(t, srv.db.Create(comment).Error)
	path := fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID)

	resp := doJSON(t, app, http.MethodDelete, path, authToken(t, srv, intruder), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, path, authToken(t, srv, author), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, srv.db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
