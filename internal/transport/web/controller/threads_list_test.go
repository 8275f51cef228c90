package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources/forumapi"
	"github.com/jbeshir/forum-vote-sync/internal/datasources/mocks"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestThreadsList_ServeHTTP(t *testing.T) {
	remoteThreads := []domain.Thread{
		{ID: "thread-1", Title: "First", VoteSets: domain.VoteSets{UpVotesBy: []string{"user-2"}}},
	}
	remoteUsers := []domain.User{{ID: "user-2", Name: "Dimas"}}

	cases := []struct {
		name        string
		query       string
		threadsErr  error
		skipRemote  bool
		wantStatus  int
		wantThreads int
	}{
		{
			name:        "refreshes_from_forum",
			wantStatus:  http.StatusOK,
			wantThreads: 1,
		},
		{
			name:       "cached_skips_forum",
			query:      "?cached=true",
			skipRemote: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "forum_failure",
			threadsErr: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := state.New()
			threadLister := mocks.NewMockThreadLister(t)
			userLister := mocks.NewMockUserLister(t)

			if !tc.skipRemote {
				threadLister.EXPECT().ListThreads(mock.Anything).Return(remoteThreads, tc.threadsErr).Maybe()
				userLister.EXPECT().ListUsers(mock.Anything).Return(remoteUsers, nil).Maybe()
			}

			controller := ThreadsList{
				PopulateCmd: command.NewPopulateThreadsAndUsers(threadLister, userLister, store, store),
				Threads:     store,
				Users:       store,
			}

			req := withTestLogger(httptest.NewRequest(http.MethodGet, "/v1/threads"+tc.query, nil))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp ThreadsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Data.Threads, tc.wantThreads)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestThreadGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		detail     domain.ThreadDetail
		fetchErr   error
		wantStatus int
	}{
		{
			name: "returns_detail",
			detail: domain.ThreadDetail{
				ID:       "thread-1",
				Comments: []domain.Comment{{ID: "comment-1"}},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "forum_not_found",
			fetchErr:   &forumapi.APIError{StatusCode: http.StatusNotFound, Message: "thread tidak ditemukan"},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := state.New()
			getter := mocks.NewMockThreadDetailGetter(t)
			getter.EXPECT().GetThreadDetail(mock.Anything, "thread-1").Return(tc.detail, tc.fetchErr)

			controller := ThreadGet{
				FetchCmd: command.NewFetchThreadDetail(getter, store),
				Threads:  store,
			}

			req := withTestLogger(httptest.NewRequest(http.MethodGet, "/v1/threads/thread-1", nil))
			req = mux.SetURLVars(req, map[string]string{"thread_id": "thread-1"})
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var resp ThreadGetResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "thread-1", resp.Data.ID)
				assert.Len(t, resp.Data.Comments, 1)
			}
		})
	}
}

func TestThreadCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		createErr  error
		skipCreate bool
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"title":"New","body":"Body","category":"go"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing_title",
			body:       `{"body":"Body"}`,
			skipCreate: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_body",
			body:       `{`,
			skipCreate: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not_logged_in",
			body:       `{"title":"New","body":"Body","category":"go"}`,
			createErr:  &forumapi.APIError{StatusCode: http.StatusUnauthorized, Message: "Missing authentication"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := state.New()
			creator := mocks.NewMockThreadCreator(t)
			if !tc.skipCreate {
				creator.EXPECT().
					CreateThread(mock.Anything, domain.NewThread{Title: "New", Body: "Body", Category: "go"}).
					Return(domain.Thread{ID: "thread-new", Title: "New"}, tc.createErr)
			}

			controller := ThreadCreate{AddCmd: command.NewAddThread(creator, store)}

			req := withTestLogger(httptest.NewRequest(http.MethodPost, "/v1/threads", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				require.Len(t, store.Threads(), 1)
				assert.Equal(t, "thread-new", store.Threads()[0].ID)
			}
		})
	}
}

func TestCommentCreate_ServeHTTP(t *testing.T) {
	store := state.New()
	store.ReceiveThreadDetail(domain.ThreadDetail{ID: "thread-1"})

	creator := mocks.NewMockCommentCreator(t)
	creator.EXPECT().CreateComment(mock.Anything, "thread-1", "hi").
		Return(domain.Comment{ID: "comment-new", Content: "hi"}, nil)

	controller := CommentCreate{AddCmd: command.NewAddComment(creator, store)}

	req := withTestLogger(httptest.NewRequest(http.MethodPost, "/v1/threads/thread-1/comments",
		strings.NewReader(`{"content":"hi"}`)))
	req = mux.SetURLVars(req, map[string]string{"thread_id": "thread-1"})
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	detail, err := store.ThreadDetail("thread-1")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "comment-new", detail.Comments[0].ID)
}

func TestThreadsList_FilterAndPage(t *testing.T) {
	store := state.New()
	store.ReceiveThreads([]domain.Thread{
		{ID: "t1", Category: "go"},
		{ID: "t2", Category: "react"},
		{ID: "t3", Category: "go"},
		{ID: "t4", Category: "go"},
	})

	controller := ThreadsList{Threads: store, Users: store}

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []string
		wantTotal  int
	}{
		{
			name:       "all",
			query:      "?cached=true",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"t1", "t2", "t3", "t4"},
			wantTotal:  4,
		},
		{
			name:       "category",
			query:      "?cached=true&category=go",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"t1", "t3", "t4"},
			wantTotal:  3,
		},
		{
			name:       "category_second_page",
			query:      "?cached=true&category=go&page=2&page_size=2",
			wantStatus: http.StatusOK,
			wantIDs:    []string{"t4"},
			wantTotal:  3,
		},
		{
			name:       "page_past_end",
			query:      "?cached=true&page=3&page_size=2",
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
			wantTotal:  4,
		},
		{
			name:       "invalid_page",
			query:      "?cached=true&page=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page_size_too_large",
			query:      "?cached=true&page_size=500",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := withTestLogger(httptest.NewRequest(http.MethodGet, "/v1/threads"+tc.query, nil))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp ThreadsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			ids := make([]string, 0, len(resp.Data.Threads))
			for _, thread := range resp.Data.Threads {
				ids = append(ids, thread.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantTotal, resp.Data.Total)
		})
	}
}
