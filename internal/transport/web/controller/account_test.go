package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/forum-vote-sync/internal/command"
	"github.com/jbeshir/forum-vote-sync/internal/datasources/forumapi"
	"github.com/jbeshir/forum-vote-sync/internal/datasources/mocks"
	"github.com/jbeshir/forum-vote-sync/internal/domain"
	"github.com/jbeshir/forum-vote-sync/internal/session"
	"github.com/jbeshir/forum-vote-sync/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin_ServeHTTP(t *testing.T) {
	user := domain.User{ID: "user-1", Name: "Dimas", Email: "dimas@example.com"}

	cases := []struct {
		name        string
		body        string
		loginErr    error
		skipLogin   bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "logged_in",
			body:       `{"email":"dimas@example.com","password":"secret"}`,
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong_password",
			body: `{"email":"dimas@example.com","password":"secret"}`,
			loginErr: &forumapi.APIError{
				StatusCode: http.StatusUnauthorized,
				Message:    "email or password is wrong",
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "email or password is wrong",
		},
		{
			name:       "missing_password",
			body:       `{"email":"dimas@example.com"}`,
			skipLogin:  true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(t)
			profile := mocks.NewMockOwnProfileGetter(t)
			sess := session.New("")

			if !tc.skipLogin {
				token := "token-abc"
				if tc.loginErr != nil {
					token = ""
				}
				auth.EXPECT().Login(mock.Anything, "dimas@example.com", "secret").Return(token, tc.loginErr)
				if tc.loginErr == nil {
					profile.EXPECT().GetOwnProfile(mock.Anything).Return(user, nil)
				}
			}

			controller := Login{LoginCmd: command.NewLogin(auth, profile, sess)}

			req := withTestLogger(httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			switch {
			case tc.wantStatus == http.StatusOK:
				var resp AccountResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, user, resp.User)
				assert.Equal(t, "user-1", sess.CurrentUserID())
			case tc.wantMessage != "":
				var resp errorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.wantMessage, resp.Message)
				assert.Empty(t, sess.CurrentUserID())
			}
		})
	}
}

func TestRegister_ServeHTTP(t *testing.T) {
	user := domain.User{ID: "user-1", Name: "Dimas", Email: "dimas@example.com"}

	registerer := mocks.NewMockAccountRegisterer(t)
	auth := mocks.NewMockAuthenticator(t)
	profile := mocks.NewMockOwnProfileGetter(t)
	sess := session.New("")

	registerer.EXPECT().
		Register(mock.Anything, domain.Registration{Name: "Dimas", Email: "dimas@example.com", Password: "secret"}).
		Return(user, nil)
	auth.EXPECT().Login(mock.Anything, "dimas@example.com", "secret").Return("token", nil)
	profile.EXPECT().GetOwnProfile(mock.Anything).Return(user, nil)

	controller := Register{
		RegisterCmd: command.NewRegister(registerer, command.NewLogin(auth, profile, sess)),
	}

	req := withTestLogger(httptest.NewRequest(http.MethodPost, "/v1/register",
		strings.NewReader(`{"name":"Dimas","email":"dimas@example.com","password":"secret"}`)))
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", sess.CurrentUserID())
}

func TestLogout_ServeHTTP(t *testing.T) {
	sess := session.New("token")
	sess.SetAuthUser(domain.User{ID: "user-1"})
	store := state.New()
	store.ReceiveThreads([]domain.Thread{{ID: "thread-1"}})

	controller := Logout{LogoutCmd: command.NewLogout(sess, store)}

	req := withTestLogger(httptest.NewRequest(http.MethodPost, "/v1/logout", nil))
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, sess.AccessToken())
	assert.Empty(t, store.Threads())
}

func TestLeaderboardsList_ServeHTTP(t *testing.T) {
	lister := mocks.NewMockLeaderboardLister(t)
	lister.EXPECT().ListLeaderboards(mock.Anything).
		Return([]domain.LeaderboardEntry{{User: domain.User{ID: "user-1"}, Score: 25}}, nil)

	controller := LeaderboardsList{ListCmd: command.NewListLeaderboards(lister), CacheMaxAge: time.Minute}

	req := withTestLogger(httptest.NewRequest(http.MethodGet, "/v1/leaderboards", nil))
	rec := httptest.NewRecorder()
	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))

	var resp LeaderboardsListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 25, resp.Data[0].Score)
}
