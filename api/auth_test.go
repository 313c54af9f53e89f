package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	mockdb "github.com/katatrina/vgvault-BE/internal/db/mock"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/stretchr/testify/require"
)

type eqCreateUserParamsMatcher struct {
	arg      db.CreateUserParams
	password string
}

func (e eqCreateUserParamsMatcher) Matches(x interface{}) bool {
	arg, ok := x.(db.CreateUserParams)
	if !ok {
		return false
	}

	if err := util.CheckPassword(e.password, arg.HashedPassword); err != nil {
		return false
	}

	return arg.Username == e.arg.Username &&
		arg.DisplayName == e.arg.DisplayName &&
		arg.Email == e.arg.Email &&
		!arg.IsAdmin
}

func (e eqCreateUserParamsMatcher) String() string {
	return fmt.Sprintf("matches arg %v and password %v", e.arg, e.password)
}

func EqCreateUserParams(arg db.CreateUserParams, password string) gomock.Matcher {
	return eqCreateUserParamsMatcher{arg, password}
}

func TestRegisterUserAPI(t *testing.T) {
	user, password := randomUser(t)

	testCases := []struct {
		name          string
		body          map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]any{
				"username":     user.Username,
				"display_name": user.DisplayName,
				"email":        user.Email,
				"password":     password,
			},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateUserParams{
					Username:    user.Username,
					DisplayName: user.DisplayName,
					Email:       user.Email,
				}
				store.EXPECT().
					CreateUser(gomock.Any(), EqCreateUserParams(arg, password)).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				requireBodyMatchUser(t, recorder.Body, user)
			},
		},
		{
			name: "UsernameIsLowercased",
			body: map[string]any{
				"username":     "  " + "SAMUS_Aran" + " ",
				"display_name": user.DisplayName,
				"email":        user.Email,
				"password":     password,
			},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateUserParams{
					Username:    "samus_aran",
					DisplayName: user.DisplayName,
					Email:       user.Email,
				}
				store.EXPECT().
					CreateUser(gomock.Any(), EqCreateUserParams(arg, password)).
					Times(1).
					Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "InvalidUsername",
			body: map[string]any{
				"username":     "no spaces allowed",
				"display_name": user.DisplayName,
				"email":        user.Email,
				"password":     password,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				var resp FailedValidationResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Len(t, resp.FieldViolations, 1)
				require.Equal(t, "username", resp.FieldViolations[0].Field)
			},
		},
		{
			name: "WeakPasswordAndBadEmail",
			body: map[string]any{
				"username":     user.Username,
				"display_name": user.DisplayName,
				"email":        "not-an-email",
				"password":     "password",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				var resp FailedValidationResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Len(t, resp.FieldViolations, 2)
			},
		},
		{
			name: "DuplicateUsername",
			body: map[string]any{
				"username":     user.Username,
				"display_name": user.DisplayName,
				"email":        user.Email,
				"password":     password,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.User{}, &pgconn.PgError{Code: db.UniqueViolationCode, ConstraintName: db.UniqueUsernameConstraint})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
				requireErrorKind(t, recorder.Body, "conflict")
			},
		},
		{
			name: "InternalError",
			body: map[string]any{
				"username":     user.Username,
				"display_name": user.DisplayName,
				"email":        user.Email,
				"password":     password,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.User{}, errors.New("connection reset"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				require.NotContains(t, recorder.Body.String(), "connection reset")
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestLoginUserAPI(t *testing.T) {
	user, password := randomUser(t)

	testCases := []struct {
		name          string
		body          map[string]any
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: map[string]any{"username": user.Username, "password": password},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByUsername(gomock.Any(), gomock.Eq(user.Username)).Times(1).Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp loginUserResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.AccessToken)
				require.Equal(t, user.ID, resp.User.ID)
				require.NotContains(t, recorder.Body.String(), user.HashedPassword)

				cookies := recorder.Result().Cookies()
				require.Len(t, cookies, 1)
				require.Equal(t, accessTokenCookieName, cookies[0].Name)
				require.Equal(t, resp.AccessToken, cookies[0].Value)
				require.True(t, cookies[0].HttpOnly)
			},
		},
		{
			name: "UserNotFound",
			body: map[string]any{"username": "nobody", "password": password},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Times(1).Return(db.User{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				requireErrorKind(t, recorder.Body, "unauthorized")
			},
		},
		{
			name: "IncorrectPassword",
			body: map[string]any{"username": user.Username, "password": "Wrong-pass1"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByUsername(gomock.Any(), gomock.Eq(user.Username)).Times(1).Return(user, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				require.Empty(t, recorder.Result().Cookies())
			},
		},
		{
			name: "MissingPassword",
			body: map[string]any{"username": user.Username},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockdb.NewMockStore(ctrl))
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, accessTokenCookieName, cookies[0].Name)
	require.Negative(t, cookies[0].MaxAge)
}

func TestAuthStatusAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newTestServer(t, mockdb.NewMockStore(ctrl))
	user, _ := randomUser(t)

	t.Run("Anonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/v1/auth/status", nil)
		require.NoError(t, err)

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp authStatusResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.False(t, resp.Authenticated)
		require.Nil(t, resp.User)
	})

	t.Run("InvalidTokenIsAnonymous", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/v1/auth/status", nil)
		require.NoError(t, err)
		request.Header.Set(authorizationHeaderKey, "Bearer garbage")

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Contains(t, recorder.Body.String(), `"authenticated":false`)
	})

	t.Run("Cookie", func(t *testing.T) {
		accessToken, _, err := server.tokenMaker.CreateToken(claimsOf(user), time.Minute)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request, err := http.NewRequest(http.MethodGet, "/v1/auth/status", nil)
		require.NoError(t, err)
		request.AddCookie(&http.Cookie{Name: accessTokenCookieName, Value: accessToken})

		server.router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp authStatusResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.True(t, resp.Authenticated)
		require.Equal(t, user.ID, resp.User.UserID)
		require.Equal(t, user.Username, resp.User.Username)
	})
}

func requireBodyMatchUser(t *testing.T, body io.Reader, user db.User) {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var gotUser userResponse
	require.NoError(t, json.Unmarshal(data, &gotUser))
	require.Equal(t, user.ID, gotUser.ID)
	require.Equal(t, user.Username, gotUser.Username)
	require.Equal(t, user.DisplayName, gotUser.DisplayName)
	require.Equal(t, user.Email, gotUser.Email)
	require.NotContains(t, string(data), "hashed_password")
}

func requireErrorKind(t *testing.T, body io.Reader, kind string) {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var resp errorBody
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, kind, resp.Kind)
	require.NotEmpty(t, resp.Error)
}
