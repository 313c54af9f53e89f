package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	mockdb "github.com/katatrina/vgvault-BE/internal/db/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthAPI(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "OK", wantStatus: http.StatusOK},
		{name: "DatabaseDown", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			store.EXPECT().Ping(gomock.Any()).Times(1).Return(tc.pingErr)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/health", nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatus, recorder.Code)
			require.NotContains(t, recorder.Body.String(), "connection refused")
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}
