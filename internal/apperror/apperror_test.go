package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindInvalidInput, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			require.Equal(t, tc.want, New(tc.kind, "x").StatusCode())
		})
	}
}

func TestAs(t *testing.T) {
	cause := errors.New("boom")

	wrapped := fmt.Errorf("handler: %w", Wrap(KindConflict, "bid too low", cause))
	appErr := As(wrapped)
	require.Equal(t, KindConflict, appErr.Kind)
	require.Equal(t, "bid too low", appErr.Message)
	require.ErrorIs(t, appErr, cause)

	plain := As(cause)
	require.Equal(t, KindInternal, plain.Kind)
	require.ErrorIs(t, plain, cause)
	require.Equal(t, KindInternal, KindOf(cause))
}

func TestErrorMessage(t *testing.T) {
	require.Equal(t, "auction abc not found", NotFound("auction %s not found", "abc").Error())
	require.Equal(t, "internal server error: boom", Internal(errors.New("boom")).Error())
}
