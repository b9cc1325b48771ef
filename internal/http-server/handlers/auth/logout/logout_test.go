package logout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventViewer/internal/http-server/handlers/auth/logout/mocks"
	"eventViewer/internal/lib/logger/handlers/slogdiscard"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockSession := mocks.NewSessionWriter(t)
		mockSession.On("SetAuthenticated", false).Return(nil)

		handler := New(logger, mockSession)

		req, err := http.NewRequest("POST", "/api/logout", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp LogoutResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.False(t, resp.Authenticated)
	})

	t.Run("Session write failure", func(t *testing.T) {
		t.Parallel()

		mockSession := mocks.NewSessionWriter(t)
		mockSession.On("SetAuthenticated", false).Return(errors.New("disk full"))

		handler := New(logger, mockSession)

		req, err := http.NewRequest("POST", "/api/logout", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to clear session"}`, rr.Body.String())
	})
}
