package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
	apperrors "github.com/allisson/lifetrack/internal/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, recorder
}

func TestHandleErrorGin(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found maps to 404",
			err:        apperrors.Wrap(apperrors.ErrNotFound, "profile not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "invalid input maps to 422",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "activity required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "invalid_input",
		},
		{
			name:       "model unavailable maps to 503",
			err:        apperrors.Wrap(aiDomain.ErrModelUnavailable, "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "service_unavailable",
		},
		{
			name:       "image analysis failure maps to 503",
			err:        apperrors.Wrap(aiDomain.ErrImageAnalysis, "llava not pulled"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "service_unavailable",
		},
		{
			name:       "unknown errors map to 500 without details",
			err:        apperrors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, recorder := newTestContext(t)

			HandleErrorGin(c, tc.err, nil)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, tc.wantCode, response.Error)
		})
	}

	t.Run("internal errors hide the cause", func(t *testing.T) {
		c, recorder := newTestContext(t)

		HandleErrorGin(c, apperrors.New("sensitive detail"), nil)

		assert.NotContains(t, recorder.Body.String(), "sensitive detail")
	})
}

func TestUserID(t *testing.T) {
	t.Run("parses the header", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Request.Header.Set(UserIDHeader, "42")

		id, err := UserID(c)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("missing header is invalid input", func(t *testing.T) {
		c, _ := newTestContext(t)

		_, err := UserID(c)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("non-numeric header is invalid input", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Request.Header.Set(UserIDHeader, "abc")

		_, err := UserID(c)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
