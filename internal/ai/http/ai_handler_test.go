package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
	aiUsecaseMocks "github.com/allisson/lifetrack/internal/ai/usecase/mocks"
	apperrors "github.com/allisson/lifetrack/internal/errors"
	"github.com/allisson/lifetrack/internal/httputil"
)

func setupRouter(uc *aiUsecaseMocks.MockEstimationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAIHandler(uc, logger)

	router := gin.New()
	router.POST("/v1/ai/estimate-calories", handler.EstimateCaloriesHandler)
	router.POST("/v1/ai/estimate-food-kcal", handler.EstimateFoodKcalHandler)
	router.POST("/v1/ai/analyze-food-image", handler.AnalyzeFoodImageHandler)
	router.GET("/v1/ai/insight", handler.InsightHandler)
	router.GET("/v1/ai/finance-plan", handler.FinanceGoalPlanHandler)
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httputil.UserIDHeader, "7")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestEstimateCaloriesHandler(t *testing.T) {
	t.Run("returns the estimate", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("EstimateActivityCalories", mock.Anything, int64(7), aiDomain.ActivityEstimateInput{
			Activity:        "running",
			DurationMinutes: 30,
		}).Return(aiDomain.EstimationResult{Value: 343, Explanation: "MET based."}, nil)

		recorder := doJSON(router, http.MethodPost, "/v1/ai/estimate-calories", map[string]any{
			"activity":         "running",
			"duration_minutes": 30,
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, float64(343), response["calories"])
		assert.Equal(t, "MET based.", response["explanation"])
	})

	t.Run("validation failure maps to 422", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("EstimateActivityCalories", mock.Anything, int64(7), mock.Anything).
			Return(aiDomain.EstimationResult{}, apperrors.Wrap(apperrors.ErrInvalidInput, "Activity: cannot be blank"))

		recorder := doJSON(router, http.MethodPost, "/v1/ai/estimate-calories", map[string]any{
			"duration_minutes": 30,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("missing user header maps to 422", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/ai/estimate-calories", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		uc.AssertNotCalled(t, "EstimateActivityCalories", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEstimateFoodKcalHandler(t *testing.T) {
	t.Run("model unavailable maps to 503", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("EstimateFoodKcal", mock.Anything, aiDomain.FoodEstimateInput{
			FoodName:    "pizza",
			ServingSize: 2,
			ServingUnit: "slices",
		}).Return(aiDomain.EstimationResult{}, apperrors.Wrap(aiDomain.ErrModelUnavailable, "connection refused"))

		recorder := doJSON(router, http.MethodPost, "/v1/ai/estimate-food-kcal", map[string]any{
			"food_name":    "pizza",
			"serving_size": 2,
			"serving_unit": "slices",
		})

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "service_unavailable")
	})
}

func TestAnalyzeFoodImageHandler(t *testing.T) {
	t.Run("strips data-URL prefixes before decoding", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("AnalyzeFoodImage", mock.Anything, []byte("image-bytes")).
			Return(aiDomain.ImageAnalysisResult{
				Foods:     []aiDomain.FoodItem{{Name: "rice", Portion: "1 cup", Kcal: 205}},
				TotalKcal: 205,
				Details:   "Rice bowl.",
			}, nil)

		recorder := doJSON(router, http.MethodPost, "/v1/ai/analyze-food-image", map[string]any{
			"image": "data:image/jpeg;base64,aW1hZ2UtYnl0ZXM=",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, float64(205), response["total_kcal"])
	})

	t.Run("invalid base64 maps to 422", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		recorder := doJSON(router, http.MethodPost, "/v1/ai/analyze-food-image", map[string]any{
			"image": "!!!not-base64!!!",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		uc.AssertNotCalled(t, "AnalyzeFoodImage", mock.Anything, mock.Anything)
	})

	t.Run("vision failure maps to 503", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("AnalyzeFoodImage", mock.Anything, mock.Anything).
			Return(aiDomain.ImageAnalysisResult{}, apperrors.Wrap(aiDomain.ErrImageAnalysis, "llava not pulled"))

		recorder := doJSON(router, http.MethodPost, "/v1/ai/analyze-food-image", map[string]any{
			"image": "aW1hZ2UtYnl0ZXM=",
		})

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

func TestInsightHandler(t *testing.T) {
	t.Run("returns the advice", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("WeeklyInsight", mock.Anything, int64(7)).Return("- Keep it up!", nil)

		recorder := doJSON(router, http.MethodGet, "/v1/ai/insight", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Keep it up!")
	})
}

func TestFinanceGoalPlanHandler(t *testing.T) {
	t.Run("returns the plan even when it carries an error text", func(t *testing.T) {
		uc := new(aiUsecaseMocks.MockEstimationUseCase)
		router := setupRouter(uc)

		uc.On("FinanceGoalPlan", mock.Anything, int64(7)).
			Return("Plan unavailable: generation service unavailable", nil)

		recorder := doJSON(router, http.MethodGet, "/v1/ai/finance-plan", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Plan unavailable")
	})
}
