package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func getJSON(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, http.NoBody)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResponseEnvelope(t *testing.T) {
	t.Run("success carries data and propagated request id", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			c.Set("request_id", "req-42")
			respondSuccess(c, http.StatusOK, entity.NewNERResult([]entity.Entity{
				{Text: "Apple", Label: entity.LabelOrg},
			}))
		})

		w := getJSON(t, router, "/test")

		assert.Equal(t, http.StatusOK, w.Code)

		var response Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.NotNil(t, response.Data)
		assert.Nil(t, response.Error)
		require.NotNil(t, response.Meta)
		assert.Equal(t, "req-42", response.Meta.RequestID)
		assert.NotEmpty(t, response.Meta.Timestamp)
	})

	t.Run("error carries code and message, never data", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			respondError(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "analysis engine unavailable")
		})

		w := getJSON(t, router, "/test")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Nil(t, response.Data)
		require.NotNil(t, response.Error)
		assert.Equal(t, "SERVICE_UNAVAILABLE", response.Error.Code)
		assert.Equal(t, "analysis engine unavailable", response.Error.Message)
	})

	t.Run("request id is minted when the middleware did not run", func(t *testing.T) {
		router := gin.New()
		router.GET("/test", func(c *gin.Context) {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request")
		})

		w := getJSON(t, router, "/test")

		var response Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Meta)
		assert.NotEmpty(t, response.Meta.RequestID)
	})
}
