package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postAudioUpload(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "letter.m4a")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake audio bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadWithoutStorageReturns503(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uploadHandler := NewUploadHandler(nil)
	router := gin.New()
	router.POST("/api/v1/upload", uploadHandler.UploadAudio)

	w := postAudioUpload(t, router)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "File storage is not configured")
}
