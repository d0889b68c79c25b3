package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartPhoto(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestSavePassportPhoto(t *testing.T) {
	dir := t.TempDir()
	header := multipartPhoto(t, "me.JPG", []byte("fake image bytes"))

	savedPath, err := SavePassportPhoto(header, dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(savedPath, ".jpg"))

	data, err := os.ReadFile(savedPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
	assert.Equal(t, dir, filepath.Dir(savedPath))
}

func TestSavePassportPhotoRejectsOtherTypes(t *testing.T) {
	dir := t.TempDir()
	for _, filename := range []string{"script.exe", "notes.pdf", "photo"} {
		header := multipartPhoto(t, filename, []byte("x"))
		_, err := SavePassportPhoto(header, dir)
		assert.Error(t, err, filename)
	}
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "/uploads/12345.jpg", GetFileURL("./uploads/12345.jpg"))
	assert.Equal(t, "", GetFileURL(""))
}
