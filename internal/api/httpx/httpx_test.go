package httpx

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFields_URLEncoded(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("description=run&duration=30"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	v, err := ReadFields(r)
	require.NoError(t, err)
	assert.Equal(t, "run", v.Get("description"))
	assert.Equal(t, "30", v.Get("duration"))
}

func TestReadFields_JSONNumbersAndNulls(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"description":"run","duration":30,"date":null}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	v, err := ReadFields(r)
	require.NoError(t, err)
	assert.Equal(t, "run", v.Get("description"))
	assert.Equal(t, "30", v.Get("duration"))
	assert.False(t, v.Has("date"))
}

func TestReadFields_JSONRejectsNested(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":{"x":1}}`))
	r.Header.Set("Content-Type", "application/json")

	_, err := ReadFields(r)
	assert.Error(t, err)
}

func TestReadFields_JSONMalformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	r.Header.Set("Content-Type", "application/json")

	_, err := ReadFields(r)
	assert.Error(t, err)
}

func TestReadFields_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("username", "ann"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	v, err := ReadFields(r)
	require.NoError(t, err)
	assert.Equal(t, "ann", v.Get("username"))
}

func TestReadFields_EmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	v, err := ReadFields(r)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "user not found", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
}
