package toggle_sort

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func toggle(t *testing.T, body string) (*httptest.ResponseRecorder, ToggleResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	NewHandler(nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	var resp ToggleResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestHandler_Cycle(t *testing.T) {
	_, resp := toggle(t, `{"key":"cinema"}`)
	assert.Equal(t, "cinema", resp.Key)
	assert.Equal(t, 1, resp.Direction)

	_, resp = toggle(t, `{"current":{"key":"cinema","direction":1},"key":"cinema"}`)
	assert.Equal(t, -1, resp.Direction)

	_, resp = toggle(t, `{"current":{"key":"cinema","direction":-1},"key":"cinema"}`)
	assert.Equal(t, "", resp.Key)
	assert.Equal(t, 0, resp.Direction)
	for k, d := range resp.Columns {
		assert.Zero(t, d, k)
	}
}

func TestHandler_ResetsOtherKeys(t *testing.T) {
	_, resp := toggle(t, `{"current":{"key":"movie","direction":-1},"key":"booked"}`)

	assert.Equal(t, "booked", resp.Key)
	assert.Equal(t, 1, resp.Direction)
	assert.Equal(t, 1, resp.Columns["booked"])
	assert.Equal(t, 0, resp.Columns["movie"])
	assert.Len(t, resp.Columns, 7)
}

func TestHandler_Invalid(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"key":"price"}`,
		`{"current":{"key":"price","direction":1},"key":"movie"}`,
		`{"current":{"key":"movie","direction":3},"key":"movie"}`,
	} {
		w, _ := toggle(t, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}
