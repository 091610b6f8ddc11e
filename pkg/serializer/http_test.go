package serializer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/nictagadm/pkg/api"
	"github.com/NVIDIA/nictagadm/pkg/diag"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
	"github.com/NVIDIA/nictagadm/pkg/server"
)

func TestRespondJSON_NicTagList(t *testing.T) {
	w := httptest.NewRecorder()
	list := api.NicTagList{Items: []api.NicTag{
		{Name: "admin", MAC: "00:11:22:aa:bb:cc"},
		{Name: "external", MAC: "00:01:02:03:04:05"},
	}}

	serializer.RespondJSON(w, http.StatusOK, list)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(w.Body.Len()), w.Header().Get("Content-Length"))
	assert.JSONEq(t, `{"items":[
		{"name":"admin","mac":"00:11:22:aa:bb:cc"},
		{"name":"external","mac":"00:01:02:03:04:05"}]}`, w.Body.String())
}

func TestRespondJSON_Diagnostics(t *testing.T) {
	tests := []struct {
		name  string
		items []diag.Diagnostic
		want  string
	}{
		{
			name:  "empty list stays an array",
			items: []diag.Diagnostic{},
			want:  `[]`,
		},
		{
			name: "line and mac diagnostics",
			items: []diag.Diagnostic{
				{Kind: diag.MalformedLine, Line: 6, Raw: "garbage line", Length: 12},
				{Kind: diag.MalformedMAC, Key: "storage_nic", Raw: "not-a-mac", Length: 9},
			},
			want: `[
				{"kind":"malformed-line","line":6,"raw":"garbage line","length":12},
				{"kind":"malformed-mac","key":"storage_nic","raw":"not-a-mac","length":9}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			serializer.RespondJSON(w, http.StatusOK, tt.items)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRespondJSON_ErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	resp := server.ErrorResponse{
		Code:      "NOT_FOUND",
		Message:   "nic tag not found",
		Details:   map[string]any{"name": "admn", "suggestion": "admin"},
		RequestID: "6f1c3a52-59f4-4c1e-9e58-1b8a2a1f0c11",
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	serializer.RespondJSON(w, http.StatusNotFound, resp)

	require.Equal(t, http.StatusNotFound, w.Code)
	var got server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, resp.Code, got.Code)
	assert.Equal(t, "admin", got.Details["suggestion"])
	assert.True(t, resp.Timestamp.Equal(got.Timestamp))
	assert.False(t, got.Retryable)
}

func TestRespondJSON_EncodingFailureIsInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	// a channel inside an otherwise valid payload cannot be encoded
	serializer.RespondJSON(w, http.StatusOK, map[string]any{"tags": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "tags")
}

func TestRespondJSONFor_Head(t *testing.T) {
	list := api.EtherstubList{Items: []string{"stub0", "stub1"}}

	get := httptest.NewRecorder()
	serializer.RespondJSONFor(get, httptest.NewRequest(http.MethodGet, "/v1/etherstubs", nil), http.StatusOK, list)

	head := httptest.NewRecorder()
	serializer.RespondJSONFor(head, httptest.NewRequest(http.MethodHead, "/v1/etherstubs", nil), http.StatusOK, list)

	require.Equal(t, http.StatusOK, head.Code)
	assert.Zero(t, head.Body.Len())
	assert.Equal(t, strconv.Itoa(get.Body.Len()), head.Header().Get("Content-Length"))
}
