// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TRANSPORT CONTRACT TESTS
// =============================================================================

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok-123"))
	_, err := client.ListChats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"access_token":"t","token_type":"bearer"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken(""))
	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	if hasAuth {
		t.Errorf("unauthenticated request carried Authorization header %q", gotAuth)
	}
}

func TestEmptyBodyIsVoidSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("delete used method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	if err := client.DeleteChat(context.Background(), "c1"); err != nil {
		t.Errorf("204 response should be a void success, got %v", err)
	}
}

func TestErrorDetailExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"string detail", 400, `{"detail":"title must not be empty"}`, "title must not be empty"},
		{"structured detail", 422, `{"detail":[{"loc":["body","title"]}]}`, `[{"loc":["body","title"]}]`},
		{"no detail field", 500, `{"oops":true}`, "request failed with status 500"},
		{"unparseable body", 502, `<html>bad gateway</html>`, "request failed with status 502"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, StaticToken("tok"))
			_, err := client.ListChats(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestUnauthorizedMapsToErrAuthFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"could not validate credentials"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("expired"))
	_, err := client.ListChats(context.Background())
	if !errors.Is(err, ErrAuthFailed) {
		t.Errorf("401 should map to ErrAuthFailed, got %v", err)
	}
}

func TestSendMessageReturnsAssistantReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chats/c1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"m9","chat_id":"c1","role":"assistant","content":"hi there","created_at":"2025-06-01T12:00:00Z"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	reply, err := client.SendMessage(context.Background(), "c1", "hello")
	require.NoError(t, err)
	assert.Equal(t, RoleAssistant, reply.Role)
	assert.Equal(t, "hi there", reply.Content)
}

func TestListChatsDecodesNullTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"c1","title":null,"created_at":"2025-06-01T12:00:00Z"},
		                 {"id":"c2","title":"named","created_at":"2025-06-02T12:00:00Z"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	chats, err := client.ListChats(context.Background())
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Nil(t, chats[0].Title)
	require.NotNil(t, chats[1].Title)
	assert.Equal(t, "named", *chats[1].Title)
}
