package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateAccount(t *testing.T) {
	var got createAccountRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authentication/users/candidate", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	require.NoError(t, c.CreateAccount(context.Background(), "tok", "alice", "secret", "CANDIDATE"))
	assert.Equal(t, createAccountRequest{NetID: "alice", Password: "secret", Role: "CANDIDATE"}, got)
}

func TestClient_CreateAccountFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user exists", http.StatusConflict)
	}))
	defer srv.Close()

	err := New(srv.URL, time.Second).CreateAccount(context.Background(), "tok", "alice", "secret", "CANDIDATE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "user exists")
}

func TestClient_IsNetIDUnique(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/authentication/users/checkNetIdUnique/alice":
			_, _ = w.Write([]byte("true"))
		case "/authentication/users/checkNetIdUnique/bob":
			_, _ = w.Write([]byte("false"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()
	c := New(srv.URL, time.Second)
	ctx := context.Background()

	unique, err := c.IsNetIDUnique(ctx, "tok", "alice")
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = c.IsNetIDUnique(ctx, "tok", "bob")
	require.NoError(t, err)
	assert.False(t, unique)

	_, err = c.IsNetIDUnique(ctx, "tok", "carol")
	assert.Error(t, err)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 20*time.Millisecond).IsNetIDUnique(context.Background(), "tok", "alice")
	assert.Error(t, err)
}
