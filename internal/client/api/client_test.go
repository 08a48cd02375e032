package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dbellanger/lexico/internal/common"
)

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username == "taken" {
			w.WriteHeader(http.StatusConflict)
			return
		}
		_ = json.NewEncoder(w).Encode(User{ID: "u-1", Username: creds.Username})
	})

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Session{ID: "u-1", Username: creds.Username, Token: "tok-123"})
	})

	mux.HandleFunc("/api/word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.AuthorizationHeaderName) != common.BearerPrefix+"tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/word/":
			_ = json.NewEncoder(w).Encode([]*Word{
				{ID: "w-1", SourceText: "chien", SourceLanguage: "fr", TargetText: "dog", TargetLanguage: "en"},
			})
		case r.Method == http.MethodPost:
			var word Word
			_ = json.NewDecoder(r.Body).Decode(&word)
			word.ID = "w-2"
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(word)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/word/missing":
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, NewClient(srv.URL, time.Second)
}

func TestRegister(t *testing.T) {
	_, client := newTestServer(t)

	user, err := client.Register(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %q", user.Username)
	}
}

func TestRegisterConflict(t *testing.T) {
	_, client := newTestServer(t)

	_, err := client.Register(context.Background(), "taken", "secret1")
	if !errors.Is(err, common.ErrorConflict) {
		t.Errorf("expected ErrorConflict, got %v", err)
	}
}

func TestLoginStoresToken(t *testing.T) {
	_, client := newTestServer(t)

	if client.IsAuthenticated() {
		t.Fatalf("expected no token before login")
	}

	session, err := client.Login(context.Background(), "alice", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token != "tok-123" {
		t.Errorf("unexpected token %q", session.Token)
	}
	if !client.IsAuthenticated() {
		t.Errorf("expected client to hold the token after login")
	}

	client.Logout()
	if client.IsAuthenticated() {
		t.Errorf("expected no token after logout")
	}
}

func TestLoginRejected(t *testing.T) {
	_, client := newTestServer(t)

	_, err := client.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Errorf("expected ErrorUnauthorized, got %v", err)
	}
	if client.IsAuthenticated() {
		t.Errorf("expected no token after a rejected login")
	}
}

func TestWordsRequireToken(t *testing.T) {
	_, client := newTestServer(t)

	_, err := client.ListWords(context.Background())
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Errorf("expected ErrorUnauthorized without a token, got %v", err)
	}
}

func TestWordCalls(t *testing.T) {
	_, client := newTestServer(t)

	if _, err := client.Login(context.Background(), "alice", "secret1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := client.ListWords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].SourceText != "chien" {
		t.Errorf("unexpected list: %+v", list)
	}

	created, err := client.CreateWord(context.Background(), &Word{
		SourceText: "chat", SourceLanguage: "fr", TargetText: "cat", TargetLanguage: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "w-2" {
		t.Errorf("expected generated id, got %q", created.ID)
	}

	if err := client.DeleteWord(context.Background(), "w-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := client.DeleteWord(context.Background(), "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestServerUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := client.ListWords(context.Background())
	if !errors.Is(err, common.ErrorUnavailable) {
		t.Errorf("expected ErrorUnavailable, got %v", err)
	}
}
