package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andrewpaige1/studysnap-api/auth"
	"github.com/andrewpaige1/studysnap-api/config"
	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testJWT = config.JWTConfig{
	SecretKey: "0123456789abcdef0123456789abcdef",
	Issuer:    "studysnap",
	Audience:  []string{"studysnap-api"},
}

type fakeSyncer struct {
	subject, nickname string
	err               error
}

func (f *fakeSyncer) SyncUser(_ context.Context, subject, nickname string) (*models.User, error) {
	f.subject, f.nickname = subject, nickname
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 7, Subject: subject, Nickname: nickname}, nil
}

func protected(t *testing.T, syncer UserSyncer) http.Handler {
	t.Helper()
	check, err := EnsureValidToken(testJWT, logger.NewNop())
	require.NoError(t, err)
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(user.Subject))
	})
	return check(SyncUser(syncer, logger.NewNop())(final))
}

func TestAuthChain(t *testing.T) {
	t.Parallel()

	valid, err := auth.CreateToken(testJWT, "auth0|1", "ann", time.Hour)
	require.NoError(t, err)
	otherAudience := testJWT
	otherAudience.Audience = []string{"someone-else"}
	wrongAud, err := auth.CreateToken(otherAudience, "auth0|1", "", time.Hour)
	require.NoError(t, err)
	otherSecret := testJWT
	otherSecret.SecretKey = "ffffffffffffffffffffffffffffffff"
	wrongKey, err := auth.CreateToken(otherSecret, "auth0|1", "", time.Hour)
	require.NoError(t, err)
	expired, err := auth.CreateToken(testJWT, "auth0|1", "", -time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		syncErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "auth0|1"},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed", header: "Bearer nonsense", wantStatus: http.StatusUnauthorized},
		{name: "wrong audience", header: "Bearer " + wrongAud, wantStatus: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "sync failure", header: "Bearer " + valid, syncErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			syncer := &fakeSyncer{err: tt.syncErr}
			req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(t, syncer).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "ann", syncer.nickname)
			}
		})
	}
}

func TestSyncUser_NoClaims(t *testing.T) {
	t.Parallel()
	h := SyncUser(&fakeSyncer{}, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
	}{
		{name: "ok", status: http.StatusOK, wantLevel: zapcore.InfoLevel},
		{name: "client error", status: http.StatusNotFound, wantLevel: zapcore.WarnLevel},
		{name: "server error", status: http.StatusBadGateway, wantLevel: zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			core, logs := observer.New(zapcore.DebugLevel)
			log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

			h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/flashcards", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, "POST", fields["method"])
			assert.Equal(t, "/api/flashcards", fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
		})
	}
}

func TestRequestLogger_KeepsFlusher(t *testing.T) {
	t.Parallel()
	h := RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(http.Flusher)
		assert.True(t, ok)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/snapshots", nil))
}
