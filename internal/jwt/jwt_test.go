package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, err := j.GetUserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestJWT_Validate(t *testing.T) {
	j := New("test-secret", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), "alice")
	assert.NoError(t, err)

	assert.NoError(t, j.Validate(context.Background(), token))
	assert.Error(t, j.Validate(context.Background(), "not-a-token"))
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), "alice")
	assert.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), token))

	_, err = j.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := New("test-secret", time.Minute)
	other := New("other-secret", time.Minute)

	token, err := j.Generate(context.Background(), uuid.New(), "alice")
	assert.NoError(t, err)

	_, err = other.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase bearer", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token part", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := j.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
