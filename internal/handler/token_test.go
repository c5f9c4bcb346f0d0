package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rnayak/carshare/internal/domain"
)

func tokenRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestCreateToken_OK(t *testing.T) {
	srv := newTestServer(nil, nil, &mockAuthServicer{
		authenticate: func(_ context.Context, username, password string) (domain.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "hunter2", password)
			return domain.User{ID: 1, Username: username}, nil
		},
	})

	var body map[string]string
	rec := doRequest(t, srv, tokenRequest(url.Values{
		"username": {"alice"},
		"password": {"hunter2"},
	}), &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The access token is the username itself.
	assert.Equal(t, "alice", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
}

func TestCreateToken_WrongCredentials(t *testing.T) {
	srv := newTestServer(nil, nil, &mockAuthServicer{
		authenticate: func(_ context.Context, _, _ string) (domain.User, error) {
			return domain.User{}, domain.ErrUnauthorized
		},
	})

	rec := doRequest(t, srv, tokenRequest(url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	}), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "username or password incorrect", errorBody(t, rec).Error.Message)
}

func TestCreateToken_MissingUsername(t *testing.T) {
	srv := newTestServer(nil, nil, &mockAuthServicer{})

	rec := doRequest(t, srv, tokenRequest(url.Values{
		"password": {"hunter2"},
	}), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username and password are required", errorBody(t, rec).Error.Message)
}

func TestCreateToken_MissingPassword(t *testing.T) {
	srv := newTestServer(nil, nil, &mockAuthServicer{})

	rec := doRequest(t, srv, tokenRequest(url.Values{
		"username": {"alice"},
	}), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
