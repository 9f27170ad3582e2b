package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wimdy/wimdy/internal/domain"
	"github.com/wimdy/wimdy/internal/repository/mocks"
)

func runMiddleware(t *testing.T, users *mocks.UserStore, header string) *domain.User {
	t.Helper()

	var actor *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = ActorFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("X-User-ID", header)
	}
	Middleware(users)(next).ServeHTTP(httptest.NewRecorder(), req)
	return actor
}

func TestMiddleware_ResolvesActor(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("UserByID", mock.Anything, uint(7)).Return(&domain.User{ID: 7, Name: "Ada"}, nil)

	actor := runMiddleware(t, users, "7")

	require.NotNil(t, actor)
	assert.Equal(t, uint(7), actor.ID)
}

func TestMiddleware_AnonymousWithoutHeader(t *testing.T) {
	actor := runMiddleware(t, new(mocks.UserStore), "")
	assert.Nil(t, actor)
}

func TestMiddleware_AnonymousOnUnknownUser(t *testing.T) {
	users := new(mocks.UserStore)
	users.On("UserByID", mock.Anything, uint(42)).Return(nil, errors.New("no row"))

	actor := runMiddleware(t, users, "42")
	assert.Nil(t, actor)
}

func TestMiddleware_AnonymousOnMalformedHeader(t *testing.T) {
	actor := runMiddleware(t, new(mocks.UserStore), "not-a-number")
	assert.Nil(t, actor)
}

func TestIsAuthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsAuthenticated(req.Context()))
}
