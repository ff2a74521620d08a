package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/greeter/internal/logging"
	"github.com/dmitrijs2005/greeter/internal/server/models"
)

type fakeUsers struct {
	registerOut *models.User
	registerErr error
	loginOut    *models.User
	loginErr    error

	gotUser, gotPass string
}

func (f *fakeUsers) Register(ctx context.Context, username, password string) (*models.User, error) {
	f.gotUser, f.gotPass = username, password
	return f.registerOut, f.registerErr
}

func (f *fakeUsers) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.gotUser, f.gotPass = username, password
	return f.loginOut, f.loginErr
}

type fakeGreetings struct {
	out []*models.Greeting
	err error
}

func (f *fakeGreetings) List(ctx context.Context) ([]*models.Greeting, error) {
	return f.out, f.err
}

func newTestServer(us UserService, gs GreetingService) *HTTPServer {
	return NewHTTPServer("127.0.0.1:0", time.Second, logging.Nop(), us, gs)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
