package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cloudshift360/site-backend/internal/auth"
	"github.com/cloudshift360/site-backend/internal/handlers"
	"github.com/cloudshift360/site-backend/internal/models"
	"github.com/cloudshift360/site-backend/internal/routes"
	"github.com/cloudshift360/site-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "handlers-test-secret"

// fakeDirectory is an in-memory services.UserDirectory with the same
// owner-promotion behavior as the real one.
type fakeDirectory struct {
	mu          sync.Mutex
	owner       string
	users       map[string]*models.User
	unavailable bool
	nextID      uint
}

func newFakeDirectory(owner string) *fakeDirectory {
	return &fakeDirectory{owner: owner, users: map[string]*models.User{}}
}

func (d *fakeDirectory) UpsertByOpenID(in services.UpsertUser) (*models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unavailable {
		return nil, nil
	}

	user, ok := d.users[in.OpenID]
	if !ok {
		d.nextID++
		user = &models.User{ID: d.nextID, OpenID: in.OpenID, Role: models.RoleUser}
		d.users[in.OpenID] = user
	}
	if in.Name != nil {
		user.Name = in.Name
	}
	if in.Email != nil {
		user.Email = in.Email
	}
	if in.LoginMethod != nil {
		user.LoginMethod = in.LoginMethod
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if d.owner != "" && in.OpenID == d.owner {
		user.Role = models.RoleAdmin
	}
	user.LastSignedIn = in.LastSignedIn

	copied := *user
	return &copied, nil
}

func (d *fakeDirectory) FindByOpenID(openID string) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.unavailable {
		return nil
	}
	user, ok := d.users[openID]
	if !ok {
		return nil
	}
	copied := *user
	return &copied
}

// fakeStore is an in-memory services.InquiryStore.
type fakeStore struct {
	mu          sync.Mutex
	rows        []models.Inquiry
	unavailable bool
	nextID      uint
}

func (s *fakeStore) Create(in services.CreateInquiry) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return nil, nil
	}
	s.nextID++
	row := models.Inquiry{
		ID:          s.nextID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Company:     in.Company,
		ServiceType: in.ServiceType,
		Message:     in.Message,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Status:      models.StatusNew,
		CreatedAt:   time.Now(),
	}
	s.rows = append(s.rows, row)
	copied := row
	return &copied, nil
}

func (s *fakeStore) ListAll() []models.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Inquiry, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *fakeStore) UpdateStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return nil, nil
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = status
			copied := s.rows[i]
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeNotifier records dispatches on a channel so tests can wait for the
// fire-and-forget goroutine.
type fakeNotifier struct {
	calls chan services.InquiryNotification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan services.InquiryNotification, 8)}
}

func (n *fakeNotifier) NotifyOwner(in services.InquiryNotification) bool {
	n.calls <- in
	return true
}

type testEnv struct {
	app       *fiber.App
	codec     *auth.Codec
	directory *fakeDirectory
	store     *fakeStore
	notifier  *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		codec:     auth.NewCodec(testSecret),
		directory: newFakeDirectory("owner@cloudshift360.com"),
		store:     &fakeStore{},
		notifier:  newFakeNotifier(),
	}

	env.app = fiber.New()
	routes.Setup(
		env.app,
		env.codec,
		handlers.NewAuthHandler(env.directory, env.codec, time.Hour),
		handlers.NewInquiryHandler(env.store, env.notifier),
		handlers.NewHealthHandler(nil),
	)
	return env
}

func sessionFor(openID, role string) auth.SessionClaims {
	return auth.SessionClaims{
		UserID: openID,
		Email:  openID,
		Name:   "Test User",
		Role:   role,
	}
}

func cookieFor(token string) string {
	return auth.CookieName + "=" + token
}

func (e *testEnv) sessionCookie(t *testing.T, openID, role string) string {
	t.Helper()

	token, err := e.codec.Issue(sessionFor(openID, role), time.Hour)
	require.NoError(t, err)
	return cookieFor(token)
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
