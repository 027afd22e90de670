package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/pkg/serverutils"
	"notekeep-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNote struct {
	id      int64
	content string
	userId  uuid.UUID
}

type fakeNoteService struct {
	notes  []fakeNote
	nextId int64
}

func (s *fakeNoteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	res := []*dto.NoteResponse{}
	for _, n := range s.notes {
		if n.userId == userId {
			res = append(res, &dto.NoteResponse{Id: n.id, Content: n.content})
		}
	}
	return res, nil
}

func (s *fakeNoteService) Show(ctx context.Context, userId uuid.UUID, id int64) (*dto.NoteResponse, error) {
	for _, n := range s.notes {
		if n.id == id && n.userId == userId {
			return &dto.NoteResponse{Id: n.id, Content: n.content}, nil
		}
	}
	return nil, apperror.NotFound("note not found")
}

func (s *fakeNoteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.Validation("content is required")
	}
	s.nextId++
	s.notes = append(s.notes, fakeNote{id: s.nextId, content: req.Content, userId: userId})
	return &dto.NoteResponse{Id: s.nextId, Content: req.Content}, nil
}

func (s *fakeNoteService) Update(ctx context.Context, userId uuid.UUID, id int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.Validation("content is required")
	}
	for i := range s.notes {
		if s.notes[i].id == id && s.notes[i].userId == userId {
			s.notes[i].content = req.Content
			return &dto.NoteResponse{Id: id, Content: req.Content}, nil
		}
	}
	return nil, apperror.NotFound("note not found")
}

func (s *fakeNoteService) Delete(ctx context.Context, userId uuid.UUID, id int64) error {
	for i := range s.notes {
		if s.notes[i].id == id && s.notes[i].userId == userId {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("note not found")
}

func newNotesTestApp() (*fiber.App, *token.Manager) {
	tokens := token.NewManager("test-secret", "notekeep", "notekeep-clients", time.Hour)
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	NewNoteController(&fakeNoteService{}).RegisterRoutes(app, serverutils.AuthRequired(tokens))
	return app, tokens
}

func bearerFor(t *testing.T, tokens *token.Manager, userId uuid.UUID) string {
	t.Helper()
	signed, err := tokens.Issue(userId, "user@example.com")
	require.NoError(t, err)
	return "Bearer " + signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestNotesRequireAuth(t *testing.T) {
	app, _ := newNotesTestApp()

	cases := []struct{ method, path string }{
		{http.MethodGet, "/notes"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/1"},
		{http.MethodPut, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
	}
	for _, tc := range cases {
		res := doJSON(t, app, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestNotesCrudOverHTTP(t *testing.T) {
	app, tokens := newNotesTestApp()
	bearer := bearerFor(t, tokens, uuid.New())

	// Create
	res := doJSON(t, app, http.MethodPost, "/notes", bearer, dto.CreateNoteRequest{Content: "Hello"})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var created dto.NoteResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.Equal(t, "Hello", created.Content)

	// List
	res = doJSON(t, app, http.MethodGet, "/notes", bearer, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []dto.NoteResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.Id, list[0].Id)

	// Update
	res = doJSON(t, app, http.MethodPut, "/notes/1", bearer, dto.UpdateNoteRequest{Content: "Updated"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var updated dto.NoteResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&updated))
	assert.Equal(t, "Updated", updated.Content)

	// Delete, then the id is gone
	res = doJSON(t, app, http.MethodDelete, "/notes/1", bearer, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res = doJSON(t, app, http.MethodGet, "/notes/1", bearer, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotesEmptyContent(t *testing.T) {
	app, tokens := newNotesTestApp()
	bearer := bearerFor(t, tokens, uuid.New())

	res := doJSON(t, app, http.MethodPost, "/notes", bearer, dto.CreateNoteRequest{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = doJSON(t, app, http.MethodPut, "/notes/999", bearer, dto.UpdateNoteRequest{Content: ""})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "validation precedes existence")
}

func TestNotesForeignAndMissingLookAlike(t *testing.T) {
	app, tokens := newNotesTestApp()
	alice := bearerFor(t, tokens, uuid.New())
	bob := bearerFor(t, tokens, uuid.New())

	res := doJSON(t, app, http.MethodPost, "/notes", alice, dto.CreateNoteRequest{Content: "secret"})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// Bob against Alice's note and against a nonexistent id: both 404.
	for _, path := range []string{"/notes/1", "/notes/999"} {
		res = doJSON(t, app, http.MethodGet, path, bob, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, path)
	}

	res = doJSON(t, app, http.MethodGet, "/notes", bob, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []dto.NoteResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestNotesNonIntegerId(t *testing.T) {
	app, tokens := newNotesTestApp()
	bearer := bearerFor(t, tokens, uuid.New())

	res := doJSON(t, app, http.MethodGet, "/notes/abc", bearer, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
