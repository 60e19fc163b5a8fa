package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/quizdeck-backend/internal/handlers"
	"github.com/yungbote/quizdeck-backend/internal/repos"
	"github.com/yungbote/quizdeck-backend/internal/repos/testutil"
	"github.com/yungbote/quizdeck-backend/internal/server"
	"github.com/yungbote/quizdeck-backend/internal/services"
)

type stubAIClient struct {
	reply string
	err   error
}

func (s *stubAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func newTestRouter(t *testing.T, ai *stubAIClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	log := testutil.Logger(t)

	userService := services.NewUserService(db, log, repos.NewUserRepo(db, log))
	documentService := services.NewDocumentService(db, log, repos.NewDocumentRepo(db, log))

	var aiService *services.AIService
	if ai != nil {
		aiService = services.NewAIService(log, ai)
	} else {
		aiService = services.NewAIService(log, nil)
	}

	return server.NewRouter(server.RouterConfig{
		ParseHandler:    handlers.NewParseHandler(log),
		UserHandler:     handlers.NewUserHandler(userService),
		DocumentHandler: handlers.NewDocumentHandler(documentService),
		AIHandler:       handlers.NewAIHandler(aiService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var e envelopeBody
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return e
}

func TestRootHello(t *testing.T) {
	router := newTestRouter(t, nil)
	w := doJSON(t, router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Hello, World!") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestCreateUserAndDuplicate(t *testing.T) {
	router := newTestRouter(t, nil)
	userID := "user-" + uuid.NewString()

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"user_id":      userID,
		"topic_scores": []gin.H{{"algebra": 7.5}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	e := decodeEnvelope(t, w)
	if !e.Success {
		t.Fatalf("expected success, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/users", gin.H{"user_id": userID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", w.Code)
	}
	e = decodeEnvelope(t, w)
	if e.Success || !strings.Contains(e.Error, "already exists") {
		t.Fatalf("unexpected duplicate envelope %s", w.Body.String())
	}
}

func TestCreateUserMissingID(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/users/ghost-"+uuid.NewString(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	e := decodeEnvelope(t, w)
	if e.Success || !strings.Contains(e.Error, "not found") {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}

func TestUserScoresWireShape(t *testing.T) {
	router := newTestRouter(t, nil)
	userID := "user-" + uuid.NewString()

	w := doJSON(t, router, http.MethodPost, "/users", gin.H{
		"user_id":      userID,
		"topic_scores": []gin.H{{"mathematics": 8}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/users/"+userID, nil)
	e := decodeEnvelope(t, w)
	if !strings.Contains(string(e.Data), `[{"mathematics":8}]`) {
		t.Fatalf("expected list-of-pairs wire shape, got %s", e.Data)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	router := newTestRouter(t, nil)
	userID := "user-" + uuid.NewString()

	w := doJSON(t, router, http.MethodPost, "/documents", gin.H{
		"user_id":          userID,
		"title":            "Calculus Notes",
		"document_content": "derivatives",
		"topic_scores":     []gin.H{{"calculus": 4}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	e := decodeEnvelope(t, w)
	if err := json.Unmarshal(e.Data, &created); err != nil {
		t.Fatalf("decode document: %v", err)
	}

	w = doJSON(t, router, http.MethodPut, "/documents/"+created.ID+"/scores", gin.H{
		"topic_scores": []gin.H{{"calculus": 9}, {"algebra": 2}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("merge: %d %s", w.Code, w.Body.String())
	}
	e = decodeEnvelope(t, w)
	if !strings.Contains(string(e.Data), `{"calculus":9}`) {
		t.Fatalf("expected merged calculus=9, got %s", e.Data)
	}

	w = doJSON(t, router, http.MethodPut, "/documents/"+created.ID+"/questions", gin.H{
		"questions": []string{"q1", "q2"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("questions: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/documents/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/documents/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDocumentInvalidIDIsNotFound(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodGet, "/documents/not-a-uuid", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", w.Code)
	}
}

func TestParseFileTxt(t *testing.T) {
	router := newTestRouter(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte("hello world")); err != nil {
		t.Fatalf("write: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/parse_file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	e := decodeEnvelope(t, w)
	if !e.Success || !strings.Contains(string(e.Data), "hello world") {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}

func TestParseFileUnsupportedStillHTTP200(t *testing.T) {
	router := newTestRouter(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "data.csv")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte("a,b,c")); err != nil {
		t.Fatalf("write: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/parse_file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("parse failures keep HTTP 200, got %d", w.Code)
	}
	e := decodeEnvelope(t, w)
	if e.Success || !strings.Contains(e.Error, "Unsupported file type") {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}

func TestParseFileMissingFile(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/parse_file", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if e := decodeEnvelope(t, w); e.Success {
		t.Fatalf("expected failure envelope, got %s", w.Body.String())
	}
}

func TestExtractTopicsEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubAIClient{reply: `{"topics": ["Algebra", "Geometry"]}`})

	w := doJSON(t, router, http.MethodPost, "/ai/extract-topics", gin.H{
		"text_content":   "algebra and geometry",
		"current_topics": []string{"Algebra"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	e := decodeEnvelope(t, w)
	if !strings.Contains(string(e.Data), "Geometry") {
		t.Fatalf("unexpected data %s", e.Data)
	}
}

func TestGenerateQuizEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubAIClient{
		reply: "```json\n{\"question\": \"2+2?\", \"options\": [\"3\", \"4\"], \"answer\": \"4\"}\n```",
	})

	w := doJSON(t, router, http.MethodPost, "/ai/generate-quiz", gin.H{
		"text_content": "arithmetic",
		"topic":        "Arithmetic",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	e := decodeEnvelope(t, w)
	if !strings.Contains(string(e.Data), `"topic":"Arithmetic"`) {
		t.Fatalf("expected topic echoed, got %s", e.Data)
	}
}

func TestGenerateDocumentNameEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubAIClient{reply: `"Linear Algebra Primer"`})

	w := doJSON(t, router, http.MethodPost, "/ai/generate-document-name", gin.H{
		"text_content": "vectors and matrices",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	e := decodeEnvelope(t, w)
	if !strings.Contains(string(e.Data), "Linear Algebra Primer") {
		t.Fatalf("unexpected data %s", e.Data)
	}
}

func TestAIEndpointsWithoutClient(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(t, router, http.MethodPost, "/ai/extract-topics", gin.H{"text_content": "text"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when no AI client configured, got %d", w.Code)
	}
}
