package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/iksnae/comment-filter/internal"
)

func newTestRouter(t *testing.T) (*mux.Router, *internal.Page, *internal.RecordingProvider) {
	t.Helper()
	page, provider := internal.CreateTestPage()
	handler, err := NewHandler(page)
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, page, provider
}

func post(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestHandler_Page(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Comment User Filter Demo",
		"Login to Comments",
		"Select a user...",
		"Ready. Please login to start.",
		"Fiona Gallagher",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if got := strings.Count(body, `class="card show"`); got != 5 {
		t.Errorf("included cards = %d, want 5", got)
	}
}

func TestHandler_LoginAndFilter(t *testing.T) {
	r, page, provider := newTestRouter(t)

	w := post(r, "/login", url.Values{"user_id": {"user-7"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", w.Code)
	}
	if user, ok := page.Session().Active(); !ok || user.UserID != "user-7" {
		t.Fatalf("active = %+v, want user-7", user)
	}
	if page.Session().ModalVisible() {
		t.Error("modal should close after login")
	}

	post(r, "/filter/apply", nil)
	if !page.Filter().Applied() {
		t.Error("filter should be applied")
	}
	post(r, "/filter/clear", nil)
	if page.Filter().Applied() {
		t.Error("filter should be cleared")
	}

	want := []string{"openCommentSidebar", "setCommentSidebarFilters", "enableFilterCommentsOnDom", "setCommentSidebarFilters", "disableFilterCommentsOnDom"}
	got := provider.Recording.ElementCalls()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("element calls = %v, want %v", got, want)
	}
}

func TestHandler_LoginWithoutSelection(t *testing.T) {
	r, page, _ := newTestRouter(t)

	w := post(r, "/login", url.Values{"user_id": {""}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if page.Session().LoggedIn() {
		t.Error("should stay logged out")
	}
	entries := page.Log().Entries()
	if last := entries[len(entries)-1]; last.Severity != internal.SeverityWarn {
		t.Errorf("last entry = %+v, want warn", last)
	}
}

func TestHandler_LoginUnknownUser(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := post(r, "/login", url.Values{"user_id": {"user-99"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandler_FilterBeforeLogin(t *testing.T) {
	r, page, provider := newTestRouter(t)

	post(r, "/filter/apply", nil)
	if page.Filter().Applied() {
		t.Error("filter must not apply while logged out")
	}
	if len(provider.Recording.Calls) != 0 {
		t.Errorf("client calls = %v, want none", provider.Recording.Calls)
	}
}

func TestHandler_Modal(t *testing.T) {
	r, page, _ := newTestRouter(t)

	post(r, "/modal", url.Values{"action": {"close"}})
	if !page.Session().ModalVisible() {
		t.Error("modal must stay open while logged out")
	}

	post(r, "/login", url.Values{"user_id": {"user-1"}})
	post(r, "/modal", url.Values{"action": {"open"}})
	if !page.Session().ModalVisible() {
		t.Error("open should show the modal")
	}
	post(r, "/modal", url.Values{"action": {"close"}})
	if page.Session().ModalVisible() {
		t.Error("close should hide the modal once logged in")
	}

	if w := post(r, "/modal", url.Values{"action": {"toggle"}}); w.Code != http.StatusBadRequest {
		t.Errorf("bad action status = %d, want 400", w.Code)
	}
}

func TestHandler_Logout(t *testing.T) {
	r, page, _ := newTestRouter(t)

	post(r, "/login", url.Values{"user_id": {"user-1"}})
	post(r, "/filter/apply", nil)
	post(r, "/logout", nil)

	if page.Session().LoggedIn() || page.Filter().Applied() {
		t.Error("logout should end the session and clear the filter")
	}
	if !page.Session().ModalVisible() {
		t.Error("logout should reopen the modal")
	}
}

func TestHandler_Log(t *testing.T) {
	r, _, _ := newTestRouter(t)
	post(r, "/login", url.Values{"user_id": {"user-3"}})

	w := get(r, "/log")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var entries []internal.LogEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[1].Message != "Logged in as Charlie Brown (user-3)" || entries[1].Severity != internal.SeveritySuccess {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestHandler_Health(t *testing.T) {
	r, _, provider := newTestRouter(t)

	if w := get(r, "/healthz"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	provider.Ready = false
	if w := get(r, "/healthz"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := get(r, "/filter/apply"); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
