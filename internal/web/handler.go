package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/iksnae/comment-filter/internal"
)

//go:embed templates/*
var templatesFS embed.FS

// Handler serves the demo page over HTTP
type Handler struct {
	mu        sync.Mutex
	page      *internal.Page
	templates *template.Template
}

// NewHandler creates a new web handler around page
func NewHandler(page *internal.Page) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"severityColor": severityColor,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{
		page:      page,
		templates: tmpl,
	}, nil
}

// RegisterRoutes registers the page routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handlePage).Methods("GET")
	r.HandleFunc("/login", h.handleLogin).Methods("POST")
	r.HandleFunc("/logout", h.handleLogout).Methods("POST")
	r.HandleFunc("/modal", h.handleModal).Methods("POST")
	r.HandleFunc("/filter/apply", h.handleApply).Methods("POST")
	r.HandleFunc("/filter/clear", h.handleClear).Methods("POST")
	r.HandleFunc("/sidebar", h.handleSidebar).Methods("POST")
	r.HandleFunc("/comments", h.handleAddComment).Methods("POST")
	r.HandleFunc("/log", h.handleLog).Methods("GET")
	r.HandleFunc("/healthz", h.handleHealth).Methods("GET")
}

type pageData struct {
	internal.PageView
	Options []internal.Identity
}

// handlePage renders the page
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	data := pageData{PageView: h.page.View(), Options: internal.AllUsers()}
	h.mu.Unlock()

	if err := h.templates.ExecuteTemplate(w, "page.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.page.SelectCandidate(r.FormValue("user_id")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// an empty selection is reported in the activity log
	_ = h.page.Login()
	redirectHome(w, r)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.page.Logout()
	h.mu.Unlock()
	redirectHome(w, r)
}

func (h *Handler) handleModal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	switch r.FormValue("action") {
	case "open":
		h.page.OpenLoginModal()
	case "close":
		// the modal stays up until someone is logged in
		if h.page.Session().LoggedIn() {
			h.page.CloseLoginModal()
		}
	default:
		http.Error(w, "action must be open or close", http.StatusBadRequest)
		return
	}
	redirectHome(w, r)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	_ = h.page.ApplyFilter()
	h.mu.Unlock()
	redirectHome(w, r)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	_ = h.page.ClearFilter()
	h.mu.Unlock()
	redirectHome(w, r)
}

func (h *Handler) handleSidebar(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.page.ToggleSidebar()
	h.mu.Unlock()
	redirectHome(w, r)
}

func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	_ = h.page.AddComment(r.FormValue("body"))
	h.mu.Unlock()
	redirectHome(w, r)
}

// handleLog returns the activity log as JSON
func (h *Handler) handleLog(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	entries := h.page.Log().Entries()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		internal.LogError("failed to encode log: %v", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	ready := h.page.View().ClientReady
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	status := http.StatusOK
	body := map[string]string{"status": "ok"}
	if !ready {
		status = http.StatusServiceUnavailable
		body["status"] = "client unavailable"
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func severityColor(s internal.Severity) string {
	switch s {
	case internal.SeveritySuccess:
		return "#198754"
	case internal.SeverityWarn:
		return "#b58105"
	case internal.SeverityError:
		return "#dc3545"
	default:
		return "#495057"
	}
}
