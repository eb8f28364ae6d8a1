package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iksnae/comment-filter/internal"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name        string
		withMetrics bool
		wantStatus  int
	}{
		{"with metrics", true, http.StatusOK},
		{"without metrics", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _ := internal.CreateTestPage()
			r, err := newRouter(page, tt.withMetrics)
			if err != nil {
				t.Fatalf("newRouter failed: %v", err)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
			if w.Code != tt.wantStatus {
				t.Fatalf("/metrics status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.withMetrics && !strings.Contains(w.Body.String(), "comment_filter_log_entries_total") {
				t.Errorf("metrics output missing log entry counter:\n%s", w.Body.String())
			}

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
			if w.Code != http.StatusOK {
				t.Errorf("/healthz status = %d", w.Code)
			}
		})
	}
}
