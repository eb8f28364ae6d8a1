package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewPage(t *testing.T) {
	page, provider := CreateTestPage()

	v := page.View()
	if !v.ModalVisible || v.LoggedIn || v.FilterApplied {
		t.Errorf("initial view = %+v", v)
	}
	if len(v.Log) != 1 || v.Log[0].Message != "Ready. Please login to start." {
		t.Errorf("initial log = %+v", v.Log)
	}
	if len(provider.Auths) != 1 || provider.Auths[0] != nil {
		t.Errorf("provider should start unauthenticated, got %+v", provider.Auths)
	}
	if len(v.Users) != 10 {
		t.Fatalf("view has %d user cards, want 10", len(v.Users))
	}
	if v.Users[0].Badge() != "SHOW" || v.Users[9].Badge() != "HIDE" {
		t.Errorf("badges = %s/%s, want SHOW/HIDE", v.Users[0].Badge(), v.Users[9].Badge())
	}
}

func TestPage_LoginAssociatesDocumentAfterAuth(t *testing.T) {
	page, provider := CreateTestPage()

	if err := page.SelectCandidate("user-2"); err != nil {
		t.Fatal(err)
	}
	if err := page.Login(); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	want := []string{"auth:none", "auth:user-2", "setDocument:doc-filter-test"}
	if !reflect.DeepEqual(provider.Trace, want) {
		t.Errorf("trace = %v, want %v", provider.Trace, want)
	}
	if page.DocumentSetup().Runs() != 1 {
		t.Errorf("document associated %d times, want 1", page.DocumentSetup().Runs())
	}
	if got := provider.Recording.Documents; len(got) != 1 || got[0] != "doc-filter-test|Filter Test Doc" {
		t.Errorf("documents = %v", got)
	}
}

func TestPage_LoginWithoutCandidateSkipsDocument(t *testing.T) {
	page, provider := CreateTestPage()

	if err := page.Login(); !errors.Is(err, ErrNoCandidateSelected) {
		t.Fatalf("Login() error = %v, want ErrNoCandidateSelected", err)
	}
	if page.DocumentSetup().Runs() != 0 || len(provider.Recording.Documents) != 0 {
		t.Error("document associated without a session")
	}
}

func TestPage_SwitchIdentityReassociates(t *testing.T) {
	page, _ := CreateTestPage()

	_ = page.SelectCandidate("user-1")
	_ = page.Login()
	page.OpenLoginModal()
	_ = page.SelectCandidate("user-7")
	_ = page.Login()

	if page.DocumentSetup().Runs() != 2 {
		t.Errorf("document associated %d times, want once per login", page.DocumentSetup().Runs())
	}
	if v := page.View(); v.User.UserID != "user-7" || v.ModalVisible {
		t.Errorf("view after switch = user %s modal %v", v.User.UserID, v.ModalVisible)
	}
}

func TestPage_DocumentFailureIsLogged(t *testing.T) {
	page, provider := CreateTestPage()
	provider.Recording.DocErr = errors.New("boom")

	_ = page.SelectCandidate("user-1")
	if err := page.Login(); err != nil {
		t.Fatalf("Login() error = %v, document failures must not fail login", err)
	}
	last := page.Log().Entries()[page.Log().Len()-1]
	if last.Severity != SeverityError {
		t.Errorf("last entry = %+v, want error", last)
	}
}

func TestPage_ApplyClearRoundTrip(t *testing.T) {
	page, provider := CreateTestPage()

	if err := page.ApplyFilter(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("ApplyFilter() before login error = %v", err)
	}

	_ = page.SelectCandidate("user-4")
	_ = page.Login()
	if err := page.ApplyFilter(); err != nil {
		t.Fatalf("ApplyFilter() error = %v", err)
	}
	if !page.View().FilterApplied {
		t.Error("view should report the filter applied")
	}
	if err := page.ClearFilter(); err != nil {
		t.Fatalf("ClearFilter() error = %v", err)
	}
	if page.View().FilterApplied {
		t.Error("view should report the filter cleared")
	}

	want := []string{
		"openCommentSidebar", "setCommentSidebarFilters", "enableFilterCommentsOnDom",
		"setCommentSidebarFilters", "disableFilterCommentsOnDom",
	}
	if got := provider.Recording.ElementCalls(); !reflect.DeepEqual(got, want) {
		t.Errorf("element calls = %v, want %v", got, want)
	}
}

func TestPage_LogoutClearsFilter(t *testing.T) {
	page, provider := CreateTestPage()
	_ = page.SelectCandidate("user-1")
	_ = page.Login()
	_ = page.ApplyFilter()

	page.Logout()

	if page.Filter().Applied() {
		t.Error("filter still applied after logout")
	}
	if page.Session().LoggedIn() {
		t.Error("still logged in after logout")
	}
	if last := provider.Auths[len(provider.Auths)-1]; last != nil {
		t.Errorf("provider auth after logout = %+v, want nil", last)
	}
	calls := provider.Recording.ElementCalls()
	if calls[len(calls)-1] != "disableFilterCommentsOnDom" {
		t.Errorf("logout should disable DOM sync, calls = %v", calls)
	}
}

func TestPage_AddCommentRequiresSession(t *testing.T) {
	page, _ := CreateTestPage()
	if err := page.AddComment("hello"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("AddComment() error = %v, want ErrNotAuthenticated", err)
	}
}

func TestPage_AddCommentUnsupportedClient(t *testing.T) {
	page, _ := CreateTestPage()
	_ = page.SelectCandidate("user-1")
	_ = page.Login()

	if err := page.AddComment("hello"); err == nil {
		t.Error("AddComment() on a client without posting support should fail")
	}
}
