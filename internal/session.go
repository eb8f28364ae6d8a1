package internal

import (
	"fmt"

	"github.com/iksnae/comment-filter/internal/metrics"
)

// SessionController tracks who is impersonated and whether the login modal
// is showing. The modal starts open with nobody logged in.
type SessionController struct {
	active       *Identity
	candidate    string
	modalVisible bool
	org          Organization
	log          *ActivityLog
}

// NewSessionController creates a logged-out session for org
func NewSessionController(org Organization, log *ActivityLog) *SessionController {
	return &SessionController{
		modalVisible: true,
		org:          org,
		log:          log,
	}
}

// SelectCandidate records the identity picked in the login form. An empty id
// clears the selection.
func (s *SessionController) SelectCandidate(userID string) error {
	if userID == "" {
		s.candidate = ""
		return nil
	}
	if _, ok := FindUser(userID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, userID)
	}
	s.candidate = userID
	return nil
}

// Candidate returns the pending login selection
func (s *SessionController) Candidate() string {
	return s.candidate
}

// Login makes the candidate the active identity and closes the modal
func (s *SessionController) Login() (Identity, error) {
	user, ok := FindUser(s.candidate)
	if !ok {
		metrics.Logins.WithLabelValues("rejected").Inc()
		s.log.Append("Select a user before logging in", SeverityWarn)
		return Identity{}, ErrNoCandidateSelected
	}

	s.active = &user
	s.modalVisible = false
	metrics.Logins.WithLabelValues("ok").Inc()
	s.log.Append(fmt.Sprintf("Logged in as %s (%s)", user.Name, user.UserID), SeveritySuccess)
	return user, nil
}

// Logout drops the active identity and reopens the modal
func (s *SessionController) Logout() {
	if s.active == nil {
		return
	}
	name := s.active.Name
	s.active = nil
	s.modalVisible = true
	s.log.Append(fmt.Sprintf("Logged out %s", name), SeverityInfo)
}

// OpenLoginModal shows the modal, also while logged in
func (s *SessionController) OpenLoginModal() {
	s.modalVisible = true
}

// CloseLoginModal hides the modal without changing the session
func (s *SessionController) CloseLoginModal() {
	s.modalVisible = false
}

// ModalVisible reports whether the login modal is showing
func (s *SessionController) ModalVisible() bool {
	return s.modalVisible
}

// LoggedIn reports whether an identity is active
func (s *SessionController) LoggedIn() bool {
	return s.active != nil
}

// Active returns the active identity, if any
func (s *SessionController) Active() (Identity, bool) {
	if s.active == nil {
		return Identity{}, false
	}
	return *s.active, true
}

// AuthProvider builds the provider auth configuration, nil when logged out
func (s *SessionController) AuthProvider() *AuthProvider {
	if s.active == nil {
		return nil
	}
	return &AuthProvider{
		User: AuthUser{
			UserID:         s.active.UserID,
			OrganizationID: s.org.ID,
			Name:           s.active.Name,
			Email:          s.active.Email,
			PhotoURL:       s.active.AvatarURL,
		},
	}
}
