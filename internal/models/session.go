package models

type Page string

const (
	PageLogin          Page = "login"
	PageHome           Page = "home"
	PageEdit           Page = "edit"
	PageVisualizations Page = "visualizations"
	PageUsers          Page = "users"
	PageAbout          Page = "about"
)

// SessionContext: состояние текущей сессии, собирается middleware на каждый запрос.
type SessionContext struct {
	Username    string
	CurrentPage Page
	Privileged  bool
}

func (s *SessionContext) LoggedIn() bool {
	return s != nil && s.Username != ""
}
