package http

import (
	"net/http"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/web"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

type PagesHandler struct {
	Pages *web.Renderer
}

// HandleIndex renders the login page.
func (h *PagesHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index", map[string]any{})
}

// HandleAuthorized renders a page from the authorized/ template directory for
// the logged-in user. Unknown pages are a 404.
func (h *PagesHandler) HandleAuthorized(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r.Context())
	if !ok {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}

	name, ok := web.Name(r.PathValue("page"))
	if !ok || !h.Pages.Has("authorized/"+name) {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}

	var picture string
	if u.ProfilePictureURL != nil {
		picture = *u.ProfilePictureURL
	}
	h.render(w, r, "authorized/"+name, map[string]any{
		"user": map[string]any{
			"id":                  u.ID,
			"username":            u.Username,
			"is_admin":            u.IsAdmin,
			"profile_picture_url": picture,
		},
	})
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Pages.Render(w, name, data); err != nil {
		slogx.FromContext(r.Context()).Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
