package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
)

// --- Sandbox: admin user moderation ---

func sandboxPageMeta() PageMeta {
	return PageMeta{Title: "Sandbox - BizCardHub", PageTitle: "User Management", CurrentPage: PageSandbox}
}

// AdminUsers renders the user moderation table.
// GET /sandbox.
func (h *UIHandlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	h.Page(w, r, PageSpec{
		Meta: sandboxPageMeta(),
		Fetch: func(ctx context.Context, data map[string]any) error {
			users, err := h.UserSvc.ListUsers(ctx, session)
			if err != nil {
				return err
			}
			data["Users"] = users
			return nil
		},
	})
}

// AdminUserToggleBusiness flips a user's business flag and re-renders the table.
// POST /sandbox/users/{id}/toggle-business.
func (h *UIHandlers) AdminUserToggleBusiness(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	session := GetSessionFromContext(r.Context())
	if _, err := h.UserSvc.ToggleBusiness(r.Context(), session, id); err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		triggerToast(w, processError(err, nil), "error")
	} else {
		triggerToast(w, "Account status updated.", "success")
	}

	h.renderUsersTable(w, r, session)
}

// AdminUserDelete removes a user account and re-renders the table.
// POST /sandbox/users/{id}/delete.
func (h *UIHandlers) AdminUserDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.NotFound(w, r)
		return
	}

	session := GetSessionFromContext(r.Context())
	if err := h.UserSvc.DeleteUser(r.Context(), session, id); err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		triggerToast(w, processError(err, nil), "error")
	} else {
		triggerToast(w, "User deleted.", "success")
	}

	h.renderUsersTable(w, r, session)
}

// renderUsersTable re-renders the moderation table after a mutation. For
// htmx requests only the table partial is swapped; plain requests get a
// full redirect back to the sandbox page.
func (h *UIHandlers) renderUsersTable(w http.ResponseWriter, r *http.Request, session domainauth.Session) {
	if !IsHTMX(r) {
		http.Redirect(w, r, "/sandbox", http.StatusSeeOther)
		return
	}

	users, err := h.UserSvc.ListUsers(r.Context(), session)
	if err != nil {
		if h.sessionExpired(w, r, err) {
			return
		}
		triggerToast(w, processError(err, nil), "error")
		users = nil
	}

	data := basePageData(r, sandboxPageMeta())
	data["Users"] = users
	if err := h.T.RenderNamed(w, "users-table", data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "users table render")
	}
}
