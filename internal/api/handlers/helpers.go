package handlers

import (
	"log/slog"
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/session"
	"storefront/internal/view"
)

// currentState loads the session state for the request. A session store
// fault is terminal for the request, like any other storage fault.
func currentState(w http.ResponseWriter, r *http.Request, store session.Store) (string, *session.State, bool) {

	sid := middleware.SessionIDFromContext(r.Context())

	state, err := store.Get(r.Context(), sid)
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to load session",
			slog.String("error", err.Error()))
		http.Error(w, "Session error", http.StatusInternalServerError)

		return "", nil, false
	}

	return sid, state, true
}

func saveState(w http.ResponseWriter, r *http.Request, store session.Store, sid string, state *session.State) bool {

	if err := store.Save(r.Context(), sid, state); err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to save session",
			slog.String("error", err.Error()))
		http.Error(w, "Session error", http.StatusInternalServerError)

		return false
	}

	return true
}

func renderView(w http.ResponseWriter, r *http.Request, renderer view.Renderer, name string, data any) {

	if err := renderer.Render(w, name, data); err != nil {
		middleware.LoggerFromContext(r.Context()).Error("Failed to render view",
			slog.String("view", name),
			slog.String("error", err.Error()))
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}
