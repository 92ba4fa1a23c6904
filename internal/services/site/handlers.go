package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/oracledocs/oracledocs.dev/internal/content"
	"github.com/oracledocs/oracledocs.dev/internal/platform/icons"
	"github.com/oracledocs/oracledocs.dev/internal/services/site/i18n"
	sitestorage "github.com/oracledocs/oracledocs.dev/internal/services/site/storage"
	"github.com/oracledocs/oracledocs.dev/internal/services/site/static"
	"github.com/oracledocs/oracledocs.dev/internal/services/site/templates"
)

type handler struct {
	store sitestorage.Store
}

// NewHandler builds the site route table.
func NewHandler(config Config, store sitestorage.Store) (http.Handler, error) {
	h := &handler{store: store}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleLanding)
	mux.HandleFunc("/docs/", h.handleDocs)
	mux.HandleFunc("/content/", h.handleContent)
	mux.HandleFunc("/icons/relay.svg", h.handleRelayIcon)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))
	mux.HandleFunc("/up", handleUp)

	return withRequestSpans(mux), nil
}

func (h *handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writePage(w, r, http.StatusOK, "Guides", "Integration guides for the Pyth price-oracle network.", templates.LandingPage(content.Pages()))
}

// handleDocs serves /docs/{slug} pages and their /feedback subresource.
func (h *handler) handleDocs(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/docs/")
	slug, sub, _ := strings.Cut(rest, "/")

	page, ok := content.BySlug(slug)
	if !ok {
		h.renderNotFound(w, r)
		return
	}

	switch sub {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.renderDocPage(w, r, page)
	case "feedback":
		h.handleFeedback(w, r, page)
	default:
		h.renderNotFound(w, r)
	}
}

func (h *handler) renderDocPage(w http.ResponseWriter, r *http.Request, page content.Page) {
	source, err := content.Source(page.Slug)
	if err != nil {
		log.Printf("load page source %s: %v", page.Slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writePage(w, r, http.StatusOK, page.Title, page.Summary, templates.DocPage(page, string(source)))
}

func (h *handler) handleFeedback(w http.ResponseWriter, r *http.Request, page content.Page) {
	switch r.Method {
	case http.MethodPost:
		h.saveFeedback(w, r, page)
	case http.MethodGet:
		h.feedbackTotals(w, r, page)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *handler) saveFeedback(w http.ResponseWriter, r *http.Request, page content.Page) {
	if h.store == nil {
		http.Error(w, "feedback storage is not configured", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var helpful bool
	switch r.PostForm.Get("helpful") {
	case "yes":
		helpful = true
	case "no":
		helpful = false
	default:
		http.Error(w, "helpful must be yes or no", http.StatusBadRequest)
		return
	}
	entry := sitestorage.FeedbackEntry{Slug: page.Slug, Helpful: helpful}
	if err := h.store.SaveFeedback(r.Context(), entry); err != nil {
		log.Printf("save feedback for %s: %v", page.Slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/docs/"+page.Slug, http.StatusSeeOther)
}

func (h *handler) feedbackTotals(w http.ResponseWriter, r *http.Request, page content.Page) {
	if h.store == nil {
		http.Error(w, "feedback storage is not configured", http.StatusServiceUnavailable)
		return
	}
	totals, err := h.store.FeedbackTotals(r.Context(), page.Slug)
	if err != nil {
		log.Printf("load feedback totals for %s: %v", page.Slug, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"slug":      totals.Slug,
		"helpful":   totals.Helpful,
		"unhelpful": totals.Unhelpful,
	}); err != nil {
		log.Printf("encode feedback totals for %s: %v", page.Slug, err)
	}
}

// handleContent serves the raw MDX source for a cataloged page.
func (h *handler) handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/content/")
	slug, ok := strings.CutSuffix(name, ".mdx")
	if !ok {
		h.renderNotFound(w, r)
		return
	}
	source, err := content.Source(slug)
	if err != nil {
		h.renderNotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write(source); err != nil {
		log.Printf("write page source %s: %v", slug, err)
	}
}

func (h *handler) handleRelayIcon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := strings.NewReader(icons.RelaySVG()).WriteTo(w); err != nil {
		log.Printf("write relay icon: %v", err)
	}
}

func handleUp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}

func (h *handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	writePage(w, r, http.StatusNotFound, "Page not found", "", templates.NotFoundPage())
}

// writePage renders a component inside the shared layout, buffering the output
// so a render failure never leaks a partial page.
func writePage(w http.ResponseWriter, r *http.Request, status int, title, description string, body templ.Component) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}

	ctx := templ.WithChildren(r.Context(), body)
	var buf bytes.Buffer
	if err := templates.Layout(title, description, tag.String()).Render(ctx, &buf); err != nil {
		log.Printf("render page %s: %v", r.URL.Path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write page %s: %v", r.URL.Path, err)
	}
}
