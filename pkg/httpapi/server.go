package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"farmstand/pkg/cart"
	"farmstand/pkg/catalog"
	"farmstand/pkg/contact"
	"farmstand/pkg/notify"
)

// uiFS packs the storefront page so deployments ship one binary.
//
//go:embed public_html/app.gohtml
var uiFS embed.FS

// Toast texts for cart actions.
const (
	addedMessage   = "Item added to cart!"
	removedMessage = "Item removed from cart!"
)

// Server wires HTTP endpoints to the catalog, the cart goroutine, and the toast emitter.
type Server struct {
	library *catalog.Library
	cart    *cart.Service
	notices *notify.Emitter
	contact *contact.Form
	page    *template.Template
	logger  *zap.Logger
}

// New parses the page template once.
func New(library *catalog.Library, cartService *cart.Service, notices *notify.Emitter, form *contact.Form, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(uiFS, "public_html/app.gohtml")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		library: library,
		cart:    cartService,
		notices: notices,
		contact: form,
		page:    tmpl,
		logger:  logger,
	}, nil
}

// Handler exposes the page, its form posts, and the JSON API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.renderPage)
	r.Post("/cart/add", s.formAdd)
	r.Post("/cart/remove", s.formRemove)
	r.Post("/cart/decrement", s.formDecrement)
	r.Post("/contact", s.formContact)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Get("/recipes", s.listRecipes)
		r.Get("/recipes/{name}", s.recipeDetail)

		r.Get("/cart", s.getCart)
		r.Post("/cart", s.addToCart)
		r.Delete("/cart", s.clearCart)
		r.Get("/cart/export", s.exportCart)
		r.Delete("/cart/{name}", s.removeFromCart)
		r.Post("/cart/{name}/decrement", s.decrementCart)

		r.Get("/notifications", s.listNotifications)
		r.Delete("/notifications/{id}", s.dismissNotification)

		r.Post("/contact", s.submitContact)
	})
	return r
}

// filterFromQuery reads the FilterState the category buttons, search box, and difficulty select produce.
func filterFromQuery(q url.Values) catalog.FilterState {
	st := catalog.FilterState{
		Category:   q.Get("category"),
		Query:      q.Get("q"),
		Difficulty: q.Get("difficulty"),
	}
	if st.Category == "" {
		st.Category = catalog.All
	}
	if st.Difficulty == "" {
		st.Difficulty = catalog.All
	}
	return st
}

// query filters then orders one collection.
func query(entries []catalog.Entry, st catalog.FilterState, key catalog.SortKey) []catalog.Entry {
	return catalog.Sort(catalog.Filter(entries, st), key)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.listEntries(w, r, s.library.Catalog().Products)
}

func (s *Server) listRecipes(w http.ResponseWriter, r *http.Request) {
	s.listEntries(w, r, s.library.Catalog().Recipes)
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request, entries []catalog.Entry) {
	key, err := catalog.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		s.respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.respondJSON(w, http.StatusOK, query(entries, filterFromQuery(r.URL.Query()), key))
}

func (s *Server) recipeDetail(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.library.Recipe(pathParam(r, "name"))
	if err != nil {
		s.respondError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.respondJSON(w, http.StatusOK, catalog.ExpandRecipe(recipe))
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, err := s.cart.Snapshot(ctx)
	if err != nil {
		s.logger.Error("cart snapshot failed", zap.Error(err))
		s.respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.respondJSON(w, http.StatusOK, snap)
}

// addToCart accepts {"name": "..."} and resolves the card from the catalog.
func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	snap, err := s.add(r.Context(), payload.Name)
	if err != nil {
		s.respondCartError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, snap)
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	snap, err := s.remove(r.Context(), pathParam(r, "name"))
	if err != nil {
		s.respondCartError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, snap)
}

func (s *Server) decrementCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, _, err := s.cart.Decrement(ctx, pathParam(r, "name"))
	if err != nil {
		s.respondCartError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, snap)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, err := s.cart.Clear(ctx)
	if err != nil {
		s.respondCartError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, snap)
}

func (s *Server) exportCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	snap, err := s.cart.Snapshot(ctx)
	if err != nil {
		s.respondCartError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="cart.xlsx"`)
	if err := cart.WriteXLSX(w, snap); err != nil {
		s.logger.Error("cart export failed", zap.Error(err))
	}
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.notices.Active())
}

func (s *Server) dismissNotification(w http.ResponseWriter, r *http.Request) {
	if !s.notices.Dismiss(chi.URLParam(r, "id")) {
		s.respondError(w, "notification not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	var msg contact.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.respondError(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := s.sendContact(r.Context(), msg); err != nil {
		if contact.IsValidation(err) {
			s.respondError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.respondJSON(w, http.StatusAccepted, map[string]string{"message": contact.ThanksMessage})
}

// add resolves name against products, then recipes, and puts one unit in the cart.
func (s *Server) add(ctx context.Context, name string) (cart.Snapshot, error) {
	entry, err := s.library.Lookup(strings.TrimSpace(name))
	if err != nil {
		return cart.Snapshot{}, err
	}
	cand := cart.Candidate{Name: entry.Name, PriceLabel: entry.PriceLabel, Seller: entry.Seller}
	if entry.Kind == catalog.Recipe {
		cand = cart.RecipeCandidate(entry.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	snap, err := s.cart.Add(ctx, cand)
	if err != nil {
		return cart.Snapshot{}, err
	}
	s.logger.Info("cart item added", zap.String("name", cand.Name), zap.String("total", snap.TotalLabel))
	s.notices.Notify(addedMessage, notify.Success)
	return snap, nil
}

// remove drops the line item; the toast only appears when something was removed.
func (s *Server) remove(ctx context.Context, name string) (cart.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	snap, removed, err := s.cart.Remove(ctx, name)
	if err != nil {
		return cart.Snapshot{}, err
	}
	if removed {
		s.logger.Info("cart item removed", zap.String("name", name), zap.String("total", snap.TotalLabel))
		s.notices.Notify(removedMessage, notify.Info)
	}
	return snap, nil
}

// sendContact submits the form and reports the outcome as a toast.
func (s *Server) sendContact(ctx context.Context, msg contact.Message) error {
	if err := s.contact.Submit(ctx, msg); err != nil {
		if contact.IsValidation(err) {
			s.notices.Notify(err.Error(), notify.Error)
		}
		return err
	}
	s.notices.Notify(contact.ThanksMessage, notify.Success)
	return nil
}

func (s *Server) respondCartError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		s.respondError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Error("cart request failed", zap.Error(err))
	s.respondError(w, err.Error(), http.StatusInternalServerError)
}

// respondJSON keeps JSON formatting consistent across endpoints.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("response encoding failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, message string, status int) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// pathParam returns a decoded URL parameter; chi hands back the escaped form when the request carried a RawPath.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
