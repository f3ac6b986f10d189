package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"farmstand/pkg/cart"
	"farmstand/pkg/catalog"
	"farmstand/pkg/contact"
	"farmstand/pkg/notify"
)

// pageData is everything app.gohtml renders.
type pageData struct {
	Filter        catalog.FilterState
	Sort          catalog.SortKey
	Categories    []string
	Difficulties  []catalog.Difficulty
	SortKeys      []catalog.SortKey
	Products      []catalog.Entry
	Recipes       []catalog.Entry
	Recipe        *catalog.Detail
	Cart          cart.Snapshot
	Notifications []notify.Notification
	Return        string
}

// renderPage is the server-side counterpart of the page script: the query string
// carries the FilterState and the sort key, and the result is rendered directly.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	q := r.URL.Query()
	st := filterFromQuery(q)
	key, err := catalog.ParseSortKey(q.Get("sort"))
	if err != nil {
		key = catalog.SortNone
	}
	cat := s.library.Catalog()

	data := pageData{
		Filter:       st,
		Sort:         key,
		Categories:   cat.Categories(),
		Difficulties: []catalog.Difficulty{catalog.Easy, catalog.Medium, catalog.Hard},
		SortKeys:     []catalog.SortKey{catalog.SortName, catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating},
		Products:     query(cat.Products, st, key),
		Recipes:      query(cat.Recipes, st, key),
		Return:       r.URL.RequestURI(),
	}
	if name := q.Get("recipe"); name != "" {
		if recipe, err := s.library.Recipe(name); err == nil {
			detail := catalog.ExpandRecipe(recipe)
			data.Recipe = &detail
		}
	}
	if data.Cart, err = s.cart.Snapshot(ctx); err != nil {
		s.logger.Warn("rendering page without cart", zap.Error(err))
	}
	data.Notifications = s.notices.Active()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("page render failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) formAdd(w http.ResponseWriter, r *http.Request) {
	if _, err := s.add(r.Context(), r.FormValue("name")); err != nil {
		s.logger.Warn("add to cart failed", zap.String("name", r.FormValue("name")), zap.Error(err))
	}
	redirectBack(w, r)
}

func (s *Server) formRemove(w http.ResponseWriter, r *http.Request) {
	if _, err := s.remove(r.Context(), r.FormValue("name")); err != nil {
		s.logger.Warn("remove from cart failed", zap.String("name", r.FormValue("name")), zap.Error(err))
	}
	redirectBack(w, r)
}

func (s *Server) formDecrement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if _, _, err := s.cart.Decrement(ctx, r.FormValue("name")); err != nil {
		s.logger.Warn("decrement failed", zap.String("name", r.FormValue("name")), zap.Error(err))
	}
	redirectBack(w, r)
}

// formContact never fails visibly: validation problems come back as an error toast.
func (s *Server) formContact(w http.ResponseWriter, r *http.Request) {
	msg := contact.Message{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("message"),
	}
	if err := s.sendContact(r.Context(), msg); err != nil && !contact.IsValidation(err) {
		s.logger.Warn("contact submission failed", zap.Error(err))
	}
	redirectBack(w, r)
}

// redirectBack returns to the page the form was posted from. Only local paths are honored.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.FormValue("return")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
