package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hotel-site/pkg/services"
)

var formFields = map[services.FormKind][]string{
	services.FormContact:    {"name", "email", "phone", "destination", "message"},
	services.FormClub:       {"name", "email", "tier"},
	services.FormNewsletter: {"email"},
}

// submit parses the posted form and runs the simulated submission. It returns the
// form view to re-render and the HTTP status to use.
func (h *Handler) submit(ctx context.Context, r *http.Request, kind services.FormKind) (FormView, int) {
	form := FormView{Values: make(map[string]string)}
	if err := r.ParseForm(); err != nil {
		form.Errors = map[string]string{"form": "We could not read your message."}
		return form, http.StatusBadRequest
	}
	for _, name := range formFields[kind] {
		form.Values[name] = strings.TrimSpace(r.PostForm.Get(name))
	}

	sub, err := h.service.SubmitForm(ctx, kind, form.Values)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			form.Errors = verr.Fields
			return form, http.StatusUnprocessableEntity
		}
		h.logger.Warn("Form submission failed", "kind", kind, "err", err)
		form.Errors = map[string]string{"form": "Something went wrong, please try again."}
		return form, http.StatusServiceUnavailable
	}

	return FormView{Reference: sub.Reference}, http.StatusOK
}

// ContactHandler renders the contact page
func (h *Handler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	page, unmount := h.mount("Contact", "/contact", "intro", "form")
	defer unmount()

	form := FormView{Values: map[string]string{"destination": r.URL.Query().Get("destination")}}
	h.render(w, http.StatusOK, "contact", ContactPage{Page: page, Form: form})
}

// ContactSubmitHandler handles the contact form
func (h *Handler) ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	form, status := h.submit(r.Context(), r, services.FormContact)

	page, unmount := h.mount("Contact", "/contact", "intro", "form")
	defer unmount()

	h.render(w, status, "contact", ContactPage{Page: page, Form: form})
}

// ClubHandler renders the membership club page
func (h *Handler) ClubHandler(w http.ResponseWriter, r *http.Request) {
	page, unmount := h.mount("Club", "/club", "intro", "tiers", "form")
	defer unmount()

	form := FormView{Values: map[string]string{"tier": r.URL.Query().Get("tier")}}
	h.render(w, http.StatusOK, "club", ClubPage{Page: page, Tiers: h.service.Catalog().ClubTiers, Form: form})
}

// ClubSubmitHandler handles the membership sign-up form
func (h *Handler) ClubSubmitHandler(w http.ResponseWriter, r *http.Request) {
	form, status := h.submit(r.Context(), r, services.FormClub)

	page, unmount := h.mount("Club", "/club", "intro", "tiers", "form")
	defer unmount()

	h.render(w, status, "club", ClubPage{Page: page, Tiers: h.service.Catalog().ClubTiers, Form: form})
}

// NewsletterHandler handles the footer newsletter sign-up
func (h *Handler) NewsletterHandler(w http.ResponseWriter, r *http.Request) {
	form, status := h.submit(r.Context(), r, services.FormNewsletter)

	page, unmount := h.mount("Newsletter", "")
	defer unmount()

	h.render(w, status, "newsletter", ContactPage{Page: page, Form: form})
}
