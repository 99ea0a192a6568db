package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"puregrind.shop/storefront/internal/badge"
	"puregrind.shop/storefront/internal/catalog"
	mw "puregrind.shop/storefront/internal/middleware"
)

// BadgePoseHandler turns a pointer sample into a tilted badge fragment. The client
// measures the badge rect at sample time and posts x, y, width and height. An empty
// surface answers 204 so htmx keeps the previous pose on screen.
func BadgePoseHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	sample, surface, err := parsePointer(r)
	if err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	tracker := badge.NewTracker()
	if !tracker.Move(sample, surface) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	renderTemplate(w, r, "frag_badge", buildBadgeView(mw.Lang(r), mw.CSRFToken(r), p, tracker.Pose()))
}

// BadgeLeaveHandler renders the badge in its neutral pose.
func BadgeLeaveHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	tracker := badge.NewTracker()
	renderTemplate(w, r, "frag_badge", buildBadgeView(mw.Lang(r), mw.CSRFToken(r), p, tracker.Leave()))
}

// BadgeOverlayOpenHandler opens the manufacturing video overlay.
func BadgeOverlayOpenHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	s := mw.GetSession(r)
	overlay := badge.NewOverlay(s.UI.Overlay)
	overlay.Activate()
	s.SetOverlay(overlay.Visible())
	respondOverlay(w, r, p, overlay)
}

// BadgeOverlayCloseHandler routes a click on the open overlay. target is one of
// close (default), backdrop or content; content clicks leave the overlay open.
func BadgeOverlayCloseHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := loadProduct(w, r)
	if !ok {
		return
	}
	s := mw.GetSession(r)
	overlay := badge.NewOverlay(s.UI.Overlay)
	overlay.Click(badge.ParseTarget(r.PostFormValue("target")))
	s.SetOverlay(overlay.Visible())
	respondOverlay(w, r, p, overlay)
}

func respondOverlay(w http.ResponseWriter, r *http.Request, p catalog.Product, overlay badge.Overlay) {
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, productPath(p.Slug), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "frag_badge_overlay", buildOverlayView(mw.Lang(r), mw.CSRFToken(r), p, overlay))
}

func parsePointer(r *http.Request) (badge.Sample, badge.Surface, error) {
	var vals [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		raw := strings.TrimSpace(r.PostFormValue(name))
		if raw == "" {
			return badge.Sample{}, badge.Surface{}, fmt.Errorf("%w: missing %s", badge.ErrInvalidSample, name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return badge.Sample{}, badge.Surface{}, fmt.Errorf("%w: %s: %v", badge.ErrInvalidSample, name, err)
		}
		vals[i] = v
	}
	sample := badge.Sample{X: vals[0], Y: vals[1]}
	surface := badge.Surface{Width: vals[2], Height: vals[3]}
	if err := badge.Validate(sample, surface); err != nil {
		return badge.Sample{}, badge.Surface{}, err
	}
	return sample, surface, nil
}
