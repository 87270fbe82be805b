package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/application/controllers"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
	apperrors "github.com/avtoservice/admin-console/pkg/errors"
)

// formInt64 reads a form field as int64. Unparseable input yields 0 and
// falls through to the request validators.
func formInt64(r *http.Request, field string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(field)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func formInt(r *http.Request, field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return 0
	}
	return v
}

func formFloat(r *http.Request, field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(field)), 64)
	if err != nil {
		return 0
	}
	return v
}

func formString(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

// pageState assembles the shared page chrome from the controller
// snapshot. An explicit errMsg wins over the snapshot's error slots.
func pageState[T any](title string, store *session.Store, snap controllers.Snapshot[T], errMsg string) views.Page {
	p := views.Page{
		Title:      title,
		User:       store.Current().User,
		Success:    snap.Success,
		Submitting: snap.Submitting,
	}
	switch {
	case errMsg != "":
		p.Error = errMsg
	case snap.FormErr != nil:
		p.Error = apperrors.UserMessage(snap.FormErr)
	case snap.LoadErr != nil:
		p.Error = apperrors.UserMessage(snap.LoadErr)
	}
	return p
}
