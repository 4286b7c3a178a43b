// AngelaMos | 2026
// handler.go

package booking

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

type ReferenceResponse struct {
	Reference string    `json:"reference"`
	IssuedAt  time.Time `json:"issued_at"`
	Reserved  bool      `json:"reserved"`
}

// Handler issues booking references. Without a registry references are only
// probabilistically unique and cannot be looked up or released.
type Handler struct {
	registry *Registry
	gen      *Generator
}

func NewHandler(registry *Registry, gen *Generator) *Handler {
	return &Handler{
		registry: registry,
		gen:      gen,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/booking-references", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/{reference}", h.Get)
		r.Delete("/{reference}", h.Release)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.registry == nil {
		core.Created(w, newReferenceResponse(h.gen.Generate(), false))
		return
	}

	ref, err := h.registry.Reserve(r.Context())
	if err != nil {
		if errors.Is(err, ErrReferenceExhausted) {
			core.JSONError(w, core.ConflictError("could not allocate a unique booking reference"))
			return
		}
		core.JSONError(w, err)
		return
	}

	core.Created(w, newReferenceResponse(ref, true))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.reference(w, r)
	if !ok {
		return
	}

	exists, err := h.registry.Exists(r.Context(), ref)
	if err != nil {
		core.JSONError(w, err)
		return
	}
	if !exists {
		core.NotFound(w, "booking reference")
		return
	}

	core.OK(w, newReferenceResponse(ref, true))
}

func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.reference(w, r)
	if !ok {
		return
	}

	if err := h.registry.Release(r.Context(), ref); err != nil {
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

// reference validates the URL reference and that a registry is configured.
// References are issued upper-cased, so lookups are normalized the same way.
func (h *Handler) reference(w http.ResponseWriter, r *http.Request) (string, bool) {
	if h.registry == nil {
		core.JSONError(w, core.UnavailableError("booking reference registry is not configured"))
		return "", false
	}

	ref := strings.ToUpper(chi.URLParam(r, "reference"))
	if prefix, _, ok := ParseReference(ref); !ok || !strings.EqualFold(prefix, h.gen.Prefix()) {
		core.BadRequest(w, "malformed booking reference")
		return "", false
	}

	return ref, true
}

func newReferenceResponse(ref string, reserved bool) ReferenceResponse {
	_, issued, _ := ParseReference(ref)
	return ReferenceResponse{
		Reference: ref,
		IssuedAt:  issued,
		Reserved:  reserved,
	}
}
