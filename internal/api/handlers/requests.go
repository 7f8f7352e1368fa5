package handlers

import (
	"airlift-load-service/internal/api/dto"
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
)

// RequestHandler exposes the cargo request intake endpoints.
type RequestHandler struct {
	Repo ports.CargoRepository
}

func (h *RequestHandler) Requests(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *RequestHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.ListPending(r.Context())
	if err != nil {
		log.Printf("list requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	type groupKey struct {
		t        domain.ItemType
		priority int
	}
	groups := make(map[groupKey]*dto.PendingGroup)
	for _, item := range items {
		key := groupKey{t: item.Type, priority: item.Priority}
		g, ok := groups[key]
		if !ok {
			label := string(item.Type)
			if preset, found := domain.ItemPresets[item.Type]; found {
				label = preset.Label
			}
			g = &dto.PendingGroup{
				ItemType: string(item.Type),
				Label:    label,
				Priority: item.Priority,
				WeightKg: item.WeightKg,
				LengthM:  item.LengthM,
				WidthM:   item.WidthM,
				HeightM:  item.HeightM,
			}
			groups[key] = g
		}
		g.Count++
	}

	res := dto.ListRequestsResponse{
		Pending: make([]dto.PendingGroup, 0, len(groups)),
		Total:   len(items),
	}
	for _, g := range groups {
		res.Pending = append(res.Pending, *g)
	}
	// Stable response order: priority desc, then type.
	sort.Slice(res.Pending, func(i, j int) bool {
		if res.Pending[i].Priority != res.Pending[j].Priority {
			return res.Pending[i].Priority > res.Pending[j].Priority
		}
		return res.Pending[i].ItemType < res.Pending[j].ItemType
	})

	writeJSON(w, r, http.StatusOK, res)
}

// submit accepts a typed request and expands it into quantity pending
// items, the quantity derived from the priority level.
func (h *RequestHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	quantity := domain.QuantityForPriority(req.Priority)

	added, err := h.Repo.AddRequests(r.Context(), domain.ItemType(req.ItemType), req.Priority, quantity)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("add requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SubmitResponse{
		Added:   added,
		Message: fmt.Sprintf("Added %d %s (priority %d)", added, req.ItemType, req.Priority),
	})
}

func (h *RequestHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := h.Repo.ClearRequests(r.Context()); err != nil {
		log.Printf("clear requests failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "all requests cleared"})
}
