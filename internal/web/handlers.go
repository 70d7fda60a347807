package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/beaconhq/beacon/internal/actionlog"
	"github.com/beaconhq/beacon/internal/badge"
	"github.com/beaconhq/beacon/internal/series"
	"github.com/beaconhq/beacon/internal/storage"
	"github.com/beaconhq/beacon/internal/storage/dto"
	"github.com/beaconhq/beacon/internal/timeline"
)

type IndexResponse struct {
	Actions         []dto.TimedAction    `json:"actions"`
	DaysToShow      int                  `json:"days_to_show"`
	AllIncidents    []timeline.DayBucket `json:"all_incidents"`
	CanPageForward  bool                 `json:"can_page_forward"`
	CanPageBackward bool                 `json:"can_page_backward"`
	PreviousDate    string               `json:"previous_date"`
	NextDate        string               `json:"next_date"`
}

func (h *httpHandlers) index(writer http.ResponseWriter, request *http.Request) {
	now := h.now()
	window := timeline.ResolveWindow(
		now,
		request.URL.Query().Get("start_date"),
		h.cfg.DaysToShow,
		h.authenticated(request),
	)

	// The bucket fetch and the backward-paging check are independent
	// read-only queries, so they run concurrently.
	var (
		buckets    []timeline.DayBucket
		pagination timeline.Pagination
	)
	group, ctx := errgroup.WithContext(request.Context())
	group.Go(func() error {
		var err error
		buckets, err = timeline.Buckets(ctx, h.incidents, window)
		return err
	})
	group.Go(func() error {
		var err error
		pagination, err = timeline.Paginate(ctx, h.incidents, window, now)
		return err
	})

	actions, err := h.actions.ListActive(request.Context())
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if actions == nil {
		actions = []dto.TimedAction{}
	}

	if err := group.Wait(); err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(writer, IndexResponse{
		Actions:         actions,
		DaysToShow:      window.DaysToShow,
		AllIncidents:    buckets,
		CanPageForward:  pagination.CanPageForward,
		CanPageBackward: pagination.CanPageBackward,
		PreviousDate:    pagination.PreviousDate,
		NextDate:        pagination.NextDate,
	})
}

type IncidentResponse struct {
	Incident dto.Incident         `json:"incident"`
	Updates  []dto.IncidentUpdate `json:"updates"`
}

func (h *httpHandlers) getIncident(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(request.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(writer, "invalid incident id", http.StatusBadRequest)
		return
	}

	threshold := dto.VisiblePublic
	if h.authenticated(request) {
		threshold = dto.VisibleAuthenticated
	}

	incident, err := h.incidents.Get(request.Context(), id, threshold)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(writer, "incident not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	updates, err := h.incidents.ListUpdates(request.Context(), incident.ID)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	if updates == nil {
		updates = []dto.IncidentUpdate{}
	}

	writeJSON(writer, IncidentResponse{Incident: incident, Updates: updates})
}

func (h *httpHandlers) createIncident(writer http.ResponseWriter, request *http.Request) {
	if !h.authenticated(request) {
		http.Error(writer, "unauthorized", http.StatusUnauthorized)
		return
	}

	var params storage.CreateIncidentParams
	if err := json.NewDecoder(request.Body).Decode(&params); err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}
	if params.Name == "" {
		http.Error(writer, "name is required", http.StatusBadRequest)
		return
	}

	incident, err := h.incidents.Create(request.Context(), params)
	if errors.Is(err, storage.ErrDuplicate) {
		http.Error(writer, "incident already exists", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(writer).Encode(incident)
}

func (h *httpHandlers) metricSeries(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(request.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(writer, "invalid metric id", http.StatusBadRequest)
		return
	}

	metric, err := h.metrics.Get(request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(writer, "metric not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	filter := request.URL.Query().Get("filter")
	if filter == "" {
		filter = string(series.WindowLastHour)
	}

	result, err := series.Select(request.Context(), h.metrics, metric, series.ParseWindow(filter), h.now())
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(writer, result)
}

func (h *httpHandlers) actionHistory(writer http.ResponseWriter, request *http.Request) {
	id, err := strconv.ParseInt(request.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(writer, "invalid action id", http.StatusBadRequest)
		return
	}

	action, err := h.actions.Get(request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(writer, "action not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	summary, err := actionlog.Summarize(request.Context(), h.actions, action, h.now())
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(writer, summary)
}

func (h *httpHandlers) componentBadge(writer http.ResponseWriter, request *http.Request) {
	component, err := h.components.GetByName(request.Context(), request.PathValue("name"))
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(writer, "component not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	style := request.URL.Query().Get("style")
	if style == "" {
		style = badge.DefaultStyle
	}

	view := badge.ViewStatus(component)
	svg, err := h.renderer.Render(component.Name, view.Human, h.colors.Hex(view.Category), style)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "image/svg+xml")
	_, _ = writer.Write(svg)
}

func writeJSON(writer http.ResponseWriter, v any) {
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(v); err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
	}
}
