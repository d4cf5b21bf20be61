package segments_available_get

import (
	"net/http"
	"net/url"
	"strconv"

	"relay/internal/entities"
	"relay/internal/handlers/rest/response"
	"relay/internal/pkg/converters"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	position, err := parsePosition(query)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	radiusKm, err := parseFloat(query, "radius_km")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	available, err := h.service.ListAvailable(r.Context(), position, radiusKm)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.AvailableSegments(available))
}

// parsePosition: lat и lon передаются вместе или не передаются вовсе.
func parsePosition(query url.Values) (*entities.Coordinates, error) {
	if !query.Has("lat") && !query.Has("lon") {
		return nil, nil
	}
	if !query.Has("lat") || !query.Has("lon") {
		return nil, entities.Violations{"lat and lon must be passed together"}.Err()
	}

	lat, err := parseFloat(query, "lat")
	if err != nil {
		return nil, err
	}
	lon, err := parseFloat(query, "lon")
	if err != nil {
		return nil, err
	}

	return &entities.Coordinates{Lat: lat, Lon: lon}, nil
}

func parseFloat(query url.Values, key string) (float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, entities.Violations{key + " must be a number"}.Err()
	}
	return value, nil
}
