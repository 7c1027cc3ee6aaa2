package promotion

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/fanbase-labs/relation-storage/internal/metrics"
	"github.com/fanbase-labs/relation-storage/pkg/errs"
	"github.com/fanbase-labs/relation-storage/pkg/httpext"
)

type Server struct {
	service *Service
}

func NewServer(service *Service) *Server {
	return &Server{
		service: service,
	}
}

func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/promotions/{id}/eligibility", s.eligibility).Methods(http.MethodGet)
	r.HandleFunc("/creators/{id}/promotions", s.listForCreator).Methods(http.MethodGet)
}

func (s *Server) eligibility(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func(start time.Time) {
		metrics.CollectRequestsMetric("promotion_eligibility", err, start)
	}(time.Now())

	promoID, errP := uuid.Parse(mux.Vars(r)["id"])
	if errP != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid promotion id")

		return
	}

	viewerID, ok := optionalViewer(w, r)
	if !ok {
		return
	}

	mode := ModeSoft
	if r.URL.Query().Get("mode") == string(ModeEnforce) {
		mode = ModeEnforce
	}

	evaluated, err := s.service.EvaluateByID(r.Context(), promoID, viewerID, mode)
	if err != nil {
		if !errs.IsConflict(err) && !errs.IsNotFound(err) {
			log.Error().Err(err).Msgf("evaluate promotion %s", promoID)
		}
		httpext.WriteError(w, err)

		return
	}

	httpext.WriteJSON(w, http.StatusOK, evaluated)
}

func (s *Server) listForCreator(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func(start time.Time) {
		metrics.CollectRequestsMetric("promotions_list", err, start)
	}(time.Now())

	creatorID, errP := uuid.Parse(mux.Vars(r)["id"])
	if errP != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid creator id")

		return
	}

	viewerID, ok := optionalViewer(w, r)
	if !ok {
		return
	}

	evaluated, err := s.service.ListForCreator(r.Context(), creatorID, viewerID)
	if err != nil {
		log.Error().Err(err).Msgf("list promotions for %s", creatorID)
		httpext.WriteError(w, err)

		return
	}

	httpext.WriteJSON(w, http.StatusOK, map[string][]Evaluated{"items": evaluated})
}

// optionalViewer parses the viewer query param; absent means a listing
// without a specific claimant. Returns ok=false after writing a 400.
func optionalViewer(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("viewer")
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid viewer id")

		return nil, false
	}

	return &id, true
}
