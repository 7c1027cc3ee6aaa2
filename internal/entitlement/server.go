package entitlement

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
	r.HandleFunc("/entitlements/{viewer}/{subject}", s.resolve).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/not-allowed", s.notAllowed).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/interactions/{ref}/check", s.checkInteraction).Methods(http.MethodPost)
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func(start time.Time) {
		metrics.CollectRequestsMetric("resolve", err, start)
	}(time.Now())

	vars := mux.Vars(r)
	viewerID, errV := uuid.Parse(vars["viewer"])
	subjectID, errS := uuid.Parse(vars["subject"])
	if errV != nil || errS != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid user id")

		return
	}

	ent, err := s.service.Resolve(r.Context(), viewerID, subjectID)
	if err != nil {
		log.Error().Err(err).Msgf("resolve entitlement %s/%s", viewerID, subjectID)
		httpext.WriteError(w, err)

		return
	}

	httpext.WriteJSON(w, http.StatusOK, ent)
}

func (s *Server) notAllowed(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func(start time.Time) {
		metrics.CollectRequestsMetric("not_allowed", err, start)
	}(time.Now())

	userID, errP := uuid.Parse(mux.Vars(r)["id"])
	if errP != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid user id")

		return
	}

	opts := NotAllowedOptions{
		IncludeRestricted:      r.URL.Query().Get("includeRestricted") == "true",
		ExcludeBlockedReversal: r.URL.Query().Get("excludeBlockedReversal") == "true",
	}

	ids, err := s.service.BuildNotAllowed(r.Context(), userID, opts)
	if err != nil {
		log.Error().Err(err).Msgf("build not-allowed set for %s", userID)
		httpext.WriteError(w, err)

		return
	}

	httpext.WriteJSON(w, http.StatusOK, map[string][]uuid.UUID{"user_ids": ids})
}

func (s *Server) checkInteraction(w http.ResponseWriter, r *http.Request) {
	var err error
	defer func(start time.Time) {
		metrics.CollectRequestsMetric("check_interaction", err, start)
	}(time.Now())

	vars := mux.Vars(r)
	userID, errU := uuid.Parse(vars["id"])
	refUserID, errR := uuid.Parse(vars["ref"])
	if errU != nil || errR != nil {
		httpext.WriteMessage(w, http.StatusBadRequest, "invalid user id")

		return
	}

	validateRestricted := r.URL.Query().Get("validateRestricted") == "true"

	err = s.service.AssertAllowed(r.Context(), userID, refUserID, validateRestricted)
	if err != nil {
		if !errs.IsConflict(err) && !errs.IsNotFound(err) {
			log.Error().Err(err).Msgf("check interaction %s/%s", userID, refUserID)
		}
		httpext.WriteError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
