package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	garmentfactory "atelier/contexts/asset-ledger/garment-factory"
	factoryerrors "atelier/contexts/asset-ledger/garment-factory/domain/errors"
	garmentregistry "atelier/contexts/asset-ledger/garment-registry"
	garmenterrors "atelier/contexts/asset-ledger/garment-registry/domain/errors"
	materialcatalog "atelier/contexts/asset-ledger/material-catalog"
	materialerrors "atelier/contexts/asset-ledger/material-catalog/domain/errors"
	accessregistry "atelier/contexts/identity-access/access-registry"
	accesserrors "atelier/contexts/identity-access/access-registry/domain/errors"
	accesshttp "atelier/contexts/identity-access/access-registry/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// callerHeader carries the caller's ledger address on every mutating request.
const callerHeader = "X-Caller-Address"

type Server struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	addr           string
	access         accessregistry.Module
	materials      materialcatalog.Module
	garments       garmentregistry.Module
	factory        garmentfactory.Module
	defaultCatalog string
}

func New(
	access accessregistry.Module,
	materials materialcatalog.Module,
	garments garmentregistry.Module,
	factory garmentfactory.Module,
	defaultCatalog string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:            http.NewServeMux(),
		logger:         logger,
		addr:           addr,
		access:         access,
		materials:      materials,
		garments:       garments,
		factory:        factory,
		defaultCatalog: defaultCatalog,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/access/v1/grants", s.handleGrant)
	s.mux.HandleFunc("POST /api/access/v1/grants/revoke", s.handleRevoke)
	s.mux.HandleFunc("GET /api/access/v1/addresses/{address}/roles/{role}", s.handleCheckRole)
	s.mux.HandleFunc("GET /api/access/v1/addresses/{address}/grants", s.handleListGrants)

	s.registerMaterialRoutes()
	s.registerGarmentRoutes()
}

func (s *Server) handleGrant(w http.ResponseWriter, r *http.Request) {
	var req accesshttp.GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.access.Handler.GrantHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevoke(w http.ResponseWriter, r *http.Request) {
	var req accesshttp.RevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccessError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.access.Handler.RevokeHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckRole(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.CheckRoleHandler(r.Context(), r.PathValue("address"), r.PathValue("role"))
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListGrants(w http.ResponseWriter, r *http.Request) {
	resp, err := s.access.Handler.ListGrantsHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrRoleRequired):
		writeAccessError(w, http.StatusForbidden, "role_required", err.Error())
	case errors.Is(err, accesserrors.ErrUnknownRole),
		errors.Is(err, accesserrors.ErrInvalidAddress):
		writeAccessError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, accesserrors.ErrLastAdmin):
		writeAccessError(w, http.StatusConflict, "last_admin", err.Error())
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMaterialDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, materialerrors.ErrRoleRequired):
		writeMaterialError(w, http.StatusForbidden, "role_required", err.Error())
	case errors.Is(err, materialerrors.ErrUnknownMaterial):
		writeMaterialError(w, http.StatusNotFound, "unknown_material", err.Error())
	case errors.Is(err, materialerrors.ErrEmptyBatch),
		errors.Is(err, materialerrors.ErrEmptyURI),
		errors.Is(err, materialerrors.ErrEmptyHolder),
		errors.Is(err, materialerrors.ErrInvalidAmount):
		writeMaterialError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, materialerrors.ErrInsufficientBalance):
		writeMaterialError(w, http.StatusConflict, "insufficient_balance", err.Error())
	default:
		writeMaterialError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeGarmentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, garmenterrors.ErrRoleRequired):
		writeGarmentError(w, http.StatusForbidden, "role_required", err.Error())
	case errors.Is(err, garmenterrors.ErrUnknownGarment):
		writeGarmentError(w, http.StatusNotFound, "unknown_garment", err.Error())
	case errors.Is(err, garmenterrors.ErrEmptyComposition),
		errors.Is(err, garmenterrors.ErrEmptyRecipient),
		errors.Is(err, garmenterrors.ErrEmptyURI):
		writeGarmentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		// Debits surface catalog errors through the registry call graph.
		writeMaterialDomainError(w, err)
	}
}

func writeFactoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, factoryerrors.ErrRoleRequired):
		writeFactoryError(w, http.StatusForbidden, "role_required", err.Error())
	case errors.Is(err, factoryerrors.ErrLengthMismatch):
		writeFactoryError(w, http.StatusBadRequest, "length_mismatch", err.Error())
	default:
		writeGarmentDomainError(w, err)
	}
}

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func callerAddress(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(callerHeader))
}

func parseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
