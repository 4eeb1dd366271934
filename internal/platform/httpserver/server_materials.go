package httpserver

import (
	"encoding/json"
	"net/http"

	materialhttp "atelier/contexts/asset-ledger/material-catalog/transport/http"
)

func (s *Server) registerMaterialRoutes() {
	s.mux.HandleFunc("POST /api/materials/v1/materials", s.handleCreateMaterial)
	s.mux.HandleFunc("POST /api/materials/v1/materials/batch", s.handleCreateMaterials)
	s.mux.HandleFunc("POST /api/materials/v1/materials/{id}/mint", s.handleMintMaterial)
	s.mux.HandleFunc("GET /api/materials/v1/materials/{id}/uri", s.handleMaterialURI)
	s.mux.HandleFunc("GET /api/materials/v1/holders/{holder}/materials/{id}/balance", s.handleMaterialBalance)
}

func (s *Server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialhttp.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMaterialError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.materials.Handler.CreateMaterialHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreateMaterials(w http.ResponseWriter, r *http.Request) {
	var req materialhttp.CreateMaterialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMaterialError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.materials.Handler.CreateMaterialsHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMintMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMaterialError(w, http.StatusBadRequest, "invalid_material_id", "material id must be a positive integer")
		return
	}
	var req materialhttp.MintMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMaterialError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.materials.Handler.MintMaterialHandler(r.Context(), callerAddress(r), id, req)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMaterialURI(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMaterialError(w, http.StatusBadRequest, "invalid_material_id", "material id must be a positive integer")
		return
	}
	resp, err := s.materials.Handler.MaterialURIHandler(r.Context(), id)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMaterialBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeMaterialError(w, http.StatusBadRequest, "invalid_material_id", "material id must be a positive integer")
		return
	}
	resp, err := s.materials.Handler.BalanceHandler(r.Context(), r.PathValue("holder"), id)
	if err != nil {
		writeMaterialDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeMaterialError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, materialhttp.ErrorResponse{Code: code, Message: message})
}
