package httpserver

import (
	"encoding/json"
	"net/http"

	factoryhttp "atelier/contexts/asset-ledger/garment-factory/transport/http"
	garmenthttp "atelier/contexts/asset-ledger/garment-registry/transport/http"
)

func (s *Server) registerGarmentRoutes() {
	s.mux.HandleFunc("POST /api/factory/v1/materials", s.handleFactoryCreateMaterial)
	s.mux.HandleFunc("POST /api/factory/v1/materials/batch", s.handleFactoryCreateMaterials)
	s.mux.HandleFunc("POST /api/factory/v1/garments", s.handleFactoryMintGarment)

	s.mux.HandleFunc("GET /api/garments/v1/garments/{id}", s.handleGarment)
	s.mux.HandleFunc("GET /api/garments/v1/garments/{id}/composition", s.handleGarmentComposition)
	s.mux.HandleFunc("GET /api/garments/v1/garments/{id}/materials/{material_id}/balance", s.handleGarmentMaterialBalance)
}

func (s *Server) handleFactoryCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req factoryhttp.CreateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFactoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.factory.Handler.CreateMaterialHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeFactoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleFactoryCreateMaterials(w http.ResponseWriter, r *http.Request) {
	var req factoryhttp.CreateMaterialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFactoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.factory.Handler.CreateMaterialsHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeFactoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleFactoryMintGarment(w http.ResponseWriter, r *http.Request) {
	var req factoryhttp.MintGarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFactoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.factory.Handler.MintGarmentHandler(r.Context(), callerAddress(r), req)
	if err != nil {
		writeFactoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGarment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeGarmentError(w, http.StatusBadRequest, "invalid_garment_id", "garment id must be a positive integer")
		return
	}
	resp, err := s.garments.Handler.GarmentHandler(r.Context(), id)
	if err != nil {
		writeGarmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGarmentComposition(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeGarmentError(w, http.StatusBadRequest, "invalid_garment_id", "garment id must be a positive integer")
		return
	}
	resp, err := s.garments.Handler.CompositionHandler(r.Context(), id, s.catalogOrDefault(r))
	if err != nil {
		writeGarmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGarmentMaterialBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeGarmentError(w, http.StatusBadRequest, "invalid_garment_id", "garment id must be a positive integer")
		return
	}
	materialID, ok := parseID(r.PathValue("material_id"))
	if !ok {
		writeGarmentError(w, http.StatusBadRequest, "invalid_material_id", "material id must be a positive integer")
		return
	}
	resp, err := s.garments.Handler.MaterialBalanceHandler(r.Context(), id, s.catalogOrDefault(r), materialID)
	if err != nil {
		writeGarmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// catalogOrDefault resolves the composition catalog: an explicit query param
// wins, otherwise the configured material catalog.
func (s *Server) catalogOrDefault(r *http.Request) string {
	if catalog := r.URL.Query().Get("catalog"); catalog != "" {
		return catalog
	}
	return s.defaultCatalog
}

func writeGarmentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, garmenthttp.ErrorResponse{Code: code, Message: message})
}

func writeFactoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, factoryhttp.ErrorResponse{Code: code, Message: message})
}
