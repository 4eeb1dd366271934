package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func createMaterialsBatch(t *testing.T, server *Server, caller string, uris []string) {
	t.Helper()
	payload, _ := json.Marshal(map[string][]string{"uris": uris})
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/materials/batch", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", caller)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create materials: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func mintMaterialTo(t *testing.T, server *Server, caller string, materialID string, holder string, amount string) {
	t.Helper()
	body := []byte(`{"holder":"` + holder + `","amount":` + amount + `}`)
	req := httptest.NewRequest(http.MethodPost, "/api/materials/v1/materials/"+materialID+"/mint", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", caller)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("mint material %s: expected 200, got %d body=%s", materialID, rr.Code, rr.Body.String())
	}
}

func TestFactoryMintGarmentRequiresMinter(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"uri":"ipfs://jacket","designer":"ada","recipient":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/garments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", "stranger")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestFactoryMintGarmentRejectsLengthMismatch(t *testing.T) {
	server := newTestServer()
	grantRole(t, server, "brand", "minter")

	body := []byte(`{"uri":"ipfs://jacket","designer":"ada","material_ids":[1,2],"amounts":[1],"recipient":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/garments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", "brand")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestFactoryMintGarmentWithMaterialsFlow(t *testing.T) {
	server := newTestServer()
	grantRole(t, server, "brand", "minter")
	createMaterialsBatch(t, server, "brand", []string{
		"ipfs://cotton", "ipfs://wool", "ipfs://silk", "ipfs://linen", "ipfs://hemp",
	})
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		mintMaterialTo(t, server, "brand", id, testFactory, "10")
	}

	body := []byte(`{"uri":"ipfs://jacket","designer":"ada","material_ids":[1,2,3,4,5],"amounts":[1,5,2,2,2],"recipient":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/garments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", "brand")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("mint garment: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var minted struct {
		GarmentTokenID uint64 `json:"garment_token_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &minted); err != nil {
		t.Fatalf("decode mint response: %v", err)
	}
	if minted.GarmentTokenID != 1 {
		t.Fatalf("expected garment id 1, got %d", minted.GarmentTokenID)
	}

	garmentReq := httptest.NewRequest(http.MethodGet, "/api/garments/v1/garments/1", nil)
	garmentRR := httptest.NewRecorder()
	server.mux.ServeHTTP(garmentRR, garmentReq)
	if garmentRR.Code != http.StatusOK {
		t.Fatalf("garment: expected 200, got %d body=%s", garmentRR.Code, garmentRR.Body.String())
	}
	var garment struct {
		Owner    string `json:"owner"`
		Designer string `json:"designer"`
		URI      string `json:"uri"`
	}
	if err := json.Unmarshal(garmentRR.Body.Bytes(), &garment); err != nil {
		t.Fatalf("decode garment: %v", err)
	}
	if garment.Owner != "alice" || garment.Designer != "ada" || garment.URI != "ipfs://jacket" {
		t.Fatalf("unexpected garment: %+v", garment)
	}

	compReq := httptest.NewRequest(http.MethodGet, "/api/garments/v1/garments/1/composition", nil)
	compRR := httptest.NewRecorder()
	server.mux.ServeHTTP(compRR, compReq)
	if compRR.Code != http.StatusOK {
		t.Fatalf("composition: expected 200, got %d body=%s", compRR.Code, compRR.Body.String())
	}
	var comp struct {
		MaterialIDs []uint64 `json:"material_ids"`
	}
	if err := json.Unmarshal(compRR.Body.Bytes(), &comp); err != nil {
		t.Fatalf("decode composition: %v", err)
	}
	want := []uint64{1, 2, 3, 4, 5}
	if len(comp.MaterialIDs) != len(want) {
		t.Fatalf("expected %d material ids, got %v", len(want), comp.MaterialIDs)
	}
	for i, id := range want {
		if comp.MaterialIDs[i] != id {
			t.Fatalf("composition order mismatch at %d: got %v", i, comp.MaterialIDs)
		}
	}

	balanceReq := httptest.NewRequest(http.MethodGet, "/api/garments/v1/garments/1/materials/2/balance", nil)
	balanceRR := httptest.NewRecorder()
	server.mux.ServeHTTP(balanceRR, balanceReq)
	if balanceRR.Code != http.StatusOK {
		t.Fatalf("garment balance: expected 200, got %d body=%s", balanceRR.Code, balanceRR.Body.String())
	}
	if !bytes.Contains(balanceRR.Body.Bytes(), []byte(`"balance":5`)) {
		t.Fatalf("expected garment balance 5 for material 2, got body=%s", balanceRR.Body.String())
	}

	factoryBalance := httptest.NewRequest(http.MethodGet,
		"/api/materials/v1/holders/"+testFactory+"/materials/2/balance", nil)
	factoryRR := httptest.NewRecorder()
	server.mux.ServeHTTP(factoryRR, factoryBalance)
	if factoryRR.Code != http.StatusOK {
		t.Fatalf("factory balance: expected 200, got %d body=%s", factoryRR.Code, factoryRR.Body.String())
	}
	if !bytes.Contains(factoryRR.Body.Bytes(), []byte(`"balance":5`)) {
		t.Fatalf("expected factory balance 5 after debit, got body=%s", factoryRR.Body.String())
	}
}

func TestFactoryMintGarmentInsufficientBalanceConflicts(t *testing.T) {
	server := newTestServer()
	grantRole(t, server, "brand", "minter")
	createMaterialsBatch(t, server, "brand", []string{"ipfs://cotton"})
	mintMaterialTo(t, server, "brand", "1", testFactory, "2")

	body := []byte(`{"uri":"ipfs://jacket","designer":"ada","material_ids":[1],"amounts":[3],"recipient":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/garments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", "brand")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}

	missing := httptest.NewRequest(http.MethodGet, "/api/garments/v1/garments/1", nil)
	missingRR := httptest.NewRecorder()
	server.mux.ServeHTTP(missingRR, missing)
	if missingRR.Code != http.StatusNotFound {
		t.Fatalf("expected no garment after failed mint, got %d body=%s", missingRR.Code, missingRR.Body.String())
	}
}

func TestFactoryMintGarmentWithoutMaterials(t *testing.T) {
	server := newTestServer()
	grantRole(t, server, "brand", "minter")

	body := []byte(`{"uri":"ipfs://plain","designer":"ada","recipient":"alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/factory/v1/garments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", "brand")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	compReq := httptest.NewRequest(http.MethodGet, "/api/garments/v1/garments/1/composition", nil)
	compRR := httptest.NewRecorder()
	server.mux.ServeHTTP(compRR, compReq)
	if compRR.Code != http.StatusOK {
		t.Fatalf("composition: expected 200, got %d body=%s", compRR.Code, compRR.Body.String())
	}
	var comp struct {
		MaterialIDs []uint64 `json:"material_ids"`
	}
	if err := json.Unmarshal(compRR.Body.Bytes(), &comp); err != nil {
		t.Fatalf("decode composition: %v", err)
	}
	if len(comp.MaterialIDs) != 0 {
		t.Fatalf("expected empty composition, got %v", comp.MaterialIDs)
	}
}
