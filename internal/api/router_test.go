package api_test

import (
	"airlift-load-service/internal/adapters/repositories"
	"airlift-load-service/internal/api"
	"airlift-load-service/internal/api/dto"
	"airlift-load-service/internal/domain"
	"airlift-load-service/internal/planstore"
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	router := api.NewRouter(
		repositories.NewSqliteCargoRepository(db),
		planstore.New(),
		nil,
		domain.UH60BlackHawk(),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	res, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return res
}

func decodeBody(t *testing.T, res *http.Response, out any) {
	t.Helper()

	defer res.Body.Close()
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestSubmitListAndClearRequests(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/requests", `{"item_type": "water-case", "priority": 2}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", res.StatusCode)
	}
	var submit dto.SubmitResponse
	decodeBody(t, res, &submit)
	if submit.Added != domain.QuantityForPriority(2) {
		t.Fatalf("added = %d, want %d", submit.Added, domain.QuantityForPriority(2))
	}

	res = postJSON(t, srv.URL+"/requests", `{"item_type": "first-aid-kit", "priority": 9}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()

	res, err := http.Get(srv.URL + "/requests")
	if err != nil {
		t.Fatalf("GET /requests: %v", err)
	}
	var list dto.ListRequestsResponse
	decodeBody(t, res, &list)
	if len(list.Pending) != 2 {
		t.Fatalf("pending groups = %d, want 2", len(list.Pending))
	}
	// Groups come back highest priority first.
	if list.Pending[0].ItemType != "first-aid-kit" || list.Pending[1].ItemType != "water-case" {
		t.Fatalf("unexpected group order: %+v", list.Pending)
	}
	wantTotal := domain.QuantityForPriority(2) + domain.QuantityForPriority(9)
	if list.Total != wantTotal {
		t.Fatalf("total = %d, want %d", list.Total, wantTotal)
	}

	res = postJSON(t, srv.URL+"/requests/clear", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()

	res, err = http.Get(srv.URL + "/requests")
	if err != nil {
		t.Fatalf("GET /requests: %v", err)
	}
	decodeBody(t, res, &list)
	if list.Total != 0 {
		t.Fatalf("total after clear = %d, want 0", list.Total)
	}
}

func TestSubmitRejectsUnknownItemType(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/requests", `{"item_type": "jetpack", "priority": 5}`)
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestCurrentPlanBeforeGeneration(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/plans/current")
	if err != nil {
		t.Fatalf("GET /plans/current: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}

func TestGenerateAndReadPlan(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/requests", `{"item_type": "water-case", "priority": 8}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()

	res = postJSON(t, srv.URL+"/plans/generate", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", res.StatusCode)
	}
	var plan dto.PlanResponse
	decodeBody(t, res, &plan)

	wantCount := domain.QuantityForPriority(8)
	if plan.Stats.ItemsPacked+plan.Stats.ItemsUnplaced != wantCount {
		t.Fatalf("packed %d + unplaced %d, want %d total",
			plan.Stats.ItemsPacked, plan.Stats.ItemsUnplaced, wantCount)
	}
	if plan.Stats.ItemsPacked == 0 {
		t.Fatal("expected at least one packed item")
	}
	if plan.GeneratedAt.IsZero() {
		t.Fatal("plan must carry a generation time")
	}
	if plan.Stats.BalanceScore < 0 || plan.Stats.BalanceScore > 1 {
		t.Fatalf("balance score %f out of [0, 1]", plan.Stats.BalanceScore)
	}
	if plan.Fuel.FuelUsedKg <= 0 {
		t.Fatalf("fuel used = %f, want positive", plan.Fuel.FuelUsedKg)
	}

	// The generated plan becomes the published snapshot.
	res, err := http.Get(srv.URL + "/plans/current")
	if err != nil {
		t.Fatalf("GET /plans/current: %v", err)
	}
	var current dto.PlanResponse
	decodeBody(t, res, &current)
	if current.Stats.TotalWeightKg != plan.Stats.TotalWeightKg {
		t.Fatalf("current plan weight %f, generate returned %f",
			current.Stats.TotalWeightKg, plan.Stats.TotalWeightKg)
	}
}

func TestGenerateWithProfileOverrides(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/requests", `{"item_type": "water-case", "priority": 8}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()

	// A cap below one case weight leaves everything unplaced.
	res = postJSON(t, srv.URL+"/plans/generate", `{"max_weight_kg": 5.0}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", res.StatusCode)
	}
	var plan dto.PlanResponse
	decodeBody(t, res, &plan)
	if plan.Stats.ItemsPacked != 0 {
		t.Fatalf("packed = %d, want 0 under a 5 kg cap", plan.Stats.ItemsPacked)
	}
	if plan.Stats.ItemsUnplaced != domain.QuantityForPriority(8) {
		t.Fatalf("unplaced = %d, want %d", plan.Stats.ItemsUnplaced, domain.QuantityForPriority(8))
	}

	// Invalid overrides are rejected before the pipeline runs.
	res = postJSON(t, srv.URL+"/plans/generate", `{"max_weight_kg": -1}`)
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestGenerateRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/plans/generate", `{"max_weight": 100}`)
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestExportsRequirePublishedPlan(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/plans/current/pdf", "/plans/current/scad"} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want 404", path, res.StatusCode)
		}
	}
}

func TestExportsAfterGeneration(t *testing.T) {
	srv := newTestServer(t)

	res := postJSON(t, srv.URL+"/requests", `{"item_type": "blanket", "priority": 5}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()
	res = postJSON(t, srv.URL+"/plans/generate", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("generate status = %d, want 200", res.StatusCode)
	}
	res.Body.Close()

	res, err := http.Get(srv.URL + "/plans/current/pdf")
	if err != nil {
		t.Fatalf("GET /plans/current/pdf: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("pdf status = %d, want 200", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("pdf content type = %q", ct)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read pdf body: %v", err)
	}
	res.Body.Close()
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("pdf body missing %PDF- header")
	}

	res, err = http.Get(srv.URL + "/plans/current/scad")
	if err != nil {
		t.Fatalf("GET /plans/current/scad: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("scad status = %d, want 200", res.StatusCode)
	}
	buf.Reset()
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read scad body: %v", err)
	}
	res.Body.Close()
	if !strings.Contains(buf.String(), "bay_wireframe();") {
		t.Fatal("scad body missing bay wireframe call")
	}
}

func TestPresets(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/presets/items")
	if err != nil {
		t.Fatalf("GET /presets/items: %v", err)
	}
	var items dto.ListItemPresetsResponse
	decodeBody(t, res, &items)
	if len(items.Presets) != len(domain.ItemPresets) {
		t.Fatalf("preset count = %d, want %d", len(items.Presets), len(domain.ItemPresets))
	}

	res, err = http.Get(srv.URL + "/presets/aircraft")
	if err != nil {
		t.Fatalf("GET /presets/aircraft: %v", err)
	}
	var aircraft dto.AircraftPresetResponse
	decodeBody(t, res, &aircraft)
	if aircraft.Name != "UH-60 Black Hawk" {
		t.Fatalf("aircraft name = %q", aircraft.Name)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/plans/generate")
	if err != nil {
		t.Fatalf("GET /plans/generate: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", res.StatusCode)
	}
}
