package leads_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/losslocator/locator/internal/classifier"
	"github.com/losslocator/locator/internal/leads"
	"github.com/losslocator/locator/pkg/pagination"
	"github.com/losslocator/locator/pkg/repository"
	"github.com/losslocator/locator/pkg/routes"
)

type mockSystem struct {
	lead     *leads.Lead
	sweep    *leads.SweepResult
	routable *leads.RoutableResult
	decision *classifier.Decision
	err      error
}

func (m *mockSystem) Handler() *leads.Handler { return nil }

func (m *mockSystem) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters leads.Filters,
) (*pagination.PageResult[leads.Lead], error) {
	if m.err != nil {
		return nil, m.err
	}
	result := pagination.NewPageResult([]leads.Lead{*m.lead}, 1, 1, 10)
	return &result, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*leads.Lead, error) {
	return m.lead, m.err
}

func (m *mockSystem) Admit(ctx context.Context, cmd leads.AdmitCommand) (*leads.Lead, error) {
	return m.lead, m.err
}

func (m *mockSystem) Sweep(ctx context.Context) (*leads.SweepResult, error) {
	return m.sweep, m.err
}

func (m *mockSystem) Assign(ctx context.Context, id uuid.UUID, cmd leads.AssignCommand) (*leads.Lead, error) {
	return m.lead, m.err
}

func (m *mockSystem) TransitionStatus(ctx context.Context, id uuid.UUID, cmd leads.TransitionCommand) (*leads.Lead, error) {
	return m.lead, m.err
}

func (m *mockSystem) Routable(ctx context.Context, id uuid.UUID) (*leads.RoutableResult, error) {
	return m.routable, m.err
}

func (m *mockSystem) Preview(ctx context.Context, eventID uuid.UUID) (*classifier.Decision, error) {
	return m.decision, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(sys leads.System, method, target, body string) *httptest.ResponseRecorder {
	h := leads.NewHandler(sys, testLogger(), pagination.Config{DefaultPageSize: 10, MaxPageSize: 100})

	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandlerFind(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{lead: &leads.Lead{ID: id, Status: leads.StatusUnassigned, Priority: leads.PriorityMedium}}

	w := serve(sys, http.MethodGet, "/leads/"+id.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("Find status = %d, expected 200", w.Code)
	}

	var lead leads.Lead
	if err := json.NewDecoder(w.Body).Decode(&lead); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if lead.ID != id {
		t.Errorf("lead.ID = %s, expected %s", lead.ID, id)
	}
}

func TestHandlerFindInvalidID(t *testing.T) {
	w := serve(&mockSystem{}, http.MethodGet, "/leads/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Find status = %d, expected 400", w.Code)
	}
}

func TestHandlerFindNotFound(t *testing.T) {
	sys := &mockSystem{err: leads.ErrNotFound}

	w := serve(sys, http.MethodGet, "/leads/"+uuid.NewString(), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Find status = %d, expected 404", w.Code)
	}
}

func TestHandlerListUnavailable(t *testing.T) {
	sys := &mockSystem{err: fmt.Errorf("list leads: %w", repository.ErrUnavailable)}

	w := serve(sys, http.MethodGet, "/leads", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("List status = %d, expected 503", w.Code)
	}

	w = serve(sys, http.MethodPost, "/leads/search", `{"filters":{}}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Search status = %d, expected 503", w.Code)
	}
}

func TestHandlerAdmit(t *testing.T) {
	eventID := uuid.New()
	sys := &mockSystem{lead: &leads.Lead{ID: uuid.New(), EventID: eventID, Status: leads.StatusUnassigned}}

	body := fmt.Sprintf(`{"event_id":%q}`, eventID)
	w := serve(sys, http.MethodPost, "/leads", body)
	if w.Code != http.StatusOK {
		t.Errorf("Admit status = %d, expected 200", w.Code)
	}
}

func TestHandlerAdmitNotQualified(t *testing.T) {
	sys := &mockSystem{err: fmt.Errorf("admit: %w", leads.ErrNotQualified)}

	body := fmt.Sprintf(`{"event_id":%q}`, uuid.New())
	w := serve(sys, http.MethodPost, "/leads", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Admit status = %d, expected 422", w.Code)
	}
}

func TestHandlerAdmitMalformedBody(t *testing.T) {
	w := serve(&mockSystem{}, http.MethodPost, "/leads", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Admit status = %d, expected 400", w.Code)
	}
}

func TestHandlerAssignConflict(t *testing.T) {
	sys := &mockSystem{err: leads.ErrConcurrentModification}

	body := `{"assigned_to":"J. Rivera","assignee_type":"adjuster-partner","priority":"high","version":3}`
	w := serve(sys, http.MethodPost, "/leads/"+uuid.NewString()+"/assign", body)
	if w.Code != http.StatusConflict {
		t.Errorf("Assign status = %d, expected 409", w.Code)
	}
}

func TestHandlerAssignValidation(t *testing.T) {
	sys := &mockSystem{err: fmt.Errorf("%w: assigned_to must be non-empty", leads.ErrValidation)}

	body := `{"assigned_to":"","assignee_type":"internal-ops","priority":"low","version":1}`
	w := serve(sys, http.MethodPost, "/leads/"+uuid.NewString()+"/assign", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Assign status = %d, expected 400", w.Code)
	}
}

func TestHandlerTransitionBackward(t *testing.T) {
	sys := &mockSystem{err: fmt.Errorf("%w: qualified to contacted", leads.ErrInvalidTransition)}

	body := `{"status":"contacted","version":5}`
	w := serve(sys, http.MethodPost, "/leads/"+uuid.NewString()+"/status", body)
	if w.Code != http.StatusConflict {
		t.Errorf("Transition status = %d, expected 409", w.Code)
	}
}

func TestHandlerSweep(t *testing.T) {
	sys := &mockSystem{sweep: &leads.SweepResult{Scanned: 4, Admitted: 3, Existing: 1}}

	w := serve(sys, http.MethodPost, "/leads/sweep", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Sweep status = %d, expected 200", w.Code)
	}

	var result leads.SweepResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Admitted != 3 {
		t.Errorf("result.Admitted = %d, expected 3", result.Admitted)
	}
}

func TestHandlerRoutable(t *testing.T) {
	id := uuid.New()
	sys := &mockSystem{routable: &leads.RoutableResult{LeadID: id, Routable: true}}

	w := serve(sys, http.MethodGet, "/leads/"+id.String()+"/routable", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Routable status = %d, expected 200", w.Code)
	}

	var result leads.RoutableResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Routable {
		t.Error("result.Routable = false, expected true")
	}
}

func TestHandlerPreview(t *testing.T) {
	sys := &mockSystem{decision: &classifier.Decision{Qualifies: true, Reason: "meets admission thresholds"}}

	w := serve(sys, http.MethodGet, "/leads/preview/"+uuid.NewString(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("Preview status = %d, expected 200", w.Code)
	}

	var d classifier.Decision
	if err := json.NewDecoder(w.Body).Decode(&d); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !d.Qualifies {
		t.Error("decision.Qualifies = false, expected true")
	}
}
