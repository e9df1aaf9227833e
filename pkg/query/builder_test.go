package query_test

import (
	"reflect"
	"testing"

	"github.com/losslocator/locator/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "loss_events", "e").
		Project("id", "ID").
		Project("event_type", "EventType").
		Project("severity", "Severity").
		Project("created_at", "CreatedAt")
}

func ptr[T any](v T) *T { return &v }

func TestProjectionMapTable(t *testing.T) {
	p := testProjection()
	if got, want := p.Table(), "public.loss_events e"; got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	want := "e.id, e.event_type, e.severity, e.created_at"
	if got := p.Columns(); got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "EventType", "e.event_type"},
		{"mapped timestamp", "CreatedAt", "e.created_at"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestProjectionMapJoin(t *testing.T) {
	p := query.NewProjectionMap("public", "routing_queue", "q").
		Project("id", "ID").
		Join("public", "loss_events", "e", "LEFT JOIN", "q.event_id = e.id").
		Project("event_type", "EventType")

	wantFrom := "public.routing_queue q LEFT JOIN public.loss_events e ON q.event_id = e.id"
	if got := p.From(); got != wantFrom {
		t.Errorf("From() = %q, want %q", got, wantFrom)
	}

	if got := p.Column("EventType"); got != "e.event_type" {
		t.Errorf("joined Column = %q, want e.event_type", got)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty string", "", nil},
		{
			"single ascending",
			"severity",
			[]query.SortField{{Field: "severity"}},
		},
		{
			"single descending",
			"-createdAt",
			[]query.SortField{{Field: "createdAt", Descending: true}},
		},
		{
			"mixed with whitespace",
			"severity, -createdAt",
			[]query.SortField{
				{Field: "severity"},
				{Field: "createdAt", Descending: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildSingle(t *testing.T) {
	b := query.NewBuilder(testProjection())
	sql, args := b.BuildSingle("ID", "abc")

	want := "SELECT e.id, e.event_type, e.severity, e.created_at FROM public.loss_events e WHERE e.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func TestBuildCountWithConditions(t *testing.T) {
	b := query.NewBuilder(testProjection()).
		WhereEquals("EventType", ptr("hail")).
		WhereGTE("Severity", ptr(75.0))

	sql, args := b.BuildCount()
	want := "SELECT COUNT(*) FROM public.loss_events e WHERE e.event_type = $1 AND e.severity >= $2"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
}

func TestWhereGTESkipsNil(t *testing.T) {
	var floor *float64
	b := query.NewBuilder(testProjection()).WhereGTE("Severity", floor)

	sql, args := b.BuildCount()
	want := "SELECT COUNT(*) FROM public.loss_events e"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestWhereNotNull(t *testing.T) {
	b := query.NewBuilder(testProjection()).WhereNotNull("Severity", true)

	sql, _ := b.BuildCount()
	want := "SELECT COUNT(*) FROM public.loss_events e WHERE e.severity IS NOT NULL"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}

	skipped, _ := query.NewBuilder(testProjection()).WhereNotNull("Severity", false).BuildCount()
	if skipped != "SELECT COUNT(*) FROM public.loss_events e" {
		t.Errorf("WhereNotNull(false) should be a no-op, got %q", skipped)
	}
}

func TestBuildPage(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		WhereEquals("EventType", ptr("wind"))

	sql, args := b.BuildPage(2, 25)
	want := "SELECT e.id, e.event_type, e.severity, e.created_at FROM public.loss_events e" +
		" WHERE e.event_type = $1 ORDER BY e.created_at DESC LIMIT 25 OFFSET 25"
	if sql != want {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args length = %d, want 1", len(args))
	}
}

func TestWhereSearch(t *testing.T) {
	b := query.NewBuilder(testProjection()).
		WhereSearch(ptr("78"), "EventType", "ID")

	sql, args := b.BuildCount()
	want := "SELECT COUNT(*) FROM public.loss_events e WHERE (e.event_type ILIKE $1 OR e.id ILIKE $2)"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%78%" {
		t.Errorf("args = %v, want two %%78%% patterns", args)
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	b := query.NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		OrderByFields([]query.SortField{{Field: "Severity"}})

	sql, _ := b.Build()
	want := "SELECT e.id, e.event_type, e.severity, e.created_at FROM public.loss_events e ORDER BY e.severity ASC"
	if sql != want {
		t.Errorf("Build() = %q, want %q", sql, want)
	}
}
