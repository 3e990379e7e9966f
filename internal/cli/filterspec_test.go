package cli

import (
	"testing"

	"github.com/Nick-prog/Microsoft-API-Email/internal/filter"
	"github.com/Nick-prog/Microsoft-API-Email/internal/testutil"
)

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		label     string
		values    map[string]string
		fields    []string
		hasFields bool
		wantErr   bool
	}{
		{
			name:  "label only",
			raw:   "Limit Results",
			label: "Limit Results",
		},
		{
			name:   "single value",
			raw:    "Limit Results:number=50",
			label:  "Limit Results",
			values: map[string]string{"number": "50"},
		},
		{
			name:   "multiple values",
			raw:    "Order Results:field=subject,direction=asc",
			label:  "Order Results",
			values: map[string]string{"field": "subject", "direction": "asc"},
		},
		{
			name:      "fields list",
			raw:       "Select Fields:fields=subject+from",
			label:     "Select Fields",
			fields:    []string{"subject", "from"},
			hasFields: true,
		},
		{
			name:   "value containing equals",
			raw:    "Search Content:text=a=b",
			label:  "Search Content",
			values: map[string]string{"text": "a=b"},
		},
		{
			name:  "trailing colon tolerated",
			raw:   "Limit Results:",
			label: "Limit Results",
		},
		{
			name:    "missing label",
			raw:     ":number=50",
			wantErr: true,
		},
		{
			name:    "entry without equals",
			raw:     "Limit Results:number",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseFilterSpec(tt.raw)

			if tt.wantErr {
				testutil.AssertError(t, err, "parse "+tt.raw)
				return
			}
			testutil.AssertNoError(t, err, "parse "+tt.raw)

			testutil.AssertStringEqual(t, spec.Label, tt.label, "label")
			testutil.AssertEqual(t, spec.HasFields, tt.hasFields, "has fields")
			testutil.AssertSliceEqual(t, spec.Fields, tt.fields, "fields")

			for key, expected := range tt.values {
				if got := spec.Values[key]; got != expected {
					t.Errorf("value %s: got %q, expected %q", key, got, expected)
				}
			}
			if len(spec.Values) != len(tt.values) {
				t.Errorf("value count: got %d, expected %d", len(spec.Values), len(tt.values))
			}
		})
	}
}

func TestFilterSpec_BagDefaults(t *testing.T) {
	cfg := testutil.NewFilterBuilder(filter.KindNumber, "Limit Results").
		WithTemplate("?$top={number}").
		WithParamKey("top").
		WithDefault("25").
		Build()

	// No explicit values: the bag carries the config default.
	spec, _ := ParseFilterSpec("Limit Results")
	bag := spec.Bag(cfg)
	if v, _ := bag.Get("number"); v != "25" {
		t.Errorf("seeded default: got %q", v)
	}

	// Explicit values overlay the default.
	spec, _ = ParseFilterSpec("Limit Results:number=50")
	bag = spec.Bag(cfg)
	if v, _ := bag.Get("number"); v != "50" {
		t.Errorf("override: got %q", v)
	}
}

func TestFilterSpec_BagFieldsReplaceDefaults(t *testing.T) {
	cfg := testutil.NewFilterBuilder(filter.KindMultiSelect, "Select Fields").
		WithTemplate("?$select={fields}").
		WithParamKey("select").
		WithOptions("subject", "from", "receivedDateTime", "isRead").
		WithDefaultFields("subject", "from", "receivedDateTime", "isRead").
		Build()

	// Without a fields entry the default selection stands.
	spec, _ := ParseFilterSpec("Select Fields")
	testutil.AssertSliceEqual(t, spec.Bag(cfg).Fields(),
		[]string{"subject", "from", "receivedDateTime", "isRead"}, "default selection")

	// An explicit fields entry replaces it entirely, keeping spec order.
	spec, _ = ParseFilterSpec("Select Fields:fields=from+subject")
	testutil.AssertSliceEqual(t, spec.Bag(cfg).Fields(),
		[]string{"from", "subject"}, "explicit selection")
}
