package draft

import "testing"

func TestFromSchemaURI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		uri      string
		expected Draft
		ok       bool
	}{
		{"http://json-schema.org/draft-04/schema#", Draft4, true},
		{"http://json-schema.org/draft-04/schema", Draft4, true},
		{"http://json-schema.org/draft-06/schema#", Draft6, true},
		{"http://json-schema.org/draft-07/schema#", Draft7, true},
		{"https://json-schema.org/draft/2019-09/schema", Draft201909, true},
		{"https://json-schema.org/draft/2020-12/schema", Draft202012, true},
		{"https://example.com/meta/schema", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		d, ok := FromSchemaURI(tt.uri)
		if ok != tt.ok || (ok && d != tt.expected) {
			t.Fatalf("FromSchemaURI(%q) = %v, %v; expected %v, %v", tt.uri, d, ok, tt.expected, tt.ok)
		}
	}
}

func TestAllowsDecimalLimits(t *testing.T) {
	t.Parallel()
	if Draft4.AllowsDecimalLimits() {
		t.Fatalf("draft 4 must require true integers")
	}
	for _, d := range []Draft{Draft6, Draft7, Draft201909, Draft202012} {
		if !d.AllowsDecimalLimits() {
			t.Fatalf("%v must allow whole-valued decimal limits", d)
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if Draft7.String() != "draft7" || Draft202012.String() != "draft2020-12" {
		t.Fatalf("unexpected draft names: %v, %v", Draft7, Draft202012)
	}
}
