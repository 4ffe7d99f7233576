package schema

import (
	"sync"
	"testing"
)

// fixtures pairs schemas with instances across every keyword, for
// property checks over both validation modes.
var fixtures = []struct {
	schema    string
	instances []any
}{
	{`{"type": "string"}`, []any{"foo", 5.0, nil, []any{}}},
	{`{"pattern": "^f"}`, []any{"foo", "b", 5.0}},
	{`{"minItems": 2}`, []any{[]any{}, []any{1, 2}, "xx"}},
	{`{"not": {"type": "string"}}`, []any{"foo", 5.0}},
	{`{"not": {"pattern": "^f"}}`, []any{"foo", "b"}},
	{`{"minItems": 1, "type": "array"}`, []any{[]any{}, []any{1}, "foo"}},
	{`true`, []any{"foo", nil}},
	{`false`, []any{"foo", nil}},
	{`{}`, []any{"foo", nil, []any{}}},
}

func TestNode_IsValidAgreesWithValidate(t *testing.T) {
	t.Parallel()
	for _, fixture := range fixtures {
		node := mustCompile(t, fixture.schema)
		for _, instance := range fixture.instances {
			valid := node.IsValid(instance)
			errs := collect(node, instance)
			if valid != (len(errs) == 0) {
				t.Fatalf("schema %s, instance %v: IsValid = %v but Validate yielded %d errors",
					fixture.schema, instance, valid, len(errs))
			}
		}
	}
}

func TestNode_ValidateYieldsEveryFailure(t *testing.T) {
	t.Parallel()
	// An empty array violates both minItems and the string type.
	node := mustCompile(t, `{"minItems": 1, "type": "string"}`)
	errs := collect(node, []any{})
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %d: %v", len(errs), errs)
	}
	// Keywords run in sorted order.
	if errs[0].Kind != KindMinItems || errs[1].Kind != KindType {
		t.Fatalf("unexpected error order: %v, %v", errs[0].Kind, errs[1].Kind)
	}
}

func TestNode_ValidateIsLazyAndRestartable(t *testing.T) {
	t.Parallel()
	node := mustCompile(t, `{"minItems": 1, "type": "string"}`)

	seq := node.Validate([]any{})
	count := 0
	for range seq {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("partial consumption yielded %d errors", count)
	}

	// The same sequence value restarts from the beginning.
	total := 0
	for range seq {
		total++
	}
	if total != 2 {
		t.Fatalf("restarted sequence yielded %d errors, expected 2", total)
	}
}

func TestNode_Location(t *testing.T) {
	t.Parallel()
	node := mustCompile(t, `{"type": "string"}`)
	if !node.Location().IsRoot() {
		t.Fatalf("a document root node must carry the root pointer")
	}
}

func TestNode_ConcurrentValidation(t *testing.T) {
	t.Parallel()
	node := mustCompile(t, `{"not": {"pattern": "^[\\w\\-\\.\\+]+$"}}`)
	instances := []any{"CC-BY-4.0", "CC-BY-!", 5.0, []any{}}
	expected := make([]bool, len(instances))
	for i, instance := range instances {
		expected[i] = node.IsValid(instance)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				i := j % len(instances)
				if node.IsValid(instances[i]) != expected[i] {
					t.Errorf("concurrent validation diverged for %v", instances[i])
					return
				}
				for range node.Validate(instances[i]) {
					break
				}
			}
		}()
	}
	wg.Wait()
}
