package sets

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveNamedSet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/x", "/y")
	r.Add("b", "/z")

	folders, err := r.Resolve("a")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !reflect.DeepEqual(folders, []string{"/x", "/y"}) {
		t.Fatalf("Resolve(a) = %v", folders)
	}
}

func TestResolveAllDeduplicatesInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/x")
	r.Add("b", "/x", "/y")

	want := []string{"/x", "/y"}
	for _, selector := range []string{"", "all", "ALL", "-a", "--all", "--All"} {
		folders, err := r.Resolve(selector)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", selector, err)
		}
		if !reflect.DeepEqual(folders, want) {
			t.Fatalf("Resolve(%q) = %v, want %v", selector, folders, want)
		}
	}
}

func TestResolveKeepsDuplicatesWithinOneSet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/x", "/x")

	folders, err := r.Resolve("a")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !reflect.DeepEqual(folders, []string{"/x", "/x"}) {
		t.Fatalf("Resolve(a) = %v, want duplicates preserved", folders)
	}
}

func TestResolveUnknownSet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/x")

	_, err := r.Resolve("nope")
	if !errors.Is(err, ErrUnknownSet) {
		t.Fatalf("Resolve(nope) error = %v, want ErrUnknownSet", err)
	}
}

func TestNamesPreserveRegistrationOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("c", "/1")
	r.Add("a", "/2")
	r.Add("b", "/3")

	if got := r.Names(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("Names() = %v", got)
	}
}

func TestAddReplacesWithoutReordering(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add("a", "/1")
	r.Add("b", "/2")
	r.Add("a", "/3")

	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Names() = %v", got)
	}
	folders, _ := r.Folders("a")
	if !reflect.DeepEqual(folders, []string{"/3"}) {
		t.Fatalf("Folders(a) = %v", folders)
	}
}

func TestNormalizeRel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"/phone":       "phone",
		"/phone/specs": "phone/specs",
		"watch":        "watch",
		"\\os":         "os",
	}
	for in, want := range cases {
		if got := NormalizeRel(in); got != want {
			t.Fatalf("NormalizeRel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultRegistryUnionHasNoDuplicates(t *testing.T) {
	t.Parallel()

	folders, err := Default().Resolve("all")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	seen := make(map[string]struct{})
	for _, folder := range folders {
		if _, dup := seen[folder]; dup {
			t.Fatalf("duplicate folder %q in union", folder)
		}
		seen[folder] = struct{}{}
	}
}
