package ir

import "testing"

func testDoc() *Document {
	d := NewDocument()
	d.Root().Keys = []*Key{
		{Name: "mode", Type: ScalarType, Scalar: "fast"},
		{Name: "limits", Type: ObjectType, Children: []*Key{
			{Name: "max", Type: ScalarType, Scalar: "10"},
			{Name: "ratio", Type: ScalarType, Scalar: "0.5"},
		}},
		{Name: "hosts", Type: ArrayType, Children: []*Key{
			{Name: "0", Type: ScalarType, Scalar: "a"},
			{Name: "1", Type: ScalarType, Scalar: "b"},
		}},
		{Name: "empty", Type: NullType},
	}
	s := d.AddSection("server")
	s.Keys = []*Key{
		{Name: "port", Type: ScalarType, Scalar: "8080"},
		{Name: "tls", Type: ScalarType, Scalar: "true"},
	}
	return d
}

func TestValueSentinels(t *testing.T) {
	d := testDoc()
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "mode", want: "fast", ok: true},
		{key: "limits", want: ObjectSentinel, ok: true},
		{key: "hosts", want: ArraySentinel, ok: true},
		{key: "empty", want: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := d.GetString("", tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GetString(%q): got (%q, %v) want (%q, %v)",
				tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTypedAccess(t *testing.T) {
	d := testDoc()
	if got := d.GetInt("server", "port"); got != 8080 {
		t.Errorf("GetInt(server, port): got %d want 8080", got)
	}
	if got := d.GetInt("server", "nope"); got != -1 {
		t.Errorf("GetInt miss: got %d want -1", got)
	}
	if got := d.GetInt("nosuch", "port"); got != -1 {
		t.Errorf("GetInt missing section: got %d want -1", got)
	}
	if !d.GetBool("server", "tls") {
		t.Errorf("GetBool(server, tls): got false want true")
	}
	if d.GetBool("server", "port") {
		t.Errorf("GetBool(server, port): got true want false")
	}
	if d.GetBool("server", "nope") {
		t.Errorf("GetBool miss: got true want false")
	}
	limits := d.GetNode("", "limits")
	if limits == nil {
		t.Fatalf("GetNode(limits): nil")
	}
	if got := limits.GetInt("max"); got != 10 {
		t.Errorf("limits.GetInt(max): got %d want 10", got)
	}
	if got := limits.GetFloat("ratio"); got != 0.5 {
		t.Errorf("limits.GetFloat(ratio): got %v want 0.5", got)
	}
}

func TestLookup(t *testing.T) {
	d := testDoc()
	tests := []struct {
		section, path string
		want          string
		miss          bool
	}{
		{section: "", path: "limits.max", want: "10"},
		{section: "", path: "hosts.1", want: "b"},
		{section: "server", path: "port", want: "8080"},
		{section: "", path: "limits.nope", miss: true},
		{section: "", path: "mode.deeper", miss: true},
		{section: "", path: "", miss: true},
	}
	for _, tt := range tests {
		k := d.Lookup(tt.section, tt.path)
		if tt.miss {
			if k != nil {
				t.Errorf("Lookup(%q, %q): got %v want nil", tt.section, tt.path, k)
			}
			continue
		}
		if k == nil {
			t.Errorf("Lookup(%q, %q): got nil", tt.section, tt.path)
			continue
		}
		if v, _ := k.Value(); v != tt.want {
			t.Errorf("Lookup(%q, %q): got %q want %q", tt.section, tt.path, v, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	d := testDoc()
	d.Clear()
	if _, ok := d.GetString("", "mode"); ok {
		t.Errorf("GetString after Clear: got hit")
	}
	if got := d.GetInt("server", "port"); got != -1 {
		t.Errorf("GetInt after Clear: got %d want -1", got)
	}
	if d.Root() != nil {
		t.Errorf("Root after Clear: got section")
	}
	// idempotent
	d.Clear()
	if len(d.Sections) != 0 {
		t.Errorf("second Clear: %d sections", len(d.Sections))
	}
}

func TestDuplicateSectionsKeepFirst(t *testing.T) {
	d := NewDocument()
	s1 := d.AddSection("dup")
	s1.Keys = append(s1.Keys, &Key{Name: "x", Type: ScalarType, Scalar: "1"})
	s2 := d.AddSection("dup")
	s2.Keys = append(s2.Keys, &Key{Name: "x", Type: ScalarType, Scalar: "2"})

	if len(d.Sections) != 3 {
		t.Fatalf("sections: got %d want 3", len(d.Sections))
	}
	if got := d.GetInt("dup", "x"); got != 1 {
		t.Errorf("GetInt(dup, x): got %d want 1", got)
	}
}

func TestVisit(t *testing.T) {
	d := testDoc()
	var names []string
	err := d.GetNode("", "limits").Visit(func(k *Key) error {
		names = append(names, k.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	want := []string{"limits", "max", "ratio"}
	if len(names) != len(want) {
		t.Fatalf("Visit order: got %v want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Visit order: got %v want %v", names, want)
		}
	}
}
