package nictag

import (
	"reflect"
	"testing"

	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/diag"
)

func TestTagName(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"admin_nic", "admin", true},
		{"a_nic", "a", true},
		{"admin_nic_nic", "admin_nic", true},
		{"_nic", "", false},
		{"nic", "", false},
		{"", "", false},
		{"ic", "", false},
		{"admin_nic0", "", false},
		{"admin_nicx", "", false},
		{"admin_NIC", "", false},
		{"admin_nic ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := TagName(tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TagName(%q) = %q, %v, want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveTags(t *testing.T) {
	store := config.NewStore(map[string]string{
		"admin_nic":     "00:11:22:AA:BB:CC",
		"external_nic":  "0:1:2:3:4:5",
		"storage_nic":   "not-a-mac",
		"_nic":          "00:00:00:00:00:01",
		"admin_nic_ip":  "10.0.0.1",
		"my_nic_thing":  "00:00:00:00:00:02",
		"etherstub":     "stub0",
		"hostname":      "headnode",
		"internal_nic":  "00:11:22:33:44:55:66",
		"underlay_nic":  "aa:bb:cc:dd:ee:ff",
		"underlay2_nic": "AA:BB:CC:DD:EE:FF",
	})

	c := &diag.Collector{}
	got := ResolveTags(store, WithReporter(c))

	want := TagMap{
		"admin":     "00:11:22:aa:bb:cc",
		"external":  "00:01:02:03:04:05",
		"underlay":  "aa:bb:cc:dd:ee:ff",
		"underlay2": "aa:bb:cc:dd:ee:ff",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveTags() = %v, want %v", got, want)
	}

	diags := c.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	// keys are visited in sorted order
	if diags[0].Key != "internal_nic" || diags[1].Key != "storage_nic" {
		t.Errorf("unexpected diagnostic order: %v", diags)
	}
	if diags[1].Kind != diag.MalformedMAC || diags[1].Raw != "not-a-mac" || diags[1].Line != 0 {
		t.Errorf("unexpected diagnostic: %+v", diags[1])
	}
}

func TestResolveTags_Empty(t *testing.T) {
	got := ResolveTags(config.NewStore(nil), WithReporter(diag.Discard))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil map, got %#v", got)
	}
}

func TestResolveTags_ValuesAreCanonical(t *testing.T) {
	store := config.NewStore(map[string]string{
		"a_nic": "A:B:C:D:E:F",
		"b_nic": "0a:0B:0c:0D:0e:0F",
	})

	for name, mac := range ResolveTags(store, WithReporter(diag.Discard)) {
		if mac != "0a:0b:0c:0d:0e:0f" {
			t.Errorf("tag %s = %q, want canonical form", name, mac)
		}
	}
}

func TestTagMap_Helpers(t *testing.T) {
	tags := TagMap{
		"admin":    "00:11:22:aa:bb:cc",
		"external": "00:11:22:aa:bb:cd",
		"mgmt":     "00:11:22:aa:bb:cc",
	}

	if got := tags.Names(); !reflect.DeepEqual(got, []string{"admin", "external", "mgmt"}) {
		t.Errorf("Names() = %v", got)
	}
	if !tags.Has("admin") || tags.Has("storage") {
		t.Error("Has() returned unexpected result")
	}
	if got := tags.NamesFor("00:11:22:AA:BB:CC"); !reflect.DeepEqual(got, []string{"admin", "mgmt"}) {
		t.Errorf("NamesFor() = %v", got)
	}
	if got := tags.NamesFor("bogus"); len(got) != 0 {
		t.Errorf("NamesFor(bogus) = %v", got)
	}
}

func TestTagMap_Suggest(t *testing.T) {
	tags := TagMap{"admin": "", "external": "", "storage": ""}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"admn", "admin", true},
		{"externa", "external", true},
		{"storag3", "storage", true},
		{"completely-unrelated", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tags.Suggest(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Suggest(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := (TagMap{}).Suggest("admin"); ok {
		t.Error("empty map should not suggest anything")
	}
}
