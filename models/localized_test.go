package models

import (
	"encoding/json"
	"testing"
)

func TestLocalizedTextUnmarshalObject(t *testing.T) {
	var lt LocalizedText
	if err := json.Unmarshal([]byte(`{"en":"Chair","ar":"كرسي"}`), &lt); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if lt.En != "Chair" || lt.Ar != "كرسي" {
		t.Fatalf("unexpected value: %+v", lt)
	}
}

func TestLocalizedTextUnmarshalLegacyString(t *testing.T) {
	var lt LocalizedText
	if err := json.Unmarshal([]byte(`"Chair"`), &lt); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if lt.En != "Chair" {
		t.Fatalf("expected legacy string in En, got %+v", lt)
	}
	if lt.Ar != "" {
		t.Fatalf("expected empty Ar for legacy string, got %q", lt.Ar)
	}
}

func TestLocalizedTextScanLegacyString(t *testing.T) {
	var lt LocalizedText
	if err := lt.Scan([]byte(`"Old Name"`)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if lt.En != "Old Name" || lt.Ar != "" {
		t.Fatalf("unexpected value: %+v", lt)
	}
}

func TestLocalizedTextIn(t *testing.T) {
	lt := LocalizedText{En: "Chair", Ar: "كرسي"}
	if got := lt.In(LocaleAR); got != "كرسي" {
		t.Fatalf("expected Arabic, got %q", got)
	}
	if got := lt.In(LocaleEN); got != "Chair" {
		t.Fatalf("expected English, got %q", got)
	}

	// Arabic falls back to English when missing
	partial := LocalizedText{En: "Lamp"}
	if got := partial.In(LocaleAR); got != "Lamp" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestIsSupportedLocale(t *testing.T) {
	if !IsSupportedLocale("en") || !IsSupportedLocale("ar") {
		t.Fatal("expected en and ar to be supported")
	}
	if IsSupportedLocale("fr") {
		t.Fatal("expected fr to be unsupported")
	}
}

func TestPromoteDefaultImage(t *testing.T) {
	images := []string{"a.png", "b.png", "c.png"}

	reordered, ok := PromoteDefaultImage(images, "c.png")
	if !ok {
		t.Fatal("expected url to be found")
	}
	if reordered[0] != "c.png" || reordered[1] != "a.png" || reordered[2] != "b.png" {
		t.Fatalf("unexpected order: %v", reordered)
	}

	// Unknown url leaves the list untouched
	same, ok := PromoteDefaultImage(images, "x.png")
	if ok {
		t.Fatal("expected unknown url to report false")
	}
	if len(same) != 3 || same[0] != "a.png" {
		t.Fatalf("unexpected list: %v", same)
	}
}
