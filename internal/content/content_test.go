package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_LoadsEmbeddedSite(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}
	if site.Brand != "Afgan Cargo" {
		t.Fatalf("unexpected brand: %q", site.Brand)
	}

	var ctas []string
	for _, s := range site.Slides {
		ctas = append(ctas, s.CTA+" "+s.Path)
	}
	want := []string{"Learn More /services", "About Us /about", "Contact Us /contact"}
	if diff := cmp.Diff(want, ctas); diff != "" {
		t.Fatalf("slide CTAs mismatch (-want +got):\n%s", diff)
	}

	if len(site.About.Highlights) != 3 {
		t.Fatalf("expected 3 highlights, got %d", len(site.About.Highlights))
	}
	if !strings.Contains(site.About.Body, "<p>") {
		t.Fatalf("expected HTML about body, got %q", site.About.Body)
	}
	if _, ok := site.Page("/contact"); !ok {
		t.Fatal("expected contact page")
	}
}

func TestParse_Validation(t *testing.T) {
	cases := map[string]string{
		"no brand":  "slides: [{desc: x}]",
		"no slides": "brand: B",
		"no desc":   "brand: B\nslides: [{name: x}]",
		"bad path":  "brand: B\nslides: [{desc: x, path: about}]",
		"not yaml":  "brand: [",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCarousel_LoopsAndBumpsReplayKey(t *testing.T) {
	c := NewCarousel([]Slide{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	if c.Current().Name != "a" || c.ReplayKey() != 0 {
		t.Fatalf("unexpected initial state: %+v key=%d", c.Current(), c.ReplayKey())
	}

	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, c.Next().Name)
	}
	if diff := cmp.Diff([]string{"b", "c", "a", "b"}, seen); diff != "" {
		t.Fatalf("Next order mismatch (-want +got):\n%s", diff)
	}
	if c.ReplayKey() != 4 {
		t.Fatalf("expected replay key 4, got %d", c.ReplayKey())
	}

	c.GoTo(0)
	if got := c.Prev().Name; got != "c" {
		t.Fatalf("expected Prev to wrap to c, got %s", got)
	}
	if c.Index() != 2 {
		t.Fatalf("expected index 2, got %d", c.Index())
	}
}

func TestCarousel_Empty(t *testing.T) {
	c := NewCarousel(nil)
	if c.Next() != (Slide{}) || c.Current() != (Slide{}) {
		t.Fatal("expected zero slides from empty carousel")
	}
	if c.ReplayKey() != 0 {
		t.Fatal("empty carousel must not bump the replay key")
	}
}
