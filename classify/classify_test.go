package classify

import "testing"

func TestCategorizeKeywordHits(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"there is a water leak under the sink and the drain is blocked", "plumbing"},
		{"wifi keeps dropping and the router blinks red", "wifi"},
		{"the socket near my bed gave me a shock", "electrical"},
		{"garbage is piling up and the corridor smells", "cleanliness"},
		{"someone stole my laptop, this floor is unsafe", "safety"},
	}
	for _, c := range cases {
		got, conf := Categorize(c.text)
		if got != c.want {
			t.Fatalf("Categorize(%q) = %q, want %q", c.text, got, c.want)
		}
		if conf <= 0 || conf > 1 {
			t.Fatalf("Categorize(%q) confidence = %v, want in (0,1]", c.text, conf)
		}
	}
}

func TestCategorizeFallsBackToGeneral(t *testing.T) {
	got, conf := Categorize("please repaint the notice board")
	if got != CategoryGeneral {
		t.Fatalf("category = %q, want %q", got, CategoryGeneral)
	}
	if conf != 0 {
		t.Fatalf("confidence = %v, want 0", conf)
	}
}

func TestCategorizeTieBreaksBySafetyFirst(t *testing.T) {
	// "gas", "fan" and "smell" each land one hit in different categories;
	// precedence order decides the tie.
	got, _ := Categorize("gas smell near the fan")
	if got != CategorySafety {
		t.Fatalf("category = %q, want %q", got, CategorySafety)
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	got, _ := Categorize("WIFI IS DOWN AGAIN")
	if got != CategoryWifi {
		t.Fatalf("category = %q, want %q", got, CategoryWifi)
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Plumbing", "plumbing"},
		{"  WiFi ", "wifi"},
		{"internet", "wifi"},
		{"electricity", "electrical"},
		{"Security", "safety"},
		{"housekeeping", "cleanliness"},
		{"carpentry", "carpentry"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.in); got != c.want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSentimentBand(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.9, "critical"},
		{0.76, "critical"},
		{0.75, "high"},
		{0.56, "high"},
		{0.55, "medium"},
		{0.36, "medium"},
		{0.35, "low"},
		{0, "low"},
	}
	for _, c := range cases {
		if got := SentimentBand(c.score); got != c.want {
			t.Fatalf("SentimentBand(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  water   leak \n in  room ", "water leak in room"},
		{"\t\n ", ""},
		{"already clean", "already clean"},
	}
	for _, c := range cases {
		if got := NormalizeText(c.in); got != c.want {
			t.Fatalf("NormalizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
