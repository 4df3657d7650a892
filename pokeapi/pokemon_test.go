package pokeapi

import (
	"testing"

	"github.com/tidwall/gjson"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "sprites": {
    "front_default": "https://img/sprite/25.png",
    "other": {"official-artwork": {"front_default": "https://img/artwork/25.png"}}
  },
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 55, "stat": {"name": "attack"}},
    {"base_stat": 40, "stat": {"name": "defense"}},
    {"base_stat": 50, "stat": {"name": "special-attack"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "types": [{"slot": 1, "type": {"name": "electric"}}]
}`

func TestParsePokemon(t *testing.T) {
	p, err := parsePokemon([]byte(pikachuJSON))
	if err != nil {
		t.Fatalf("parsePokemon: %v", err)
	}

	if p.Name != "pikachu" || p.ID != 25 {
		t.Errorf("Identity = %q/%d, want pikachu/25", p.Name, p.ID)
	}
	want := Stats{HP: 35, Attack: 55, Defense: 40, Speed: 90}
	if p.Stats != want {
		t.Errorf("Stats = %+v, want %+v", p.Stats, want)
	}
	if len(p.Types) != 1 || p.Types[0] != "electric" {
		t.Errorf("Types = %v, want [electric]", p.Types)
	}
	if p.SpriteURL != "https://img/artwork/25.png" {
		t.Errorf("SpriteURL = %q, want artwork", p.SpriteURL)
	}
}

func TestParsePokemonRejectsBadRecords(t *testing.T) {
	for _, body := range []string{`not json`, `{"id": 1}`} {
		if _, err := parsePokemon([]byte(body)); err == nil {
			t.Errorf("Expected error for %q", body)
		}
	}
}

func TestImageURLFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"artwork preferred", pikachuJSON, "https://img/artwork/25.png"},
		{"default sprite", `{"sprites": {"front_default": "https://img/s.png", "other": {"official-artwork": {"front_default": null}}}}`, "https://img/s.png"},
		{"placeholder", `{"sprites": {"front_default": null}}`, PlaceholderImage},
		{"no sprites", `{}`, PlaceholderImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImageURL(gjson.Parse(tt.body)); got != tt.want {
				t.Errorf("ImageURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseListPage(t *testing.T) {
	body := `{"count": 1302, "next": "n", "previous": null,
	  "results": [{"name": "bulbasaur", "url": "u1"}, {"name": "ivysaur", "url": "u2"}]}`

	page, err := parseListPage([]byte(body))
	if err != nil {
		t.Fatalf("parseListPage: %v", err)
	}
	if page.Count != 1302 || len(page.Results) != 2 {
		t.Fatalf("Page = %+v", page)
	}
	if page.Results[1].Name != "ivysaur" {
		t.Errorf("Second entry = %q, want ivysaur", page.Results[1].Name)
	}
}
