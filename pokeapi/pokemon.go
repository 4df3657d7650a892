package pokeapi

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// PlaceholderImage is used when a record carries no sprite at all
const PlaceholderImage = "https://via.placeholder.com/150?text=Pokemon"

// Stats holds the base stats the game shows
type Stats struct {
	HP      int
	Attack  int
	Defense int
	Speed   int
}

// Pokemon is a creature summary resolved from a details lookup
type Pokemon struct {
	Name      string
	ID        int
	SpriteURL string // Resolved through the artwork fallback chain
	Stats     Stats
	Types     []string
}

// ListEntry is one row of a list page
type ListEntry struct {
	Name string
	URL  string
}

// ListPage is a page of the /pokemon listing
type ListPage struct {
	Count    int
	Next     string
	Previous string
	Results  []ListEntry
}

// parseListPage extracts a list page from a /pokemon?limit=&offset= response
func parseListPage(body []byte) (ListPage, error) {
	if !gjson.ValidBytes(body) {
		return ListPage{}, fmt.Errorf("invalid list json")
	}
	doc := gjson.ParseBytes(body)

	page := ListPage{
		Count:    int(doc.Get("count").Int()),
		Next:     doc.Get("next").String(),
		Previous: doc.Get("previous").String(),
	}
	doc.Get("results").ForEach(func(_, v gjson.Result) bool {
		if n := v.Get("name").String(); n != "" {
			page.Results = append(page.Results, ListEntry{Name: n, URL: v.Get("url").String()})
		}
		return true
	})
	return page, nil
}

// parsePokemon extracts the summary fields from a /pokemon/{name} response
func parsePokemon(body []byte) (Pokemon, error) {
	if !gjson.ValidBytes(body) {
		return Pokemon{}, fmt.Errorf("invalid pokemon json")
	}
	doc := gjson.ParseBytes(body)

	p := Pokemon{
		Name:      doc.Get("name").String(),
		ID:        int(doc.Get("id").Int()),
		SpriteURL: ImageURL(doc),
		Stats: Stats{
			HP:      baseStat(doc, "hp"),
			Attack:  baseStat(doc, "attack"),
			Defense: baseStat(doc, "defense"),
			Speed:   baseStat(doc, "speed"),
		},
	}
	doc.Get("types.#.type.name").ForEach(func(_, v gjson.Result) bool {
		p.Types = append(p.Types, v.String())
		return true
	})

	if p.Name == "" {
		return Pokemon{}, fmt.Errorf("pokemon record without name")
	}
	return p, nil
}

func baseStat(doc gjson.Result, stat string) int {
	return int(doc.Get(`stats.#(stat.name=="` + stat + `").base_stat`).Int())
}

// ImageURL resolves the sprite: official artwork, then default sprite, then placeholder
func ImageURL(doc gjson.Result) string {
	if u := doc.Get("sprites.other.official-artwork.front_default").String(); u != "" {
		return u
	}
	if u := doc.Get("sprites.front_default").String(); u != "" {
		return u
	}
	return PlaceholderImage
}
