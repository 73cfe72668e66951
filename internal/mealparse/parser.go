// Package mealparse turns the raw dish strings served by the NEIS meal feed
// into structured menu entries with decoded allergen names.
package mealparse

import (
	"regexp"
	"strings"

	"github.com/gaon-hs/gaon-portal-api/internal/models"
)

var (
	lineBreakRe   = regexp.MustCompile(`<br\s*/?>`)
	allergyCodeRe = regexp.MustCompile(`\((\d+(?:\.\d+)*)\)`)
)

// ParseDishes splits a raw DDISH_NM value on its line-break markers and
// returns one MenuItem per dish. A dish may carry a parenthesized
// period-delimited list of allergen codes, e.g. "쌀밥(5.6)"; codes outside
// the known table are dropped silently. Malformed input never fails, it just
// contributes nothing.
func ParseDishes(raw string) []models.MenuItem {
	items := []models.MenuItem{}
	for _, segment := range lineBreakRe.Split(raw, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		items = append(items, parseDish(segment))
	}
	return items
}

func parseDish(segment string) models.MenuItem {
	tags := []string{}

	match := allergyCodeRe.FindStringSubmatch(segment)
	if match != nil {
		for _, code := range strings.Split(match[1], ".") {
			if name, ok := models.AllergyNames[code]; ok {
				tags = append(tags, name)
			}
		}
		segment = allergyCodeRe.ReplaceAllString(segment, "")
	}

	name := strings.TrimSpace(strings.ReplaceAll(segment, "*", ""))
	return models.MenuItem{Name: name, AllergyTags: tags}
}
