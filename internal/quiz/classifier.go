package quiz

import "strings"

// eventCategory ties a set of keyword cues to a canned description of what
// happened. Matching policy is data: first category with a hit wins, in
// table order.
type eventCategory struct {
	name     string
	keywords []string
	answer   string
}

var eventCategories = []eventCategory{
	{
		name:     "treaty",
		keywords: []string{"treaty", "agreement", "pact", "accord", "armistice", "signed"},
		answer:   "A treaty or agreement was signed",
	},
	{
		name:     "battle",
		keywords: []string{"battle", "war", "invasion", "siege", "attack", "bombing", "conquered"},
		answer:   "A battle or military conflict took place",
	},
	{
		name:     "discovery",
		keywords: []string{"discover", "invent", "patent", "launch", "first successful"},
		answer:   "A discovery or invention was made",
	},
	{
		name:     "birth",
		keywords: []string{"born", "birth of"},
		answer:   "A notable person was born",
	},
	{
		name:     "death",
		keywords: []string{"died", "death of", "assassinat", "executed"},
		answer:   "A notable person died",
	},
	{
		name:     "founding",
		keywords: []string{"founded", "established", "independence", "proclaimed", "incorporated"},
		answer:   "Something was founded or established",
	},
}

func classify(text string) (eventCategory, bool) {
	lowered := strings.ToLower(text)
	for _, c := range eventCategories {
		for _, keyword := range c.keywords {
			if strings.Contains(lowered, keyword) {
				return c, true
			}
		}
	}
	return eventCategory{}, false
}

// era buckets are ordered; a year belongs to the first bucket whose upper
// bound it precedes.
type era struct {
	label  string
	before int
}

var eras = []era{
	{label: "Ancient", before: 476},
	{label: "Medieval", before: 1500},
	{label: "Early Modern", before: 1800},
	{label: "Modern", before: 1945},
}

const contemporaryEra = "Contemporary"

func eraFor(year int) string {
	for _, e := range eras {
		if year < e.before {
			return e.label
		}
	}
	return contemporaryEra
}

func eraLabels() []string {
	labels := make([]string, 0, len(eras)+1)
	for _, e := range eras {
		labels = append(labels, e.label)
	}
	return append(labels, contemporaryEra)
}

// stopWords are common words too weak to blank out in a fill-in question.
var stopWords = map[string]struct{}{
	"their":   {},
	"there":   {},
	"which":   {},
	"would":   {},
	"could":   {},
	"about":   {},
	"after":   {},
	"before":  {},
	"between": {},
	"during":  {},
	"under":   {},
	"first":   {},
	"other":   {},
	"against": {},
	"through": {},
}

// actionVerbs is the distractor vocabulary for fill-in-the-blank questions.
var actionVerbs = []string{
	"signed",
	"defeated",
	"captured",
	"founded",
	"declared",
	"launched",
	"invaded",
	"crowned",
	"elected",
	"discovered",
	"abolished",
	"established",
	"surrendered",
	"proclaimed",
}
