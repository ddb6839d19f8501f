package matching

import (
	"strings"
)

// Location score tiers, from remote/exact down to cross-continent.
const (
	locScoreRemote        = 100
	locScoreExact         = 100
	locScoreGlobal        = 90
	locScoreSameRegion    = 75
	locScoreSameContinent = 60
	locScoreDifferent     = 40
	locScoreNeutral       = 50 // either side missing or unparseable
)

// Region identifies a named labor-market region.
type Region string

// Named regions used by this domain. RegionOther covers every country
// absent from both membership tables.
const (
	RegionMENA       Region = "mena"
	RegionSubSaharan Region = "sub-saharan-africa"
	RegionOther      Region = "other"
)

// Continent is the coarser grouping used when regions differ.
type Continent string

// Continent buckets for the supported region tables.
const (
	ContinentAfrica  Continent = "africa"
	ContinentAsia    Continent = "asia"
	ContinentUnknown Continent = "unknown"
)

// RegionTable maps lowercased country and major-city names to their
// region and continent bucket. Built once at startup and read-only
// afterwards, so it is safe for unsynchronized concurrent reads.
type RegionTable struct {
	regions    map[string]Region
	continents map[string]Continent
}

// menaCountries and subSaharanCountries are the two disjoint membership
// tables behind DefaultRegionTable. Keys include the major hiring-hub
// cities of each market so free-text city locations resolve too.
var menaCountries = map[string][]string{
	"egypt":                {"cairo", "alexandria", "giza"},
	"morocco":              {"casablanca", "rabat", "marrakesh"},
	"tunisia":              {"tunis"},
	"algeria":              {"algiers"},
	"libya":                {"tripoli"},
	"jordan":               {"amman"},
	"lebanon":              {"beirut"},
	"saudi arabia":         {"riyadh", "jeddah"},
	"united arab emirates": {"dubai", "abu dhabi", "sharjah"},
	"uae":                  {},
	"qatar":                {"doha"},
	"kuwait":               {"kuwait city"},
	"bahrain":              {"manama"},
	"oman":                 {"muscat"},
	"iraq":                 {"baghdad"},
	"palestine":            {"ramallah", "gaza"},
	"yemen":                {"sanaa"},
}

var subSaharanCountries = map[string][]string{
	"nigeria":       {"lagos", "abuja", "port harcourt"},
	"ghana":         {"accra", "kumasi"},
	"kenya":         {"nairobi", "mombasa"},
	"south africa":  {"johannesburg", "cape town", "durban", "pretoria"},
	"ethiopia":      {"addis ababa"},
	"tanzania":      {"dar es salaam", "dodoma"},
	"uganda":        {"kampala"},
	"rwanda":        {"kigali"},
	"senegal":       {"dakar"},
	"ivory coast":   {"abidjan"},
	"cote d'ivoire": {},
	"cameroon":      {"douala", "yaounde"},
	"zambia":        {"lusaka"},
	"zimbabwe":      {"harare"},
	"botswana":      {"gaborone"},
	"namibia":       {"windhoek"},
	"mozambique":    {"maputo"},
	"angola":        {"luanda"},
	"somalia":       {"mogadishu"},
	"sudan":         {"khartoum"},
}

// gulfAsia lists the MENA members whose continent bucket is Asia rather
// than Africa; everything else in the MENA table buckets to Africa.
var gulfAsia = map[string]bool{
	"jordan": true, "lebanon": true, "saudi arabia": true,
	"united arab emirates": true, "uae": true, "qatar": true,
	"kuwait": true, "bahrain": true, "oman": true, "iraq": true,
	"palestine": true, "yemen": true,
}

// globalMarkers are job locations meaning "hire from anywhere". A
// literal "remote" location is handled as the remote case instead.
var globalMarkers = map[string]bool{
	"worldwide": true, "anywhere": true, "global": true,
	"international": true,
}

// DefaultRegionTable builds the static region membership table used in
// production. Alternate tables can be injected for testing.
func DefaultRegionTable() *RegionTable {
	t := &RegionTable{
		regions:    make(map[string]Region),
		continents: make(map[string]Continent),
	}

	add := func(name string, region Region, continent Continent) {
		t.regions[name] = region
		t.continents[name] = continent
	}

	for country, cities := range menaCountries {
		continent := ContinentAfrica
		if gulfAsia[country] {
			continent = ContinentAsia
		}
		add(country, RegionMENA, continent)
		for _, city := range cities {
			add(city, RegionMENA, continent)
		}
	}
	for country, cities := range subSaharanCountries {
		add(country, RegionSubSaharan, ContinentAfrica)
		for _, city := range cities {
			add(city, RegionSubSaharan, ContinentAfrica)
		}
	}

	return t
}

// Resolve finds the region and continent for a free-text location. The
// lookup tolerates "City, Country" forms by trying each comma-separated
// part. Unrecognized locations resolve to RegionOther.
func (t *RegionTable) Resolve(location string) (Region, Continent, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(location))
	if cleaned == "" {
		return RegionOther, ContinentUnknown, false
	}

	if region, ok := t.regions[cleaned]; ok {
		return region, t.continents[cleaned], true
	}

	for _, part := range strings.Split(cleaned, ",") {
		part = strings.TrimSpace(part)
		if region, ok := t.regions[part]; ok {
			return region, t.continents[part], true
		}
	}

	return RegionOther, ContinentUnknown, false
}

// scoreLocation scores geographic fit between a candidate location and
// a job. Remote jobs fit everyone; beyond that the tiers degrade from
// exact match through shared region and shared continent. Missing or
// unparseable locations are neutral, not penalized.
func (t *RegionTable) scoreLocation(candidateLoc, jobLoc string, jobRemote bool) int {
	candidate := strings.ToLower(strings.TrimSpace(candidateLoc))
	job := strings.ToLower(strings.TrimSpace(jobLoc))

	// A literal "remote" location means remote even when the flag is
	// unset, so inline listings score like feed-normalized ones.
	if jobRemote || job == "remote" {
		return locScoreRemote
	}

	if candidate == "" || job == "" {
		return locScoreNeutral
	}

	if candidate == job {
		return locScoreExact
	}

	if globalMarkers[job] {
		return locScoreGlobal
	}

	candRegion, candContinent, candOK := t.Resolve(candidate)
	jobRegion, jobContinent, jobOK := t.Resolve(job)
	if !candOK || !jobOK {
		return locScoreNeutral
	}

	if candRegion == jobRegion {
		return locScoreSameRegion
	}
	if candContinent == jobContinent && candContinent != ContinentUnknown {
		return locScoreSameContinent
	}

	return locScoreDifferent
}
