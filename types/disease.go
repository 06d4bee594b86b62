package types

import "strings"

// Defaults used when a request omits or mangles its query parameters.
// The dashboard should always get *some* answer back.
const (
	DefaultDisease = "dengue"
	DefaultCity    = "kanpur"
	DefaultGeo     = "IN-UP"
)

// DiseaseProfile describes one configured disease: the search keywords that
// drive its interest series and a baseline factor that scales how much
// background chatter the disease normally generates.
type DiseaseProfile struct {
	Slug           string   `json:"slug"`
	DisplayName    string   `json:"displayName"`
	Keywords       []string `json:"keywords"`
	BaselineFactor float64  `json:"baselineFactor"`
}

var diseaseProfiles = []DiseaseProfile{
	{
		Slug:           "flu",
		DisplayName:    "Influenza",
		Keywords:       []string{"flu symptoms", "fever and cough", "influenza treatment", "Tamiflu"},
		BaselineFactor: 1.2,
	},
	{
		Slug:           "dengue",
		DisplayName:    "Dengue",
		Keywords:       []string{"dengue symptoms", "mosquito bite fever", "platelet count low", "dengue treatment"},
		BaselineFactor: 1.5,
	},
	{
		Slug:           "covid",
		DisplayName:    "COVID-19",
		Keywords:       []string{"covid symptoms", "loss of smell", "covid test near me", "Paxlovid"},
		BaselineFactor: 1.3,
	},
}

// Profiles returns the configured disease profiles in display order.
func Profiles() []DiseaseProfile {
	out := make([]DiseaseProfile, len(diseaseProfiles))
	copy(out, diseaseProfiles)
	return out
}

// ProfileFor looks up a disease by slug. Unknown slugs fall back to the
// default disease instead of erroring; the second return value reports
// whether the slug was actually configured.
func ProfileFor(slug string) (DiseaseProfile, bool) {
	s := strings.ToLower(strings.TrimSpace(slug))
	for _, p := range diseaseProfiles {
		if p.Slug == s {
			return p, true
		}
	}
	def, _ := lookup(DefaultDisease)
	return def, false
}

func lookup(slug string) (DiseaseProfile, bool) {
	for _, p := range diseaseProfiles {
		if p.Slug == slug {
			return p, true
		}
	}
	return DiseaseProfile{}, false
}
