package engine

import "github.com/mkravets/PromoDesk/internal/domain"

// Trend is one entry of the fixed promotion-trend catalog. Popularity
// is a 0-100 weight used by the default selector; Hint bounds the
// discount a synthesized promotion may carry.
type Trend struct {
	Name       string
	Popularity int
	PeakSeason string
	Hint       domain.DiscountRange
	Blurb      string
}

var trendCatalog = map[domain.ListingType][]Trend{
	domain.ListingTypeStay: {
		{
			Name:       "Workation Escapes",
			Popularity: 86,
			PeakSeason: "September to November",
			Hint:       domain.DiscountRange{Min: 10, Max: 30},
			Blurb:      "Remote workers are booking week-long stays with desks and fast wifi.",
		},
		{
			Name:       "Last-Minute Weekenders",
			Popularity: 78,
			PeakSeason: "Friday to Sunday, year round",
			Hint:       domain.DiscountRange{Min: 15, Max: 35},
			Blurb:      "Spontaneous two-night city breaks booked within 72 hours of arrival.",
		},
		{
			Name:       "Long-Stay Nomads",
			Popularity: 71,
			PeakSeason: "January to March",
			Hint:       domain.DiscountRange{Min: 10, Max: 25},
			Blurb:      "Month-plus stays from travellers chasing mild winters.",
		},
	},
	domain.ListingTypeExperience: {
		{
			Name:       "Local Food Trails",
			Popularity: 84,
			PeakSeason: "May to September",
			Hint:       domain.DiscountRange{Min: 10, Max: 30},
			Blurb:      "Small-group market and street-food tours led by locals.",
		},
		{
			Name:       "Sunset Micro-Adventures",
			Popularity: 77,
			PeakSeason: "June to August",
			Hint:       domain.DiscountRange{Min: 10, Max: 25},
			Blurb:      "Short evening kayak, hike and photography outings.",
		},
	},
	domain.ListingTypeEvent: {
		{
			Name:       "Festival Season Bundles",
			Popularity: 82,
			PeakSeason: "June to August",
			Hint:       domain.DiscountRange{Min: 15, Max: 35},
			Blurb:      "Multi-day passes paired with nearby accommodation.",
		},
		{
			Name:       "Midweek Live Shows",
			Popularity: 70,
			PeakSeason: "October to April",
			Hint:       domain.DiscountRange{Min: 10, Max: 25},
			Blurb:      "Tuesday to Thursday shows priced to fill quiet rooms.",
		},
	},
	domain.ListingTypeProduct: {
		{
			Name:       "Travel-Light Gear",
			Popularity: 75,
			PeakSeason: "April to June",
			Hint:       domain.DiscountRange{Min: 10, Max: 30},
			Blurb:      "Compact luggage and accessories for carry-on-only trips.",
		},
		{
			Name:       "Destination Souvenir Boxes",
			Popularity: 64,
			PeakSeason: "November to December",
			Hint:       domain.DiscountRange{Min: 10, Max: 20},
			Blurb:      "Curated local-maker boxes shipped after the trip.",
		},
	},
}

var genericTrends = []Trend{
	{
		Name:       "Seasonal Getaway Deals",
		Popularity: 72,
		PeakSeason: "varies by region",
		Hint:       domain.DiscountRange{Min: 10, Max: 30},
		Blurb:      "Broad seasonal discounts for travellers browsing without a fixed plan.",
	},
}

// TrendsFor returns the catalog for a service type, falling back to a
// generic catalog for unknown types so synthesis degrades instead of
// failing.
func TrendsFor(t domain.ListingType) []Trend {
	if trends, ok := trendCatalog[t]; ok {
		return trends
	}
	return genericTrends
}
