package domain

// GlobalAverageFootprint is the per-person annual footprint, in tonnes CO2e,
// used for countries without their own figure.
const GlobalAverageFootprint = 4.8

// CountryProfile is the personalized-action content for a country.
type CountryProfile struct {
	Country          string   `json:"country"`
	Description      string   `json:"description"`
	HighestImpact    string   `json:"highest_impact"`
	Actions          []string `json:"actions"`
	AverageFootprint float64  `json:"average_footprint"` // t CO2e per person per year
	Default          bool     `json:"default"`
}

// ProfileFor returns the profile for country. Unrecognized countries get the
// default profile with the global average footprint; Country is set to the
// requested name either way.
func ProfileFor(country string) CountryProfile {
	var p CountryProfile
	switch country {
	case "USA":
		p = CountryProfile{
			Description:   "As one of the highest per-capita emitters, individual actions in the USA can have significant impact.",
			HighestImpact: "Transportation - Reducing car usage and flying less",
			Actions: []string{
				"Switch to renewable energy through your utility provider",
				"Consider electric or hybrid vehicles for your next car purchase",
				"Reduce beef consumption - the US has one of the highest beef consumption rates globally",
				"Support climate policy advocacy at local and federal levels",
				"Install home solar panels with available tax incentives",
			},
			AverageFootprint: 15.5,
		}
	case "China":
		p = CountryProfile{
			Description:   "China faces unique urban pollution challenges while leading in renewable energy development.",
			HighestImpact: "Supporting clean energy transition and reducing coal dependence",
			Actions: []string{
				"Use public transportation in urban centers to reduce notorious air pollution",
				"Support companies making verifiable sustainability commitments",
				"Consider air purification at home to reduce health impacts of pollution",
				"Advocate for continued investment in the country's ambitious renewable energy targets",
				"Participate in community tree-planting initiatives in urban areas",
			},
			AverageFootprint: 7.4,
		}
	case "India":
		p = CountryProfile{
			Description:   "India balances development needs with climate goals while facing severe climate impacts.",
			HighestImpact: "Water conservation and sustainable agriculture",
			Actions: []string{
				"Practice water conservation amid increasing water stress",
				"Support farmers practicing sustainable agriculture techniques",
				"Consider solar installations for reliable energy access",
				"Reduce plastic waste which often ends up in waterways",
				"Use natural cooling techniques to reduce air conditioning needs",
			},
			AverageFootprint: 1.9,
		}
	default:
		p = CountryProfile{
			Description:   "Every region faces unique climate challenges that require tailored solutions.",
			HighestImpact: "Reducing carbon footprint through daily choices",
			Actions: []string{
				"Reduce single-use plastic and support local eco-friendly businesses",
				"Use public transport or carpool at least 3x a week",
				"Support climate NGOs and local initiatives",
				"Offset your carbon footprint using apps like Wren (https://www.wren.co)",
				"Advocate for stronger climate policies in your local government",
			},
			AverageFootprint: GlobalAverageFootprint,
			Default:          true,
		}
	}
	p.Country = country
	return p
}

// EmissionsInsight returns the narrative shown next to a country's
// emissions chart.
func EmissionsInsight(country string) string {
	switch country {
	case "USA":
		return "As one of the largest historical emitters, the USA has seen a slower growth rate recently due to a shift towards renewable energy and natural gas. However, per capita emissions remain among the highest globally."
	case "China":
		return "China's rapid industrialization has led to a steep increase in emissions, making it the world's largest emitter. The nation is also the leading investor in renewable energy technologies."
	case "India":
		return "India's emissions continue to grow with its developing economy and increasing energy demands. The country faces the challenge of balancing development needs with climate commitments."
	default:
		return "This country has its own unique emissions profile based on its energy mix, industrial activity, and climate policies."
	}
}

// Milestone is a reference point on the warming scale.
type Milestone struct {
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"` // °C relative to pre-industrial
	Period      string  `json:"period"`
	Status      string  `json:"status"`
}

// TemperatureMilestones returns the warming reference points in display
// order. Each call returns a fresh slice.
func TemperatureMilestones() []Milestone {
	return []Milestone{
		{Name: "Pre-industrial levels", Temperature: 0, Period: "1750s", Status: "Baseline"},
		{Name: "First recorded data", Temperature: -0.2, Period: "1880", Status: "Historical"},
		{Name: "Mid-century baseline", Temperature: 0.0, Period: "1950", Status: "Reference"},
		{Name: "Current warming", Temperature: 1.0, Period: "2020", Status: "Current"},
		{Name: "Paris Agreement target", Temperature: 1.5, Period: "Target", Status: "Goal"},
		{Name: "High-risk threshold", Temperature: 2.0, Period: "Must avoid", Status: "Danger"},
	}
}
