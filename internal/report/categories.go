package report

// Style carries the display metadata for a category. It is data, not
// logic: the lookup table below is fixed, and anything outside it gets
// the fallback so unrecognized labels still render.
type Style struct {
	Color string
	Icon  string
}

var categoryStyles = map[string]Style{
	"Food":   {Color: "#ff9f1c", Icon: "utensils"},
	"Rent":   {Color: "#2ec4b6", Icon: "home"},
	"Fun":    {Color: "#e71d36", Icon: "film"},
	"Income": {Color: "#06d6a0", Icon: "wallet"},
	"Other":  {Color: "#8d99ae", Icon: "tag"},
}

var fallbackStyle = Style{Color: "#6c757d", Icon: "circle"}

// StyleFor returns the display style for a category label, falling back
// to a default for labels outside the fixed set.
func StyleFor(category string) Style {
	if s, ok := categoryStyles[category]; ok {
		return s
	}
	return fallbackStyle
}
