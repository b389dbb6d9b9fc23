package font

import (
	"regexp"
	"strings"

	"github.com/tsawler/palimpsest/model"
)

// subsetPrefix matches the six-uppercase-letter subset tag PDF producers
// prepend to embedded font names, e.g. "BAAAAA+" in "BAAAAA+ArialMT".
var subsetPrefix = regexp.MustCompile(`^[A-Z]{6}\+`)

// boldPattern matches style markers that indicate a bold weight anywhere
// in the full, unstripped font name.
var boldPattern = regexp.MustCompile(`(?i)bold|heavy|black|demibold|semibold`)

// familyAliases maps lowercased base font names to canonical family names.
// Keys are matched against the name segment before the first "-" or ","
// after the subset prefix has been stripped.
var familyAliases = map[string]string{
	"arial":             "Arial",
	"arialmt":           "Arial",
	"arialnarrow":       "Arial",
	"helvetica":         "Helvetica",
	"helveticaneue":     "Helvetica",
	"times":             "Times New Roman",
	"timesnewroman":     "Times New Roman",
	"timesnewromanps":   "Times New Roman",
	"timesnewromanpsmt": "Times New Roman",
	"georgia":           "Georgia",
	"garamond":          "Garamond",
	"cambria":           "Cambria",
	"palatino":          "Palatino",
	"bookantiqua":       "Book Antiqua",
	"courier":           "Courier New",
	"couriernew":        "Courier New",
	"couriernewps":      "Courier New",
	"couriernewpsmt":    "Courier New",
	"consolas":          "Consolas",
	"menlo":             "Menlo",
	"monaco":            "Monaco",
	"calibri":           "Calibri",
	"verdana":           "Verdana",
	"tahoma":            "Tahoma",
	"trebuchetms":       "Trebuchet MS",
	"segoeui":           "Segoe UI",
	"roboto":            "Roboto",
	"opensans":          "Open Sans",
	"lato":              "Lato",
}

// Resolve derives a canonical font family and weight from a raw embedded
// font name. The subset prefix is stripped and the base segment before the
// first "-" or "," is matched case-insensitively against the alias table;
// unknown families pass through as their base segment. The weight is bold
// iff the full, unstripped name contains a bold style marker.
func Resolve(rawName string) (family string, weight model.FontWeight) {
	weight = model.WeightNormal
	if boldPattern.MatchString(rawName) {
		weight = model.WeightBold
	}

	base := subsetPrefix.ReplaceAllString(rawName, "")
	if idx := strings.IndexAny(base, "-,"); idx >= 0 {
		base = base[:idx]
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return "Helvetica", weight
	}

	if canonical, ok := familyAliases[strings.ToLower(base)]; ok {
		return canonical, weight
	}
	return base, weight
}
