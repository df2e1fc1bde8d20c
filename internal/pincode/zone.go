package pincode

import (
	"strings"

	"nexgen/internal/domain"
)

var neighbouringStates = map[string][]string{
	"andhra pradesh":    {"telangana", "chhattisgarh", "odisha", "tamil nadu", "karnataka"},
	"arunachal pradesh": {"assam", "nagaland"},
	"assam":             {"arunachal pradesh", "nagaland", "manipur", "meghalaya", "mizoram", "tripura", "west bengal"},
	"bihar":             {"uttar pradesh", "jharkhand", "west bengal"},
	"chhattisgarh":      {"madhya pradesh", "maharashtra", "telangana", "andhra pradesh", "odisha", "jharkhand", "uttar pradesh"},
	"goa":               {"maharashtra", "karnataka"},
	"gujarat":           {"rajasthan", "madhya pradesh", "maharashtra", "dadra and nagar haveli and daman and diu"},
	"haryana":           {"punjab", "himachal pradesh", "uttarakhand", "uttar pradesh", "rajasthan", "delhi"},
	"himachal pradesh":  {"jammu and kashmir", "ladakh", "punjab", "haryana", "uttarakhand"},
	"jharkhand":         {"bihar", "west bengal", "odisha", "chhattisgarh", "uttar pradesh"},
	"karnataka":         {"goa", "maharashtra", "telangana", "andhra pradesh", "tamil nadu", "kerala"},
	"kerala":            {"karnataka", "tamil nadu"},
	"madhya pradesh":    {"uttar pradesh", "chhattisgarh", "maharashtra", "gujarat", "rajasthan"},
	"maharashtra":       {"gujarat", "madhya pradesh", "chhattisgarh", "telangana", "karnataka", "goa"},
	"manipur":           {"nagaland", "mizoram", "assam"},
	"meghalaya":         {"assam"},
	"mizoram":           {"assam", "manipur", "tripura"},
	"nagaland":          {"assam", "arunachal pradesh", "manipur"},
	"odisha":            {"west bengal", "jharkhand", "chhattisgarh", "andhra pradesh"},
	"punjab":            {"jammu and kashmir", "himachal pradesh", "haryana", "rajasthan"},
	"rajasthan":         {"punjab", "haryana", "uttar pradesh", "madhya pradesh", "gujarat"},
	"sikkim":            {"west bengal"},
	"tamil nadu":        {"andhra pradesh", "karnataka", "kerala"},
	"telangana":         {"maharashtra", "chhattisgarh", "andhra pradesh", "karnataka"},
	"tripura":           {"assam", "mizoram"},
	"uttar pradesh": {
		"uttarakhand", "himachal pradesh", "haryana", "delhi", "rajasthan",
		"madhya pradesh", "chhattisgarh", "jharkhand", "bihar",
	},
	"uttarakhand":                 {"himachal pradesh", "uttar pradesh", "haryana"},
	"west bengal":                 {"bihar", "jharkhand", "odisha", "sikkim", "assam"},
	"andaman and nicobar islands": {},
	"chandigarh":                  {"punjab", "haryana"},
	"dadra and nagar haveli and daman and diu": {"gujarat", "maharashtra"},
	"delhi":             {"haryana", "uttar pradesh"},
	"jammu and kashmir": {"ladakh", "himachal pradesh", "punjab"},
	"ladakh":            {"jammu and kashmir", "himachal pradesh"},
	"lakshadweep":       {},
	"puducherry":        {"tamil nadu"},
}

var metroCities = map[string]bool{
	"mumbai":    true,
	"bengaluru": true,
	"chennai":   true,
	"delhi":     true,
	"hyderabad": true,
	"kolkata":   true,
	"ahmedabad": true,
	"pune":      true,
	"surat":     true,
}

// Destinations in these states are billed as zone E regardless of origin.
var specialZoneStates = map[string]bool{
	"jammu and kashmir": true,
	"ladakh":            true,
	"arunachal pradesh": true,
	"assam":             true,
	"manipur":           true,
	"meghalaya":         true,
	"mizoram":           true,
	"nagaland":          true,
	"sikkim":            true,
	"tripura":           true,
}

// ClassifyZone returns the shipping zone for a route. A missing origin or
// destination, or a missing city, falls back to zone D.
func ClassifyZone(origin, destination *domain.PincodeLocation) domain.Zone {
	if origin == nil || destination == nil || origin.City == "" || destination.City == "" {
		return domain.ZoneD
	}
	originCity, destCity := strings.ToLower(origin.City), strings.ToLower(destination.City)
	if originCity == destCity {
		return domain.ZoneA
	}

	if origin.State == "" || destination.State == "" {
		return domain.ZoneD
	}
	originState, destState := strings.ToLower(origin.State), strings.ToLower(destination.State)
	if originState == destState {
		return domain.ZoneB
	}
	for _, s := range neighbouringStates[originState] {
		if s == destState {
			return domain.ZoneB
		}
	}

	if metroCities[originCity] && metroCities[destCity] {
		return domain.ZoneC
	}
	if specialZoneStates[destState] {
		return domain.ZoneE
	}
	return domain.ZoneD
}
