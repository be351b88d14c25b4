package nps

import (
	"strings"
	"time"
)

// alertCategoryLabels relabels upstream alert categories into the
// human-readable form the tools expose. Unrecognized categories pass
// through unchanged.
var alertCategoryLabels = map[string]string{
	"Information":  "Information (non-emergency)",
	"Caution":      "Caution (potential hazard)",
	"Danger":       "Danger (significant hazard)",
	"Park Closure": "Park Closure (area inaccessible)",
}

// formatParkSummary maps an upstream park record onto the compact search
// shape.
func formatParkSummary(p Park) ParkSummary {
	return ParkSummary{
		ParkCode:     p.ParkCode,
		Name:         p.FullName,
		Description:  p.Description,
		Designation:  p.Designation,
		States:       splitStates(p.States),
		URL:          p.URL,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Activities:   itemNames(p.Activities),
		EntranceFees: summaryFees(p.EntranceFees),
	}
}

// formatParkDetail maps an upstream park record onto the rich detail shape:
// full address, phone extensions, passes, topics, and dollar-prefixed fees.
func formatParkDetail(p Park) ParkDetail {
	return ParkDetail{
		ParkCode:       p.ParkCode,
		Name:           p.FullName,
		Description:    p.Description,
		Designation:    p.Designation,
		States:         splitStates(p.States),
		URL:            p.URL,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		DirectionsInfo: p.DirectionsInfo,
		DirectionsURL:  p.DirectionsURL,
		WeatherInfo:    p.WeatherInfo,
		Activities:     itemNames(p.Activities),
		Topics:         itemNames(p.Topics),
		EntranceFees:   detailFees(p.EntranceFees),
		EntrancePasses: detailFees(p.EntrancePasses),
		OperatingHours: operatingHours(p.OperatingHours),
		Address:        physicalAddress(p.Addresses),
		Contacts:       contactsView(p.Contacts),
		Images:         imageViews(p.Images),
	}
}

// formatAlert maps an upstream alert record onto the normalized shape.
func formatAlert(a Alert) AlertSummary {
	return AlertSummary{
		Title:       a.Title,
		ParkCode:    a.ParkCode,
		Type:        alertCategory(a.Category),
		Description: a.Description,
		URL:         a.URL,
		LastUpdated: humanDate(a.LastIndexedDate),
	}
}

// alertCategory relabels a category through the fixed table; unknown
// categories pass through unchanged.
func alertCategory(category string) string {
	if label, ok := alertCategoryLabels[category]; ok {
		return label
	}
	return category
}

// splitStates derives the state list from the upstream comma-joined field,
// trimming each token and preserving order.
func splitStates(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	states := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			states = append(states, s)
		}
	}
	return states
}

// humanDate reformats an ISO timestamp into a readable date. Empty or
// unparseable input yields "Unknown".
func humanDate(iso string) string {
	if iso == "" {
		return "Unknown"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05.0", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return "Unknown"
}

func itemNames(items []NamedItem) []string {
	if len(items) == 0 {
		return nil
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

// summaryFees keeps fee costs raw; the detail view is the one that carries
// the currency prefix.
func summaryFees(fees []Fee) []FeeSummary {
	if len(fees) == 0 {
		return nil
	}
	out := make([]FeeSummary, 0, len(fees))
	for _, f := range fees {
		out = append(out, FeeSummary{
			Cost:        f.Cost,
			Title:       f.Title,
			Description: f.Description,
		})
	}
	return out
}

func detailFees(fees []Fee) []FeeDetail {
	if len(fees) == 0 {
		return nil
	}
	out := make([]FeeDetail, 0, len(fees))
	for _, f := range fees {
		out = append(out, FeeDetail{
			Cost:        dollarCost(f.Cost),
			Title:       f.Title,
			Description: f.Description,
		})
	}
	return out
}

// dollarCost prefixes a numeric cost with "$". Already-prefixed or empty
// costs are left alone.
func dollarCost(cost string) string {
	if cost == "" || strings.HasPrefix(cost, "$") {
		return cost
	}
	return "$" + cost
}

func operatingHours(hours []Hours) []HoursDetail {
	if len(hours) == 0 {
		return nil
	}
	out := make([]HoursDetail, 0, len(hours))
	for _, h := range hours {
		out = append(out, HoursDetail{
			Name:          h.Name,
			Description:   h.Description,
			StandardHours: h.StandardHours,
		})
	}
	return out
}

// physicalAddress selects the address tagged "Physical", falling back to the
// first address when none is tagged. Returns nil when the park has no
// addresses at all.
func physicalAddress(addresses []Address) *AddressView {
	if len(addresses) == 0 {
		return nil
	}
	selected := addresses[0]
	for _, a := range addresses {
		if a.Type == "Physical" {
			selected = a
			break
		}
	}
	return &AddressView{
		Line1:      selected.Line1,
		Line2:      selected.Line2,
		Line3:      selected.Line3,
		City:       selected.City,
		StateCode:  selected.StateCode,
		PostalCode: selected.PostalCode,
	}
}

func contactsView(c Contacts) ContactsView {
	view := ContactsView{}
	for _, p := range c.PhoneNumbers {
		view.PhoneNumbers = append(view.PhoneNumbers, PhoneView{
			Number:    p.PhoneNumber,
			Type:      p.Type,
			Extension: p.Extension,
		})
	}
	for _, e := range c.EmailAddresses {
		if e.EmailAddress != "" {
			view.EmailAddresses = append(view.EmailAddresses, e.EmailAddress)
		}
	}
	return view
}

func imageViews(images []Image) []ImageView {
	if len(images) == 0 {
		return nil
	}
	out := make([]ImageView, 0, len(images))
	for _, img := range images {
		out = append(out, ImageView{
			Title:   img.Title,
			URL:     img.URL,
			AltText: img.AltText,
			Caption: img.Caption,
			Credit:  img.Credit,
		})
	}
	return out
}
