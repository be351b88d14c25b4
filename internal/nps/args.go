package nps

// FindParksArgs contains parameters for the park search tool.
type FindParksArgs struct {
	StateCode  string `json:"stateCode,omitempty" jsonschema_description:"Comma-separated two-letter state/territory codes (e.g. \"CA\" or \"CA,NV\")"`
	Q          string `json:"q,omitempty" jsonschema_description:"Free-text search over park names and descriptions"`
	Limit      int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 10, max 50)"`
	Start      int    `json:"start,omitempty" jsonschema_description:"Zero-based result offset for pagination"`
	Activities string `json:"activities,omitempty" jsonschema_description:"Comma-separated activity filters (e.g. \"hiking,camping\")"`
}

// FindParksResult is the park search payload. The counters are coerced from
// the upstream's string-typed echoes into integers.
type FindParksResult struct {
	Total int           `json:"total"`
	Limit int           `json:"limit"`
	Start int           `json:"start"`
	Parks []ParkSummary `json:"parks"`
}

// GetParkDetailsArgs contains parameters for the park detail tool.
type GetParkDetailsArgs struct {
	ParkCode string `json:"parkCode" jsonschema:"required" jsonschema_description:"Park code, e.g. \"yose\" for Yosemite"`
}

// GetAlertsArgs contains parameters for the alert lookup tool.
type GetAlertsArgs struct {
	ParkCode string `json:"parkCode,omitempty" jsonschema_description:"Filter alerts to one or more comma-separated park codes"`
	Limit    int    `json:"limit,omitempty" jsonschema_description:"Maximum results to return (default 10, max 50)"`
	Start    int    `json:"start,omitempty" jsonschema_description:"Zero-based result offset for pagination"`
	Q        string `json:"q,omitempty" jsonschema_description:"Free-text search over alert titles and descriptions"`
}

// GetAlertsResult is the alert lookup payload. AlertsByPark is a convenience
// projection grouping the same alerts by park code.
type GetAlertsResult struct {
	Total        int                       `json:"total"`
	Limit        int                       `json:"limit"`
	Start        int                       `json:"start"`
	Alerts       []AlertSummary            `json:"alerts"`
	AlertsByPark map[string][]AlertSummary `json:"alertsByPark"`
}

// ParkSummary is the compact park shape returned by the search tool.
type ParkSummary struct {
	ParkCode     string       `json:"parkCode"`
	Name         string       `json:"name"` // upstream fullName
	Description  string       `json:"description"`
	Designation  string       `json:"designation,omitempty"`
	States       []string     `json:"states"`
	URL          string       `json:"url,omitempty"`
	Latitude     string       `json:"latitude,omitempty"`
	Longitude    string       `json:"longitude,omitempty"`
	Activities   []string     `json:"activities,omitempty"`
	EntranceFees []FeeSummary `json:"entranceFees,omitempty"`
}

// FeeSummary is an entrance fee in summary form: raw cost, no currency
// prefix.
type FeeSummary struct {
	Cost        string `json:"cost"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ParkDetail is the rich park shape returned by the detail tool.
type ParkDetail struct {
	ParkCode       string        `json:"parkCode"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Designation    string        `json:"designation,omitempty"`
	States         []string      `json:"states"`
	URL            string        `json:"url,omitempty"`
	Latitude       string        `json:"latitude,omitempty"`
	Longitude      string        `json:"longitude,omitempty"`
	DirectionsInfo string        `json:"directionsInfo,omitempty"`
	DirectionsURL  string        `json:"directionsUrl,omitempty"`
	WeatherInfo    string        `json:"weatherInfo,omitempty"`
	Activities     []string      `json:"activities,omitempty"`
	Topics         []string      `json:"topics,omitempty"`
	EntranceFees   []FeeDetail   `json:"entranceFees,omitempty"`
	EntrancePasses []FeeDetail   `json:"entrancePasses,omitempty"`
	OperatingHours []HoursDetail `json:"operatingHours,omitempty"`
	Address        *AddressView  `json:"address,omitempty"`
	Contacts       ContactsView  `json:"contacts"`
	Images         []ImageView   `json:"images,omitempty"`
}

// FeeDetail is an entrance fee or pass in detail form: cost carries a "$"
// prefix.
type FeeDetail struct {
	Cost        string `json:"cost"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// HoursDetail is one operating-hours block.
type HoursDetail struct {
	Name          string            `json:"name,omitempty"`
	Description   string            `json:"description,omitempty"`
	StandardHours map[string]string `json:"standardHours,omitempty"`
}

// AddressView is the selected physical address of a park.
type AddressView struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	Line3      string `json:"line3,omitempty"`
	City       string `json:"city,omitempty"`
	StateCode  string `json:"stateCode,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// ContactsView nests phone numbers and email addresses.
type ContactsView struct {
	PhoneNumbers   []PhoneView `json:"phoneNumbers,omitempty"`
	EmailAddresses []string    `json:"emailAddresses,omitempty"`
}

// PhoneView is one phone entry with its extension preserved.
type PhoneView struct {
	Number    string `json:"number"`
	Type      string `json:"type,omitempty"`
	Extension string `json:"extension,omitempty"`
}

// ImageView is one park image.
type ImageView struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Caption string `json:"caption,omitempty"`
	Credit  string `json:"credit,omitempty"`
}

// AlertSummary is the normalized alert shape.
type AlertSummary struct {
	Title       string `json:"title"`
	ParkCode    string `json:"parkCode"`
	Type        string `json:"type"` // category mapped through alertCategoryLabels
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	LastUpdated string `json:"lastUpdated"`
}
