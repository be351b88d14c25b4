// Package nps provides a client for the U.S. National Park Service API
// (developer.nps.gov) together with the validation and normalization layer
// that turns its responses into compact, LLM-oriented payloads.
package nps

// PageEnvelope is the pagination wrapper the NPS API puts around every
// collection response. The counters arrive as strings.
type PageEnvelope struct {
	Total string `json:"total"`
	Limit string `json:"limit"`
	Start string `json:"start"`
}

// ParksResponse is the upstream shape of GET /parks.
type ParksResponse struct {
	PageEnvelope
	Data []Park `json:"data"`
}

// AlertsResponse is the upstream shape of GET /alerts.
type AlertsResponse struct {
	PageEnvelope
	Data []Alert `json:"data"`
}

// Park represents one park record as returned by the NPS API.
type Park struct {
	ID             string        `json:"id"`
	ParkCode       string        `json:"parkCode"`
	FullName       string        `json:"fullName"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Designation    string        `json:"designation"`
	States         string        `json:"states"` // comma-joined, e.g. "CA,NV"
	URL            string        `json:"url"`
	Latitude       string        `json:"latitude"`
	Longitude      string        `json:"longitude"`
	DirectionsInfo string        `json:"directionsInfo"`
	DirectionsURL  string        `json:"directionsUrl"`
	WeatherInfo    string        `json:"weatherInfo"`
	Activities     []NamedItem   `json:"activities"`
	Topics         []NamedItem   `json:"topics"`
	EntranceFees   []Fee         `json:"entranceFees"`
	EntrancePasses []Fee         `json:"entrancePasses"`
	OperatingHours []Hours       `json:"operatingHours"`
	Addresses      []Address     `json:"addresses"`
	Contacts       Contacts      `json:"contacts"`
	Images         []Image       `json:"images"`
}

// NamedItem is an id/name pair (activities, topics).
type NamedItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Fee is an entrance fee or pass.
type Fee struct {
	Cost        string `json:"cost"`
	Description string `json:"description"`
	Title       string `json:"title"`
}

// Hours describes one operating-hours block.
type Hours struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	StandardHours map[string]string `json:"standardHours"`
}

// Address is a postal address. Type is "Physical" or "Mailing".
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	Line3      string `json:"line3"`
	City       string `json:"city"`
	StateCode  string `json:"stateCode"`
	PostalCode string `json:"postalCode"`
	Type       string `json:"type"`
}

// Contacts holds a park's phone numbers and email addresses.
type Contacts struct {
	PhoneNumbers   []PhoneNumber  `json:"phoneNumbers"`
	EmailAddresses []EmailAddress `json:"emailAddresses"`
}

// PhoneNumber is one contact phone entry.
type PhoneNumber struct {
	PhoneNumber string `json:"phoneNumber"`
	Description string `json:"description"`
	Extension   string `json:"extension"`
	Type        string `json:"type"` // "Voice", "Fax", "TTY"
}

// EmailAddress is one contact email entry.
type EmailAddress struct {
	EmailAddress string `json:"emailAddress"`
	Description  string `json:"description"`
}

// Image is one park image.
type Image struct {
	Credit  string `json:"credit"`
	Title   string `json:"title"`
	AltText string `json:"altText"`
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

// Alert represents one alert record as returned by the NPS API.
type Alert struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ParkCode        string `json:"parkCode"`
	Category        string `json:"category"` // "Information", "Caution", "Danger", "Park Closure"
	Description     string `json:"description"`
	URL             string `json:"url"`
	LastIndexedDate string `json:"lastIndexedDate"` // ISO timestamp, may be empty
}

// VisitorCentersResponse is the upstream shape of GET /visitorcenters.
// Consumed by the auxiliary gateway operation; not wired to any tool.
type VisitorCentersResponse struct {
	PageEnvelope
	Data []VisitorCenter `json:"data"`
}

// VisitorCenter is one visitor center record.
type VisitorCenter struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ParkCode       string  `json:"parkCode"`
	Description    string  `json:"description"`
	URL            string  `json:"url"`
	DirectionsInfo string  `json:"directionsInfo"`
	OperatingHours []Hours `json:"operatingHours"`
}

// CampgroundsResponse is the upstream shape of GET /campgrounds.
type CampgroundsResponse struct {
	PageEnvelope
	Data []Campground `json:"data"`
}

// Campground is one campground record.
type Campground struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ParkCode    string `json:"parkCode"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Reservable  string `json:"numberOfSitesReservable"`
	FirstCome   string `json:"numberOfSitesFirstComeFirstServe"`
}

// EventsResponse is the upstream shape of GET /events.
type EventsResponse struct {
	PageEnvelope
	Data []Event `json:"data"`
}

// Event is one event record.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ParkCode    string `json:"parkfullname"`
	SiteCode    string `json:"sitecode"`
	Description string `json:"description"`
	DateStart   string `json:"datestart"`
	DateEnd     string `json:"dateend"`
	Location    string `json:"location"`
}
