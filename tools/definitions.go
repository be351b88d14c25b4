package tools

// AllTools contains all tool specifications for the NPS MCP server.
// The list is fixed and order-stable; discovery returns it verbatim.
// Tool descriptions follow a structured format for optimal LLM tool
// selection: USE WHEN / NOT FOR / PARAMETERS / RETURNS.
var AllTools = []ToolSpec{
	{
		Name:     "find_parks",
		Method:   "FindParks",
		Title:    "Find Parks",
		Category: "search",
		Description: `Search U.S. national parks by state, free text, or activity.

USE WHEN: User asks "what parks are in California", "find parks with hiking", "search for parks about volcanoes".

NOT FOR: Looking up one specific park by its code (use get_park_details instead).

PARAMETERS:
- stateCode: Comma-separated two-letter codes, e.g. "CA" or "CA,NV" (optional)
- q: Free-text search (optional)
- activities: Comma-separated activity filters (optional)
- limit: Max results (default 10, max 50)
- start: Pagination offset (default 0)

RETURNS: total/limit/start counters and a list of park summaries (code, name, description, states, coordinates, activities, entrance fees).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_park_details",
		Method:   "GetParkDetails",
		Title:    "Get Park Details",
		Category: "read",
		Description: `Get full details for one park by its park code.

USE WHEN: User asks about a specific park: "tell me about Yosemite", "what are the entrance fees for yose", "how do I get to grca".

NOT FOR: Searching parks by state or topic (use find_parks instead).

PARAMETERS:
- parkCode: Park code, e.g. "yose" (required)

RETURNS: Rich park record: directions, weather, operating hours, physical address, contacts with phone extensions, entrance fees and passes, topics, images. Returns a "Park not found" error payload when the code matches nothing.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_alerts",
		Method:   "GetAlerts",
		Title:    "Get Alerts",
		Category: "read",
		Description: `Get current NPS alerts (closures, hazards, information notices), optionally filtered by park.

USE WHEN: User asks "are there any alerts for Yosemite", "what's closed right now", "any danger warnings".

PARAMETERS:
- parkCode: Comma-separated park codes to filter by (optional)
- q: Free-text search (optional)
- limit: Max results (default 10, max 50)
- start: Pagination offset (default 0)

RETURNS: total/limit/start counters, a flat alert list, and the same alerts grouped by park code. Each alert carries a human-readable category label and last-updated date.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
