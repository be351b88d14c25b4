package nps

import (
	"context"
	"strings"

	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
)

// MCP tool wrapper methods.
// These wrap the gateway with Args/Result types for MCP integration:
// validate and clamp arguments, fetch, normalize. Errors returned here are
// converted into envelopes by the tools layer; they never cross the
// transport as protocol faults.

// FindParksMCP implements the find_parks tool.
func (c *Client) FindParksMCP(ctx context.Context, args FindParksArgs) (FindParksResult, error) {
	codes, err := NormalizeStateCodes(args.StateCode)
	if err != nil {
		// Invalid codes never reach the gateway.
		return FindParksResult{}, err
	}

	limit := ClampLimit(args.Limit)
	start := ClampStart(args.Start)

	resp, err := c.GetParks(ctx, ParkQuery{
		StateCode:  strings.Join(codes, ","),
		Q:          args.Q,
		Activities: args.Activities,
		Limit:      limit,
		Start:      start,
	})
	if err != nil {
		return FindParksResult{}, err
	}

	total, limitEcho, startEcho, err := parsePage("/parks", resp.PageEnvelope)
	if err != nil {
		return FindParksResult{}, err
	}

	parks := make([]ParkSummary, 0, len(resp.Data))
	for _, p := range resp.Data {
		parks = append(parks, formatParkSummary(p))
	}

	return FindParksResult{
		Total: total,
		Limit: limitEcho,
		Start: startEcho,
		Parks: parks,
	}, nil
}

// GetParkDetailsMCP implements the get_park_details tool. A park code that
// matches zero records yields a NotFoundError, which the tools layer turns
// into a "Park not found" envelope.
func (c *Client) GetParkDetailsMCP(ctx context.Context, args GetParkDetailsArgs) (ParkDetail, error) {
	code := strings.TrimSpace(args.ParkCode)
	if code == "" {
		return ParkDetail{}, apierrors.NewValidationError("parkCode", "", "park code is required")
	}

	resp, err := c.GetParks(ctx, ParkQuery{ParkCode: code, Limit: 1})
	if err != nil {
		return ParkDetail{}, err
	}

	if len(resp.Data) == 0 {
		return ParkDetail{}, apierrors.NewNotFoundError("park", code)
	}

	return formatParkDetail(resp.Data[0]), nil
}

// GetAlertsMCP implements the get_alerts tool.
func (c *Client) GetAlertsMCP(ctx context.Context, args GetAlertsArgs) (GetAlertsResult, error) {
	limit := ClampLimit(args.Limit)
	start := ClampStart(args.Start)

	resp, err := c.GetAlerts(ctx, AlertQuery{
		ParkCode: strings.TrimSpace(args.ParkCode),
		Q:        args.Q,
		Limit:    limit,
		Start:    start,
	})
	if err != nil {
		return GetAlertsResult{}, err
	}

	total, limitEcho, startEcho, err := parsePage("/alerts", resp.PageEnvelope)
	if err != nil {
		return GetAlertsResult{}, err
	}

	alerts := make([]AlertSummary, 0, len(resp.Data))
	byPark := make(map[string][]AlertSummary)
	for _, a := range resp.Data {
		alert := formatAlert(a)
		alerts = append(alerts, alert)
		byPark[alert.ParkCode] = append(byPark[alert.ParkCode], alert)
	}

	return GetAlertsResult{
		Total:        total,
		Limit:        limitEcho,
		Start:        startEcho,
		Alerts:       alerts,
		AlertsByPark: byPark,
	}, nil
}

// parsePage coerces the upstream's string-typed counters into ints.
func parsePage(endpoint string, page PageEnvelope) (total, limit, start int, err error) {
	if total, err = parseCount(endpoint, "total", page.Total); err != nil {
		return 0, 0, 0, err
	}
	if limit, err = parseCount(endpoint, "limit", page.Limit); err != nil {
		return 0, 0, 0, err
	}
	if start, err = parseCount(endpoint, "start", page.Start); err != nil {
		return 0, 0, 0, err
	}
	return total, limit, start, nil
}
