package calendar_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/P-Bhavana03/cal-agent/internal/schedule"
	"github.com/P-Bhavana03/cal-agent/internal/server"
	"github.com/P-Bhavana03/cal-agent/internal/tools/common"
)

const (
	defaultWorkStartHour   = 9
	defaultWorkEndHour     = 17
	defaultSlotDurationMin = 30
)

// planClock supplies "now" for availability searches. Tests swap in a
// schedule.FixedClock to pin the reference instant.
var planClock schedule.Clock = schedule.SystemClock{}

// RegisterSchedulingTools registers scheduling and availability tools with the MCP server
func RegisterSchedulingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Query free/busy tool
	queryFreeBusyTool := mcp.NewTool("calendar_query_freebusy",
		mcp.WithDescription("Check availability for one or more calendars/attendees in a time range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start time for the range (RFC3339 format, e.g., '2026-09-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End time for the range (RFC3339 format, e.g., '2026-09-30T23:59:59Z')"),
		),
		mcp.WithString("calendars",
			mcp.Required(),
			mcp.Description("Comma-separated list of calendar IDs or email addresses to check"),
		),
	)

	s.AddTool(queryFreeBusyTool, common.InstrumentedToolHandlerWithService(
		"calendar_query_freebusy", "calendar", "freebusy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleQueryFreeBusy(ctx, request, sc)
		}))

	// Find available slots tool
	findAvailableSlotsTool := mcp.NewTool("calendar_find_available_slots",
		mcp.WithDescription("Find open meeting slots within working hours over a range of days"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("startDate",
			mcp.Required(),
			mcp.Description("First day of the search range (YYYY-MM-DD)"),
		),
		mcp.WithString("endDate",
			mcp.Required(),
			mcp.Description("Last day of the search range, inclusive (YYYY-MM-DD)"),
		),
		mcp.WithString("timeZone",
			mcp.Required(),
			mcp.Description("IANA time zone for working hours and results (e.g., 'Europe/Berlin')"),
		),
		mcp.WithNumber("workStartHour",
			mcp.Description("Hour of day when working hours begin, 0-23 (default: 9)"),
		),
		mcp.WithNumber("workEndHour",
			mcp.Description("Hour of day when working hours end, exclusive bound, 0-23 (default: 17)"),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Description("Slot duration in minutes (default: 30)"),
		),
		mcp.WithString("calendars",
			mcp.Description("Comma-separated list of calendar IDs whose busy times should be respected (default: 'primary')"),
		),
	)

	s.AddTool(findAvailableSlotsTool, common.InstrumentedToolHandlerWithService(
		"calendar_find_available_slots", "calendar", "availability", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindAvailableSlots(ctx, request, sc)
		}))

	return nil
}

func handleQueryFreeBusy(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	timeMinStr, ok := args["timeMin"].(string)
	if !ok || timeMinStr == "" {
		return mcp.NewToolResultError("timeMin is required"), nil
	}
	timeMin, err := time.Parse(time.RFC3339, timeMinStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMin format: %v", err)), nil
	}

	timeMaxStr, ok := args["timeMax"].(string)
	if !ok || timeMaxStr == "" {
		return mcp.NewToolResultError("timeMax is required"), nil
	}
	timeMax, err := time.Parse(time.RFC3339, timeMaxStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid timeMax format: %v", err)), nil
	}

	calendarsStr, ok := args["calendars"].(string)
	if !ok || calendarsStr == "" {
		return mcp.NewToolResultError("calendars is required"), nil
	}
	calendars := splitAndTrim(calendarsStr)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	freeBusyInfos, err := client.QueryFreeBusy(timeMin, timeMax, calendars)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
	}

	result := fmt.Sprintf("Free/Busy information for %d calendar(s):\n\n", len(freeBusyInfos))
	for _, info := range freeBusyInfos {
		result += fmt.Sprintf("Calendar: %s\n", info.Calendar)

		if len(info.Errors) > 0 {
			result += fmt.Sprintf("  Errors: %s\n", strings.Join(info.Errors, ", "))
		}

		if len(info.Busy) == 0 {
			result += "  Status: FREE for entire range\n"
		} else {
			result += fmt.Sprintf("  Busy periods: %d\n", len(info.Busy))
			for i, busy := range info.Busy {
				result += fmt.Sprintf("  %d. %s to %s\n",
					i+1,
					busy.Start.Format("2006-01-02 15:04"),
					busy.End.Format("2006-01-02 15:04"))
			}
		}
		result += "\n"
	}

	return mcp.NewToolResultText(result), nil
}

func handleFindAvailableSlots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(ctx, args)

	startDateStr, ok := args["startDate"].(string)
	if !ok || startDateStr == "" {
		return mcp.NewToolResultError("startDate is required"), nil
	}
	startDate, err := civil.ParseDate(startDateStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid startDate format (expected YYYY-MM-DD): %v", err)), nil
	}

	endDateStr, ok := args["endDate"].(string)
	if !ok || endDateStr == "" {
		return mcp.NewToolResultError("endDate is required"), nil
	}
	endDate, err := civil.ParseDate(endDateStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid endDate format (expected YYYY-MM-DD): %v", err)), nil
	}

	timeZone, ok := args["timeZone"].(string)
	if !ok || timeZone == "" {
		return mcp.NewToolResultError("timeZone is required"), nil
	}
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown time zone %q: %v", timeZone, err)), nil
	}

	workStartHour := defaultWorkStartHour
	if v, ok := args["workStartHour"].(float64); ok {
		workStartHour = int(v)
	}
	workEndHour := defaultWorkEndHour
	if v, ok := args["workEndHour"].(float64); ok {
		workEndHour = int(v)
	}

	durationMinutes := defaultSlotDurationMin
	if v, ok := args["durationMinutes"].(float64); ok {
		durationMinutes = int(v)
	}

	var calendarIDs []string
	if calendarsStr, ok := args["calendars"].(string); ok && calendarsStr != "" {
		calendarIDs = splitAndTrim(calendarsStr)
	}

	req := schedule.SearchRequest{
		Start:    startDate,
		End:      endDate,
		Hours:    schedule.WorkingHours{StartHour: workStartHour, EndHour: workEndHour},
		Duration: time.Duration(durationMinutes) * time.Minute,
		Location: location,
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := client.FindAvailableSlots(req, calendarIDs, planClock.Now())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRange):
			return mcp.NewToolResultError(fmt.Sprintf("Invalid date range: %v", err)), nil
		case errors.Is(err, schedule.ErrInvalidWorkingHours):
			return mcp.NewToolResultError(fmt.Sprintf("Invalid working hours: %v", err)), nil
		case errors.Is(err, schedule.ErrInvalidDuration):
			return mcp.NewToolResultError(fmt.Sprintf("Invalid slot duration: %v", err)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Failed to find available slots: %v", err)), nil
		}
	}

	if report.Empty() {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No available %d minute slots between %s and %s (%02d:00-%02d:00 %s)",
			durationMinutes, startDate, endDate, workStartHour, workEndHour, timeZone)), nil
	}

	result := fmt.Sprintf("Found %d available %d minute slot(s) between %s and %s (%02d:00-%02d:00 %s):\n\n",
		report.TotalSlots(), durationMinutes, startDate, endDate, workStartHour, workEndHour, timeZone)

	for _, day := range report.Days {
		weekday := day.Date.In(location).Weekday()
		if len(day.Slots) == 0 {
			result += fmt.Sprintf("%s (%s): fully booked\n", day.Date, weekday)
			continue
		}
		result += fmt.Sprintf("%s (%s):\n", day.Date, weekday)
		for _, slot := range day.Slots {
			result += fmt.Sprintf("  %s - %s\n",
				slot.Start.In(location).Format("15:04"),
				slot.End.In(location).Format("15:04"))
		}
	}

	return mcp.NewToolResultText(result), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
