// Package sheets persists leads to a Google Sheets spreadsheet through a
// service account. One row per lead, header row bootstrapped on first run.
package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/signcontract/leadbot/internal/config"
	"github.com/signcontract/leadbot/internal/lead"
	"github.com/signcontract/leadbot/internal/logger"
)

// Client implements lead.Sink and lead.StatsProvider on top of the
// Sheets API. All methods are safe for concurrent use.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

// New authorizes against the Sheets API and makes sure the header row is in
// place. The spreadsheet itself must already exist; the sheet tab is
// addressed by name.
func New(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	c := &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}
	if err := c.ensureHeader(ctx); err != nil {
		return nil, err
	}
	logger.Info(ctx, "sheets", "connect",
		slog.String("spreadsheet_id", cfg.SpreadsheetID),
		slog.String("sheet", cfg.SheetName),
	)
	return c, nil
}

func (c *Client) ensureHeader(ctx context.Context) error {
	rng := fmt.Sprintf("%s!A1:I1", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: read header: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{rowValues(lead.Header)}}
	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, fmt.Sprintf("%s!A1", c.sheetName), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: write header: %w", err)
	}
	logger.Info(ctx, "sheets", "header.bootstrap",
		slog.String("sheet", c.sheetName),
	)
	return nil
}

// Emit appends the lead as a new row after the last filled one.
func (c *Client) Emit(ctx context.Context, l lead.Lead) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{rowValues(l.Row())}}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("%s!A:I", c.sheetName), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append lead: %w", err)
	}
	return nil
}

// Statistics reads every data row and aggregates counts client-side. The
// sheet stays small enough (hundreds of leads) that a full read is fine.
func (c *Client) Statistics(ctx context.Context) (lead.Statistics, error) {
	rng := fmt.Sprintf("%s!A2:I", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return lead.Statistics{}, fmt.Errorf("sheets: read rows: %w", err)
	}
	return aggregate(resp.Values), nil
}

// Column positions within a data row, matching lead.Header.
const (
	colSegment = 3
	colAction  = 4
)

func aggregate(rows [][]interface{}) lead.Statistics {
	stats := lead.Statistics{
		BySegment: make(map[string]int),
		ByAction:  make(map[string]int),
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		stats.Total++
		stats.BySegment[cellString(row, colSegment)]++
		stats.ByAction[cellString(row, colAction)]++
	}
	return stats
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return "unknown"
	}
	s, ok := row[idx].(string)
	if !ok || s == "" {
		return "unknown"
	}
	return s
}

func rowValues(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
