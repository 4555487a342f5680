// Package ingest converts raw spreadsheet grids into canonical lead records.
// Skip trace exports name their columns inconsistently, so every field is
// resolved through an ordered list of header aliases; first non-empty wins.
package ingest

import (
	"strconv"
	"strings"

	"realtool_backend/internal/leads/domain"
	"realtool_backend/platform/phone"

	"github.com/google/uuid"
)

// RowsToRawRows maps a cell grid to raw rows. The first grid row is the
// header row; headers are case-folded and trimmed. Missing trailing cells
// default to empty strings. RowNumber starts at 2 to match spreadsheet
// row numbering under the header.
func RowsToRawRows(grid [][]string) []domain.RawRow {
	if len(grid) < 2 {
		return nil
	}

	headers := make([]string, len(grid[0]))
	for i, header := range grid[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(header))
	}

	rows := make([]domain.RawRow, 0, len(grid)-1)
	for i, cells := range grid[1:] {
		row := domain.RawRow{
			RowNumber: i + 2,
			Cells:     make(map[string]string, len(headers)),
		}
		for col, header := range headers {
			if header == "" {
				continue
			}
			if col < len(cells) {
				row.Cells[header] = cells[col]
			} else {
				row.Cells[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// NormalizeAll converts raw rows into canonical leads.
func NormalizeAll(rows []domain.RawRow) []domain.Lead {
	leads := make([]domain.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, Normalize(row))
	}
	return leads
}

// Normalize maps one raw row onto the canonical lead schema. Numeric cells
// that fail to parse coerce to zero and boolean cells only become true on
// an exact case-insensitive "yes" ("true" is additionally accepted for the
// tax delinquency flag). There is no per-row failure mode.
func Normalize(row domain.RawRow) domain.Lead {
	lead := domain.Lead{
		ID:        row.Get("id", "row_id", "rownumber"),
		RowNumber: row.RowNumber,

		OwnerName: row.Get("owner_name", "owner", "name"),
		FirstName: row.Get("first_name", "firstname"),
		LastName:  row.Get("last_name", "lastname"),

		Phone1: phone.NormalizeE164(row.Get("phone", "phone_1", "phone1", "primary_phone")),
		Phone2: phone.NormalizeE164(row.Get("phone_2", "phone2", "alternate_phone")),
		Phone3: phone.NormalizeE164(row.Get("phone_3", "phone3")),
		Email:  row.Get("email", "email_address"),

		Address: row.Get("address", "property_address", "full_address"),
		Street:  row.Get("street", "street_address"),
		City:    row.Get("city"),
		State:   row.Get("state"),
		Zip:     row.Get("zip", "zipcode", "zip_code"),
		County:  row.Get("county"),

		PropertyType: row.Get("property_type", "type"),
		Bedrooms:     parseInt(row.Get("bedrooms", "beds")),
		Bathrooms:    parseFloat(row.Get("bathrooms", "baths")),
		SquareFeet:   parseInt(row.Get("square_feet", "sqft", "square_footage")),
		YearBuilt:    parseInt(row.Get("year_built", "year")),
		LotSize:      parseFloat(row.Get("lot_size", "lot_sqft")),

		AssessedValue: parseFloat(row.Get("assessed_value", "tax_assessed_value")),
		MarketValue:   parseFloat(row.Get("market_value", "estimated_value")),
		LastSalePrice: parseFloat(row.Get("last_sale_price", "sale_price")),
		LastSaleDate:  row.Get("last_sale_date", "sale_date"),

		EstimatedMortgage: parseFloat(row.Get("estimated_mortgage", "mortgage")),
		EstimatedEquity:   parseFloat(row.Get("estimated_equity", "equity")),
		LienAmount:        parseFloat(row.Get("lien_amount", "liens")),

		TaxAmount:     parseFloat(row.Get("tax_amount", "annual_tax", "property_tax")),
		TaxDelinquent: isYesOrTrue(row.Get("tax_delinquent", "delinquent")),

		OwnerOccupied:   isYes(row.Get("owner_occupied", "occupied")),
		AbsenteeOwner:   isYes(row.Get("absentee_owner", "absentee")),
		OutOfStateOwner: isYes(row.Get("out_of_state", "out_of_state_owner")),

		Vacant:         isYes(row.Get("vacant")),
		Foreclosure:    isYes(row.Get("foreclosure", "pre_foreclosure")),
		PreForeclosure: isYes(row.Get("pre_foreclosure")),

		DaysOnMarket:  parseInt(row.Get("days_on_market", "dom")),
		Listed:        isYes(row.Get("listed", "mls_status")),
		ListingStatus: row.Get("listing_status", "mls_status"),
		ListPrice:     parseFloat(row.Get("list_price", "asking_price")),

		LastContactDate: row.Get("last_contact", "last_contact_date"),
		ContactAttempts: parseInt(row.Get("contact_attempts", "attempts")),
		LeadStatus:      row.Get("status", "lead_status"),
		Notes:           row.Get("notes", "comments"),
		AssignedTo:      row.Get("assigned_to", "agent"),

		Raw: row,
	}

	if lead.OwnerName == "" {
		lead.OwnerName = strings.TrimSpace(lead.FirstName + " " + lead.LastName)
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.LeadStatus == "" {
		lead.LeadStatus = "New"
	}

	lead.DistressIndicators = DistressIndicators(row)

	return lead
}

func parseInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func parseFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func isYes(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "yes")
}

func isYesOrTrue(value string) bool {
	trimmed := strings.TrimSpace(value)
	return strings.EqualFold(trimmed, "yes") || strings.EqualFold(trimmed, "true")
}
