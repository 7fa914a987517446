// Package validate holds the pure input-validation rules for the sales
// core. Every function is side-effect free and returns a Result rather
// than an error: a failed check is an expected user-input mistake, not
// a fault.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of a validation check. Suggestions, when
// present, are candidate corrections ordered by relevance.
type Result struct {
	OK          bool
	Message     string
	Suggestions []string
}

func ok(message string) Result {
	return Result{OK: true, Message: message}
}

func fail(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Quantity validates a quantity expressed as free text. Non-integer
// input is a validation failure, never a parse crash.
func Quantity(raw string, minQty, maxQty int) Result {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fail("Quantity must be a valid number")
	}
	return QuantityInRange(qty, minQty, maxQty)
}

// QuantityInRange checks bounds of an already-parsed quantity.
func QuantityInRange(qty, minQty, maxQty int) Result {
	if qty < minQty {
		return fail("Quantity must be at least %d", minQty)
	}
	if qty > maxQty {
		return fail("Quantity cannot exceed %d", maxQty)
	}
	return ok("Valid quantity")
}

// priceSanityCap flags prices that are almost certainly data-entry
// mistakes rather than real unit prices.
const priceSanityCap = 1000000

// Price validates a unit price expressed as free text.
func Price(raw string) Result {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fail("Price must be a valid number")
	}
	if price < 0 {
		return fail("Price cannot be negative")
	}
	if price > priceSanityCap {
		return fail("Price seems unusually high")
	}
	return ok("Valid price")
}

// CreditLimit checks that an order total fits within an outlet's
// remaining credit. On failure the message reports the available
// credit so the caller can surface an actionable figure.
func CreditLimit(orderTotal, outstanding, creditLimit float64) Result {
	if outstanding+orderTotal > creditLimit {
		available := creditLimit - outstanding
		return fail("Order exceeds credit limit. Available credit: Rs. %.2f", available)
	}
	return ok("Within credit limit")
}

// ProductName resolves a product name against the candidate set.
// An exact match short-circuits success; otherwise case-insensitive
// substring matches in either direction become suggestions, capped at 5.
func ProductName(name string, candidates []string) Result {
	return nameLookup("Product", name, candidates)
}

// OutletName resolves an outlet name the same way ProductName does.
func OutletName(name string, candidates []string) Result {
	return nameLookup("Outlet", name, candidates)
}

const maxSuggestions = 5

func nameLookup(kind, name string, candidates []string) Result {
	if name == "" {
		return fail("%s name cannot be empty", kind)
	}

	for _, candidate := range candidates {
		if candidate == name {
			return ok(fmt.Sprintf("Valid %s name", strings.ToLower(kind)))
		}
	}

	var suggestions []string
	nameLower := strings.ToLower(name)
	for _, candidate := range candidates {
		candidateLower := strings.ToLower(candidate)
		if strings.Contains(candidateLower, nameLower) || strings.Contains(nameLower, candidateLower) {
			suggestions = append(suggestions, candidate)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	result := fail("%s '%s' not found", kind, name)
	result.Suggestions = suggestions
	return result
}

const dateLayout = "2006-01-02"

// DateRange validates a calendar date range: both bounds must parse,
// start must not be after end or in the future, and the span must not
// exceed one year.
func DateRange(startDate, endDate string) Result {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fail("Invalid date format. Use YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fail("Invalid date format. Use YYYY-MM-DD")
	}

	if start.After(end) {
		return fail("Start date cannot be after end date")
	}

	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if start.After(today) {
		return fail("Start date cannot be in the future")
	}

	if end.Sub(start) > 365*24*time.Hour {
		return fail("Date range cannot exceed 1 year")
	}

	return ok("Valid date range")
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email validates an email address format.
func Email(email string) Result {
	if email == "" {
		return fail("Email cannot be empty")
	}
	if emailPattern.MatchString(email) {
		return ok("Valid email format")
	}
	return fail("Invalid email format")
}

var (
	phoneStrip    = regexp.MustCompile(`[^\d+]`)
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+92[0-9]{10}$`),
		regexp.MustCompile(`^92[0-9]{10}$`),
		regexp.MustCompile(`^0[0-9]{10}$`),
	}
)

// Phone validates a phone number in the Pakistani formats the outlet
// records use.
func Phone(phone string) Result {
	if phone == "" {
		return fail("Phone number cannot be empty")
	}

	cleaned := phoneStrip.ReplaceAllString(phone, "")
	for _, pattern := range phonePatterns {
		if pattern.MatchString(cleaned) {
			return ok("Valid phone number format")
		}
	}

	return fail("Invalid phone number format. Expected formats: +92XXXXXXXXXX, 92XXXXXXXXXX, or 0XXXXXXXXXX")
}

var dangerousChars = regexp.MustCompile(`[<>"';\\]`)

const maxInputLength = 1000

// SanitizeInput strips characters with no business meaning from raw
// user input and bounds its length.
func SanitizeInput(input string) string {
	sanitized := dangerousChars.ReplaceAllString(input, "")
	if len(sanitized) > maxInputLength {
		sanitized = sanitized[:maxInputLength]
	}
	return strings.TrimSpace(sanitized)
}
