// Package command parses free-text commands (typed or transcribed from
// voice) into typed intents. Matching is an ordered walk over known
// phrasing groups; the first hit wins, and unmatched input is reported
// as unknown rather than an error so the caller can ask for
// clarification.
package command

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent identifies what a command asks the system to do.
type Intent string

const (
	IntentCreateOrder       Intent = "create_order"
	IntentAddProduct        Intent = "add_product"
	IntentPriceQuery        Intent = "price_query"
	IntentShowPromotions    Intent = "show_promotions"
	IntentShowReports       Intent = "show_reports"
	IntentOutletPerformance Intent = "outlet_performance"
	IntentNavigateDashboard Intent = "navigate_dashboard"
	IntentNavigateOrders    Intent = "navigate_orders"
	IntentNavigateOutlets   Intent = "navigate_outlets"
	IntentUnknown           Intent = "unknown"
	IntentEmpty             Intent = "empty"
)

// Payload carries the structured data extracted from a command. Only
// the fields relevant to the matched intent are set.
type Payload struct {
	Outlet   string `json:"outlet,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Product  string `json:"product,omitempty"`
	Query    string `json:"query,omitempty"`
	Command  string `json:"command,omitempty"`
}

// Interpretation is the parse result. OK is false for empty or
// unrecognized input.
type Interpretation struct {
	OK      bool    `json:"ok"`
	Intent  Intent  `json:"intent"`
	Payload Payload `json:"payload"`
}

var orderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`create order for (.+)`),
	regexp.MustCompile(`new order for (.+)`),
	regexp.MustCompile(`place order for (.+)`),
}

var addPatterns = []*regexp.Regexp{
	regexp.MustCompile(`add (\d+) (.+) to (?:cart|order)`),
	regexp.MustCompile(`(\d+) (.+) to the order`),
	regexp.MustCompile(`include (\d+) (.+)`),
}

var queryPatterns = []struct {
	pattern *regexp.Regexp
	intent  Intent
}{
	{regexp.MustCompile(`what.*price.*(.+)`), IntentPriceQuery},
	{regexp.MustCompile(`show.*promotion`), IntentShowPromotions},
	{regexp.MustCompile(`display.*report`), IntentShowReports},
	{regexp.MustCompile(`outlet.*performance`), IntentOutletPerformance},
}

var navPatterns = []struct {
	pattern *regexp.Regexp
	intent  Intent
}{
	{regexp.MustCompile(`go to dashboard`), IntentNavigateDashboard},
	{regexp.MustCompile(`open order`), IntentNavigateOrders},
	{regexp.MustCompile(`show outlet`), IntentNavigateOutlets},
}

// Interpret parses a command string. Pattern groups run in a fixed
// order (order creation, product addition, queries, navigation) so an
// ambiguous phrase resolves to the earliest group.
func Interpret(text string) Interpretation {
	if strings.TrimSpace(text) == "" {
		return Interpretation{Intent: IntentEmpty}
	}

	lower := strings.ToLower(strings.TrimSpace(text))

	for _, pattern := range orderPatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			return Interpretation{
				OK:      true,
				Intent:  IntentCreateOrder,
				Payload: Payload{Outlet: strings.TrimSpace(match[1])},
			}
		}
	}

	for _, pattern := range addPatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			quantity, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			return Interpretation{
				OK:     true,
				Intent: IntentAddProduct,
				Payload: Payload{
					Quantity: quantity,
					Product:  strings.TrimSpace(match[2]),
				},
			}
		}
	}

	for _, q := range queryPatterns {
		if q.pattern.MatchString(lower) {
			return Interpretation{
				OK:      true,
				Intent:  q.intent,
				Payload: Payload{Query: text},
			}
		}
	}

	for _, n := range navPatterns {
		if n.pattern.MatchString(lower) {
			return Interpretation{OK: true, Intent: n.intent}
		}
	}

	return Interpretation{Intent: IntentUnknown, Payload: Payload{Command: text}}
}
