package service

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/xuri/excelize/v2"
)

// tierKeywords is checked in order; the first keyword found in a value decides the tier.
var tierKeywords = []struct {
	keyword string
	tier    refdomain.Tier
}{
	{"ground", refdomain.TierGround},
	{"standard", refdomain.TierGround},
	{"economy", refdomain.TierGround},
	{"expedited", refdomain.TierExpedited},
	{"express", refdomain.TierExpedited},
	{"2day", refdomain.TierExpedited},
	{"priority", refdomain.TierPriority},
	{"next day", refdomain.TierPriority},
	{"overnight", refdomain.TierPriority},
}

// parseTier maps free-form service text onto a tier; unmatched text is Ground.
func parseTier(v string) (refdomain.Tier, bool) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return domain.DefaultTier, true
	}
	for _, kw := range tierKeywords {
		if strings.Contains(s, kw.keyword) {
			return kw.tier, true
		}
	}
	return domain.DefaultTier, false
}

// parseZone accepts "4", "4.0" and "Zone 4"; anything outside 1..8 is the default zone.
func parseZone(v string) (string, bool) {
	s := strings.TrimSpace(strings.ToLower(v))
	if s == "" {
		return refdomain.DefaultZone, true
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "zone"))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > 8 {
		return refdomain.DefaultZone, false
	}
	return refdomain.ZoneKey(int(f)), true
}

// parseZip keeps the first five characters, zero-padding shorter values.
func parseZip(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return domain.DefaultZip
	}
	r := []rune(strings.TrimSuffix(s, ".0"))
	if len(r) >= 5 {
		return string(r[:5])
	}
	return strings.Repeat("0", 5-len(r)) + string(r)
}

// parseState upper-cases two-letter codes and keeps any other text as given.
func parseState(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return domain.DefaultState
	}
	if len(s) == 2 && isLetters(s) {
		return strings.ToUpper(s)
	}
	return s
}

func parseText(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

// parseNumber reads a decimal, tolerating currency symbols, thousands
// separators and a trailing unit word such as "lbs".
func parseNumber(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	s = strings.TrimRightFunc(s, unicode.IsLetter)
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseCost returns a non-negative amount; negatives become zero.
func parseCost(v string) (float64, bool) {
	if strings.TrimSpace(v) == "" {
		return domain.DefaultCost, true
	}
	f, ok := parseNumber(v)
	if !ok {
		return domain.DefaultCost, false
	}
	return math.Max(f, 0), true
}

// parseDays rounds an explicit day count and clamps it to [0, 30].
func parseDays(v string) (*int, bool) {
	if strings.TrimSpace(v) == "" {
		return nil, true
	}
	f, ok := parseNumber(v)
	if !ok {
		return nil, false
	}
	d := domain.ClampDays(int(math.Round(f)))
	return &d, true
}

// daysBetween returns whole days from request to delivery, clamped to [0, 30].
func daysBetween(request, delivery time.Time) int {
	days := int(math.Floor(delivery.Sub(request).Hours() / 24))
	return domain.ClampDays(days)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Excel serials below 1 or past 9999-12-31 are not dates.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// parseDate accepts the layouts above and Excel serial day numbers.
func parseDate(v string) (*time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= minExcelSerial && f <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(f, false); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// parseSLAStatus recognises on-time, early and miss spellings. Anything else
// reports ok=false so the caller can derive the status instead.
func parseSLAStatus(v string) (domain.SLAStatus, bool) {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, v)

	switch {
	case letters == "":
		return "", false
	case strings.Contains(letters, "early"):
		return domain.SLAEarly, true
	case strings.Contains(letters, "ontime"):
		return domain.SLAOnTime, true
	case strings.Contains(letters, "miss"), strings.Contains(letters, "late"):
		return domain.SLAMiss, true
	}
	return "", false
}

// deriveSLAStatus compares transit days with the tier's SLA window.
func deriveSLAStatus(ref *refdomain.Reference, tier refdomain.Tier, days *int) domain.SLAStatus {
	if days == nil {
		return domain.SLAUnknown
	}
	if *days <= ref.SLAWindow(tier) {
		return domain.SLAOnTime
	}
	return domain.SLAMiss
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
