package site

import (
	"strconv"
	"strings"
	"time"

	"github.com/cnopslabs/potsite/internal/money"
	"github.com/cnopslabs/potsite/internal/projection"
)

// Placeholder names, written as {{NAME}} in the template
const (
	KeyDay          = "DAY"
	KeyTotalDays    = "TOTAL_DAYS"
	KeyCurrentPot   = "CURRENT_POT"
	KeyFinalSuccess = "FINAL_SUCCESS"
	KeyFinalFail    = "FINAL_FAIL"
	KeyUpdatedAt    = "UPDATED_AT"
)

// TimestampLayout is how the generation time is shown on the page
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// Keys lists every placeholder the renderer knows, in page order
var Keys = []string{KeyDay, KeyTotalDays, KeyCurrentPot, KeyFinalSuccess, KeyFinalFail, KeyUpdatedAt}

// Token wraps a placeholder name in double braces
func Token(key string) string {
	return "{{" + key + "}}"
}

// Values renders everything the template needs for one projection
func Values(p projection.Projection, now time.Time) map[string]string {
	return map[string]string{
		KeyDay:          strconv.FormatInt(p.Day, 10),
		KeyTotalDays:    strconv.FormatInt(p.TotalDays, 10),
		KeyCurrentPot:   money.FormatInt(p.Pot),
		KeyFinalSuccess: money.Format(p.FinalSuccess),
		KeyFinalFail:    money.Format(p.FinalFail),
		KeyUpdatedAt:    now.UTC().Truncate(time.Second).Format(TimestampLayout),
	}
}

// Render replaces every occurrence of each known token. Anything else in the
// template, including unknown {{...}} tokens, is left as is.
func Render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for _, key := range Keys {
		if v, ok := values[key]; ok {
			pairs = append(pairs, Token(key), v)
		}
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
