package lines

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"mxshs/vbcrawler/src/domain"
)

// The site prints kick-off times at a fixed UTC-5, without daylight saving.
var sourceZone = time.FixedZone("UTC-5", -5*60*60)

// Anything after the date (closing paren, " ML" hints) is ignored.
var eventTimeRe = regexp.MustCompile(
	`(\d{1,2}):(\d{2})\s*([AaPp][Mm])\s*\(\s*(\d{1,2})/(\d{1,2})/(\d{4})`,
)

// NormalizeTime converts a scraped "7:30 PM (6/5/2024)" string into a UTC
// timestamp. A string without that shape yields an error wrapping
// domain.ErrFormat.
func NormalizeTime(raw string) (time.Time, error) {
	m := eventTimeRe.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrFormat, raw)
	}

	value := fmt.Sprintf("%s/%s/%s %s:%s %s", m[4], m[5], m[6], m[1], m[2], strings.ToUpper(m[3]))

	local, err := time.ParseInLocation("1/2/2006 3:04 PM", value, sourceZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %s", domain.ErrFormat, raw, err.Error())
	}

	return local.UTC(), nil
}
