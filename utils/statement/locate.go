package statement

import (
	"regexp"
	"strconv"
	"sync"
)

// keywordPatterns caches the compiled pattern of every keyword seen so far.
var keywordPatterns sync.Map // map[string]*regexp.Regexp

// Locate returns the value that follows the first keyword, in the given
// order, that has a numeric token after it in text. Any run of characters
// other than digits and '-' may sit between the keyword and the number.
// Keyword priority decides, not position in the text. The parsed value is
// multiplied by scale. Locate returns 0.0 when no keyword yields a number.
func Locate(text string, keywords []string, scale float64) float64 {
	for _, keyword := range keywords {
		value, ok := locateKeyword(text, keyword)
		if !ok {
			continue
		}
		return value * scale
	}
	return 0.0
}

// locateKeyword inspects only the first occurrence of keyword. A token such
// as "1.2.3" that does not parse is treated as no match.
func locateKeyword(text, keyword string) (float64, bool) {
	if keyword == "" {
		return 0, false
	}
	re := keywordPattern(keyword)
	matches := re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return 0, false
	}
	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func keywordPattern(keyword string) *regexp.Regexp {
	if re, ok := keywordPatterns.Load(keyword); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword) + `[^0-9\-]*(-?[\d.]+)`)
	actual, _ := keywordPatterns.LoadOrStore(keyword, re)
	return actual.(*regexp.Regexp)
}
