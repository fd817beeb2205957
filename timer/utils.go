package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime converts a number of seconds into a mm:ss string format.
// Minutes are not capped, so 100 minutes or more render wider than mm.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// SplitDraft renders seconds as unpadded minutes and seconds drafts.
func SplitDraft(sec int) (string, string) {
	return strconv.Itoa(sec / 60), strconv.Itoa(sec % 60)
}

// ParseDraft parses a draft as a base-10 integer. Anything unparsable is 0.
func ParseDraft(text string) int {
	val, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return val
}

// DraftTotal returns the duration in seconds described by the two drafts.
func DraftTotal(minutes, seconds string) int {
	return ParseDraft(minutes)*60 + ParseDraft(seconds)
}
