package patch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSentinelNotFound is matched by every *SentinelNotFoundError.
var ErrSentinelNotFound = errors.New("sentinel not found")

// SentinelNotFoundError reports a begin or end sentinel missing from a
// document, or an end sentinel that only occurs before the begin one.
type SentinelNotFoundError struct {
	Sentinel string
	// Path is the file the document came from, when known.
	Path string
	// Misordered is set when the end sentinel exists but precedes begin.
	Misordered bool
}

func (e *SentinelNotFoundError) Error() string {
	var b strings.Builder

	b.WriteString("sentinel ")
	fmt.Fprintf(&b, "%q", e.Sentinel)

	if e.Misordered {
		b.WriteString(" does not follow its begin sentinel")
	} else {
		b.WriteString(" not found")
	}

	if e.Path != "" {
		b.WriteString(" in ")
		b.WriteString(e.Path)
	}

	return b.String()
}

// Is makes errors.Is(err, ErrSentinelNotFound) succeed.
func (e *SentinelNotFoundError) Is(target error) bool {
	return target == ErrSentinelNotFound
}

// Sentinels is the begin/end line pair delimiting one region.
type Sentinels struct {
	Begin string
	End   string
}

const (
	beginTemplate = "\t// beginning of GENERATED %s code - do not modify - used by scripts"
	endTemplate   = "\t// end of GENERATED %s code - do not modify - used by scripts"
)

// Region kinds used in vk_helpers.{h,c}.
const (
	KindInstanceLoader = "instance loader"
	KindDeviceLoader   = "device loader"
	KindExtension      = "extension"
)

// GeneratedSentinels returns the sentinel pair for a region kind, e.g.
// "\t// beginning of GENERATED device loader code - do not modify - used by scripts".
func GeneratedSentinels(kind string) Sentinels {
	return Sentinels{
		Begin: fmt.Sprintf(beginTemplate, kind),
		End:   fmt.Sprintf(endTemplate, kind),
	}
}

// Locate returns the indexes of the begin and end sentinel lines. End is
// searched strictly after begin.
func Locate(doc []string, s Sentinels) (begin, end int, err error) {
	begin = slices.Index(doc, s.Begin)
	if begin < 0 {
		return -1, -1, &SentinelNotFoundError{Sentinel: s.Begin}
	}

	rel := slices.Index(doc[begin+1:], s.End)
	if rel < 0 {
		return -1, -1, &SentinelNotFoundError{
			Sentinel:   s.End,
			Misordered: slices.Contains(doc[:begin], s.End),
		}
	}

	return begin, begin + 1 + rel, nil
}

// ReplaceRegion returns a new document in which the lines strictly between
// the sentinels are newLines. doc and newLines are not modified.
func ReplaceRegion(doc []string, s Sentinels, newLines []string) ([]string, error) {
	begin, end, err := Locate(doc, s)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, begin+1+len(newLines)+len(doc)-end)
	out = append(out, doc[:begin+1]...)
	out = append(out, newLines...)
	out = append(out, doc[end:]...)

	return out, nil
}

// SplitLines splits text into lines with trailing whitespace removed. A
// final newline does not produce an extra empty line. The trimming
// applies to every line, so text outside a region is normalized too.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r\v\f")
	}

	return lines
}

// JoinLines joins lines with newlines and terminates the text with one.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
