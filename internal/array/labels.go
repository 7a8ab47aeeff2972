package array

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Label names one position along one axis. Supported kinds are int,
// int64, float64, string, and time.Time. Numeric labels share one
// identity across kinds, so int(1) and float64(1.0) are the same label.
// Labels order numbers first, then times, then strings.
type Label = any

type labelClass uint8

const (
	classNumber labelClass = iota
	classTime
	classString
)

// labelKey is the canonical comparable identity of a label. Integer
// floats collapse onto their integer key so 1 and 1.0 collide, and
// times key on their instant regardless of location.
type labelKey struct {
	class labelClass
	key   string
}

func classify(v Label) (labelClass, bool) {
	switch x := v.(type) {
	case int, int64:
		return classNumber, true
	case float64:
		return classNumber, !math.IsNaN(x)
	case time.Time:
		return classTime, true
	case string:
		return classString, true
	}
	return 0, false
}

func keyOf(v Label) labelKey {
	switch x := v.(type) {
	case int:
		return labelKey{classNumber, strconv.FormatInt(int64(x), 10)}
	case int64:
		return labelKey{classNumber, strconv.FormatInt(x, 10)}
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return labelKey{classNumber, strconv.FormatInt(int64(x), 10)}
		}
		return labelKey{classNumber, strconv.FormatFloat(x, 'g', -1, 64)}
	case time.Time:
		return labelKey{classTime, strconv.FormatInt(x.UnixNano(), 10)}
	case string:
		return labelKey{classString, x}
	}
	panic("unsupported label kind")
}

// compareLabels orders two labels of any supported kind: numbers before
// times before strings, each kind by its natural order. Integer pairs
// compare exactly; mixed numeric pairs compare as float64.
func compareLabels(a, b Label) int {
	ca, _ := classify(a)
	cb, _ := classify(b)
	if ca != cb {
		return int(ca) - int(cb)
	}
	switch ca {
	case classNumber:
		ai, aInt := asInt64(a)
		bi, bInt := asInt64(b)
		if aInt && bInt {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
		af, bf := asFloat64(a), asFloat64(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case classTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return strings.Compare(a.(string), b.(string))
	}
}

func asInt64(v Label) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	}
	return 0, false
}

func asFloat64(v Label) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	}
	panic("not a numeric label")
}

func sortLabels(ls []Label) {
	sort.Slice(ls, func(i, j int) bool { return compareLabels(ls[i], ls[j]) < 0 })
}

// labelsEqual reports element-wise identity of two label lists.
func labelsEqual(a, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if keyOf(a[i]) != keyOf(b[i]) {
			return false
		}
	}
	return true
}

// indexByKey maps each label's identity to its position.
func indexByKey(ls []Label) map[labelKey]int {
	idx := make(map[labelKey]int, len(ls))
	for i, v := range ls {
		idx[keyOf(v)] = i
	}
	return idx
}

func defaultLabels(n int) []Label {
	ls := make([]Label, n)
	for i := range ls {
		ls[i] = i
	}
	return ls
}

func copyLabelList(ls []Label) []Label {
	return append([]Label(nil), ls...)
}

func copyLabels(labels [][]Label) [][]Label {
	out := make([][]Label, len(labels))
	for i, ls := range labels {
		out[i] = copyLabelList(ls)
	}
	return out
}

// validateAxisLabels checks one axis's labels: the count must match the
// extent, every label must be of a supported kind, and no label may
// repeat.
func validateAxisLabels(axis int, ls []Label, extent int) error {
	if len(ls) != extent {
		return &ShapeMismatchError{Axis: axis, Labels: len(ls), Extent: extent}
	}
	seen := make(map[labelKey]int, len(ls))
	for _, v := range ls {
		if _, ok := classify(v); !ok {
			return &UnsupportedLabelError{Axis: axis, Label: v}
		}
		seen[keyOf(v)]++
	}
	for _, v := range ls {
		if n := seen[keyOf(v)]; n > 1 {
			return &DuplicateLabelError{Axis: axis, Label: v, Count: n}
		}
	}
	return nil
}

// labelString renders a label for display. Midnight times render as bare
// dates; other times as RFC 3339.
func labelString(v Label) string {
	switch x := v.(type) {
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
