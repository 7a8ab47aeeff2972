package array

import (
	"fmt"
	"strings"
)

const labelPad = "    "

// String renders one block per axis, headed label_<i> with the axis
// labels indented below it, followed by an x block with the data. Axes
// with more than 10 labels print the first three, an ellipsis line, and
// the last three.
func (a *Array) String() string {
	var sb strings.Builder
	for i, ls := range a.labels {
		fmt.Fprintf(&sb, "label_%d\n", i)
		if len(ls) > 10 {
			writeLabelLines(&sb, ls[:3])
			sb.WriteString(labelPad + "...\n")
			writeLabelLines(&sb, ls[len(ls)-3:])
			continue
		}
		writeLabelLines(&sb, ls)
	}
	sb.WriteString("x\n")
	sb.WriteString(a.buf.String())
	return sb.String()
}

func writeLabelLines(sb *strings.Builder, ls []Label) {
	for _, v := range ls {
		sb.WriteString(labelPad)
		sb.WriteString(labelString(v))
		sb.WriteByte('\n')
	}
}
