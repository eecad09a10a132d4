package model

import (
	"strconv"
	"strings"
)

const purposeLabel = "Device Purpose: "

// detailsBuilder renders the labeled, newline separated text shared by every device.
type detailsBuilder struct {
	sb strings.Builder
}

func newDetailsBuilder(purpose Purpose) *detailsBuilder {
	b := &detailsBuilder{}
	b.sb.WriteString(purposeLabel)
	b.sb.WriteString(purpose.String())

	return b
}

func (b *detailsBuilder) line(label, value string) *detailsBuilder {
	b.sb.WriteByte('\n')
	b.sb.WriteString(label)
	b.sb.WriteString(": ")
	b.sb.WriteString(value)

	return b
}

func (b *detailsBuilder) String() string {
	return b.sb.String()
}

// formatFloat always keeps a fractional part so whole values read as 10.0, not 10.
// Large magnitudes stay in plain notation (12345678.0) and infinities print as +Inf.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}
