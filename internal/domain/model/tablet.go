package model

import (
	"io"
	"strconv"
)

// Tablet is an iPad-style learning device. Its OS version is stored as given,
// an empty version included.
type Tablet struct {
	purpose   Purpose
	hasCase   bool
	osVersion string
}

func NewTablet(hasCase bool, osVersion string) Tablet {
	return Tablet{
		purpose:   PurposeLearning,
		hasCase:   hasCase,
		osVersion: osVersion,
	}
}

func (t Tablet) Kind() Kind                     { return KindTablet }
func (t Tablet) Purpose() string                { return t.purpose.String() }
func (t Tablet) HasCase() bool                  { return t.hasCase }
func (t Tablet) OSVersion() string              { return t.osVersion }
func (t Tablet) String() string                 { return t.Details() }
func (t Tablet) Equal(o Tablet) bool            { return t.osVersion == o.osVersion }
func (t Tablet) Hash() uint64                   { return hashString(t.osVersion) }
func (t Tablet) PrintDetails(w io.Writer) error { return printDetails(w, t) }

func (t Tablet) Details() string {
	return newDetailsBuilder(t.purpose).
		line("Has Case", strconv.FormatBool(t.hasCase)).
		line("OS Version", t.osVersion).
		String()
}
