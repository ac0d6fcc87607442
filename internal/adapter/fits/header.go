// Package fits writes observatory image frames as FITS files.
package fits

import (
	"time"

	"github.com/astrogo/fitsio"
)

// HeaderBuilder accumulates FITS header cards in insertion order.
// FITS headers are ordered records, so the builder never reorders or
// deduplicates entries.
type HeaderBuilder struct {
	cards []fitsio.Card
}

// NewHeaderBuilder creates an empty header builder.
func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{cards: make([]fitsio.Card, 0, 36)}
}

// Add appends a card. Keyword names are at most 8 characters by FITS
// convention; the value may be a string, bool, int or float.
func (b *HeaderBuilder) Add(name string, value interface{}, comment string) *HeaderBuilder {
	b.cards = append(b.cards, fitsio.Card{Name: name, Value: value, Comment: comment})
	return b
}

// Cards returns the accumulated cards in insertion order.
func (b *HeaderBuilder) Cards() []fitsio.Card {
	return b.cards
}

// ObservationParams holds the metadata recorded with every science frame.
// Angular fields are decimal degrees; the raw sexagesimal strings supplied
// by the mount are echoed into card comments for traceability.
type ObservationParams struct {
	Standard    string // Header layout revision tag.
	Observatory string
	SiteLat     string  // Site latitude as supplied (sexagesimal).
	SiteLatDeg  float64 // Parsed site latitude in degrees.
	SiteLon     string  // Site longitude as supplied (sexagesimal).
	SiteLonDeg  float64 // Parsed site longitude in degrees.
	SiteElevM   float64
	Origin      string
	Telescope   string
	DateObs     time.Time // Start of observation, UTC.
	JD          float64   // Julian date of observation start.
	ReqRA       float64   // Requested object RA in degrees.
	ReqDec      float64   // Requested object Dec in degrees.
	Equinox     string
	TelRA       float64
	TelDec      float64
	TelAltDeg   float64
	TelAzDeg    float64
	Airmass     float64
	ObsMode     string // TRACKING, GUIDING, JITTER or ELSE.
	Focus       float64
	RotatorDeg  float64
	Observer    string
	ObsType     string
	Object      string
	Filter      string
	ReqExpS     float64 // Requested exposure time in seconds.
	ExpTimeS    float64 // Executed exposure time in seconds.
	DetSize     string
	CCDSec      string
	CCDName     string
	CCDTempC    float64
	BinX        int
	BinY        int
	ReadMode    string
	Gain        float64
	ReadNoise   float64
}

// ObservationHeader assembles the standard observation header in its fixed
// card order.
func ObservationHeader(p ObservationParams) []fitsio.Card {
	b := NewHeaderBuilder()
	b.Add("HDUSTD", p.Standard, "Observation HDU standard version")
	b.Add("OBSERVAT", p.Observatory, "Observatory name")
	b.Add("OBS-LAT", p.SiteLatDeg, "[deg] Observatory latitude "+p.SiteLat)
	b.Add("OBS-LONG", p.SiteLonDeg, "[deg] Observatory longitude "+p.SiteLon)
	b.Add("OBS-ELEV", p.SiteElevM, "[m] Observatory elevation")
	b.Add("ORIGIN", p.Origin, "Institution that created this FITS file")
	b.Add("TEL", p.Telescope, "")
	b.Add("DATE-OBS", p.DateObs.UTC().Format("2006-01-02T15:04:05.000"), "DateTime of observation start")
	b.Add("JD", p.JD, "Julian date of observation start")
	b.Add("RA", p.ReqRA, "[deg] Requested object RA")
	b.Add("DEC", p.ReqDec, "[deg] Requested object DEC")
	b.Add("EQUINOX", p.Equinox, "Requested RA DEC epoch")
	b.Add("TEL_RA", p.TelRA, "[deg] Telescope RA")
	b.Add("TEL_DEC", p.TelDec, "[deg] Telescope DEC")
	b.Add("TEL_ALT", p.TelAltDeg, "[deg] Telescope mount ALT")
	b.Add("TEL_AZ", p.TelAzDeg, "[deg] Telescope mount AZ")
	b.Add("AIRMASS", p.Airmass, "")
	b.Add("OBSMODE", p.ObsMode, "TRACKING, GUIDING, JITTER or ELSE")
	b.Add("FOCUS", p.Focus, "Focuser position")
	b.Add("ROTATOR", p.RotatorDeg, "[deg] Rotator position")
	b.Add("OBSERVER", p.Observer, "")
	b.Add("OBSTYPE", p.ObsType, "")
	b.Add("OBJECT", p.Object, "")
	b.Add("FILTER", p.Filter, "")
	b.Add("EXPREQ", p.ReqExpS, "[s] Requested exposure time")
	b.Add("EXPTIME", p.ExpTimeS, "[s] Executed exposure time")
	b.Add("DETSIZE", p.DetSize, "")
	b.Add("CCDSEC", p.CCDSec, "")
	b.Add("CCD_NAME", p.CCDName, "")
	b.Add("CCD_TEMP", p.CCDTempC, "[C] CCD temperature")
	b.Add("CCD_BINX", p.BinX, "")
	b.Add("CCD_BINY", p.BinY, "")
	b.Add("READ_MOD", p.ReadMode, "")
	b.Add("GAIN", p.Gain, "")
	b.Add("RNOISE", p.ReadNoise, "")
	return b.Cards()
}
