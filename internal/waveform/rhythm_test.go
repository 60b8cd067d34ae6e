package waveform

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRhythm(t *testing.T) {
	Convey("Given the rhythm identifiers", t, func() {
		Convey("Each identifier and label parses back", func() {
			for _, r := range Rhythms() {
				got, err := ParseRhythm(string(r))
				So(err, ShouldBeNil)
				So(got, ShouldEqual, r)

				got, err = ParseRhythm(r.Label())
				So(err, ShouldBeNil)
				So(got, ShouldEqual, r)
			}
		})

		Convey("An unknown identifier is rejected", func() {
			_, err := ParseRhythm("torsades")
			So(errors.Is(err, ErrUnknownRhythm), ShouldBeTrue)
		})
	})
}

func TestNext(t *testing.T) {
	Convey("Cycling wraps around in both directions", t, func() {
		So(Next(Sinus, 1), ShouldEqual, Tachycardia)
		So(Next(AVBlock, 1), ShouldEqual, Sinus)
		So(Next(Sinus, -1), ShouldEqual, AVBlock)
		So(Next(Rhythm("bogus"), 1), ShouldEqual, Tachycardia)
	})
}
