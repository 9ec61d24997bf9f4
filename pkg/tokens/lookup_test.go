package tokens

import (
	"errors"
	"sort"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Given dotted token paths", t, func() {
		Convey("When the path names a leaf", func() {
			orange, err := Lookup("colors.brand.primary.orange")
			So(err, ShouldBeNil)
			size, err := Lookup("typography.fontSize.2xl")
			So(err, ShouldBeNil)
			modal, err := Lookup("zIndex.modal")
			So(err, ShouldBeNil)
			space, err := Lookup("spacing.0")
			So(err, ShouldBeNil)

			Convey("Then the leaf value should be returned", func() {
				So(orange, ShouldEqual, "#FF6200")
				So(size, ShouldEqual, "1.5rem")
				So(modal, ShouldEqual, float64(1050))
				So(space, ShouldEqual, "0")
			})
		})

		Convey("When the path names a group", func() {
			v, err := Lookup("colors.brand.secondary")
			So(err, ShouldBeNil)

			Convey("Then the sub-tree should be returned", func() {
				So(v, ShouldResemble, map[string]any{"navyBlue": "#000066", "deepBlue": "#091C5A"})
			})
		})

		Convey("When the path is unknown", func() {
			for _, p := range []string{"", "colors.brand.tertiary", "zIndex.modal.extra", "components.button.primary.border"} {
				_, err := Lookup(p)
				So(errors.Is(err, ErrUnknownPath), ShouldBeTrue)
			}
		})
	})
}

func TestPathsAndFlatten(t *testing.T) {
	Convey("Given the indexed catalog", t, func() {
		paths, err := Paths()
		So(err, ShouldBeNil)
		flat, err := Flatten()
		So(err, ShouldBeNil)

		Convey("Then paths should be sorted and match the flattened leaves", func() {
			So(sort.StringsAreSorted(paths), ShouldBeTrue)
			So(len(paths), ShouldEqual, len(flat))
			for _, p := range paths {
				So(flat, ShouldContainKey, p)
			}
		})

		Convey("Then colors should be strings", func() {
			for p, v := range flat {
				if strings.HasPrefix(p, "colors.") {
					_, ok := v.(string)
					So(ok, ShouldBeTrue)
				}
			}
		})

		Convey("Then weights, line heights and z-indexes should be numbers", func() {
			numeric := 0
			for p, v := range flat {
				if strings.Contains(p, "fontWeight") || strings.Contains(p, "lineHeight") || strings.HasPrefix(p, "zIndex.") {
					_, ok := v.(float64)
					So(ok, ShouldBeTrue)
					numeric++
				}
			}
			So(numeric, ShouldBeGreaterThan, 0)
		})

		Convey("Then mutating the flattened map should not affect lookups", func() {
			flat["colors.brand.primary.orange"] = "#000000"
			v, err := Lookup("colors.brand.primary.orange")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "#FF6200")
		})
	})
}
