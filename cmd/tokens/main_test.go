package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"

	"github.com/okian/edgegate/pkg/tokens"
)

func TestRun(t *testing.T) {
	Convey("Given the tokens command", t, func() {
		var stdout, stderr bytes.Buffer

		Convey("When run without flags", func() {
			code := run(nil, &stdout, &stderr)

			Convey("Then it should print the whole catalog as JSON", func() {
				So(code, ShouldEqual, 0)
				var got tokens.Catalog
				So(json.Unmarshal(stdout.Bytes(), &got), ShouldBeNil)
				So(cmp.Diff(tokens.Default(), got), ShouldBeEmpty)
			})
		})

		Convey("When asked for a sub-tree as YAML", func() {
			code := run([]string{"-format", "yaml", "-path", "colors.brand.primary"}, &stdout, &stderr)

			Convey("Then only that sub-tree should be printed", func() {
				So(code, ShouldEqual, 0)
				var got map[string]string
				So(yaml.Unmarshal(stdout.Bytes(), &got), ShouldBeNil)
				So(got, ShouldResemble, map[string]string{"orange": "#FF6200", "orangeAlt": "#FF6600"})
			})
		})

		Convey("When asked for a leaf", func() {
			code := run([]string{"-path", "zIndex.tooltip"}, &stdout, &stderr)

			Convey("Then the bare value should be printed", func() {
				So(code, ShouldEqual, 0)
				So(strings.TrimSpace(stdout.String()), ShouldEqual, "1070")
			})
		})

		Convey("When listing paths", func() {
			code := run([]string{"-list"}, &stdout, &stderr)

			Convey("Then every leaf path should be printed", func() {
				So(code, ShouldEqual, 0)
				var got []string
				So(json.Unmarshal(stdout.Bytes(), &got), ShouldBeNil)
				want, err := tokens.Paths()
				So(err, ShouldBeNil)
				So(got, ShouldResemble, want)
				So(got, ShouldContain, "typography.fontSize.2xl")
			})
		})

		Convey("When asked for CSS", func() {
			code := run([]string{"-format", "css"}, &stdout, &stderr)

			Convey("Then custom properties should be printed", func() {
				So(code, ShouldEqual, 0)
				So(stdout.String(), ShouldStartWith, ":root {")
				So(stdout.String(), ShouldContainSubstring, "--colors-brand-primary-orange: #FF6200;")
			})
		})

		Convey("When CSS is combined with a path", func() {
			code := run([]string{"-format", "css", "-path", "colors"}, &stdout, &stderr)

			Convey("Then it should be rejected", func() {
				So(code, ShouldEqual, 1)
				So(stdout.Len(), ShouldEqual, 0)
			})
		})

		Convey("When listing is combined with a path", func() {
			code := run([]string{"-list", "-path", "colors"}, &stdout, &stderr)

			Convey("Then it should be rejected", func() {
				So(code, ShouldEqual, 1)
				So(stdout.Len(), ShouldEqual, 0)
				So(stderr.String(), ShouldContainSubstring, "mutually exclusive")
			})
		})

		Convey("When the path is unknown", func() {
			code := run([]string{"-path", "colors.nope"}, &stdout, &stderr)

			Convey("Then it should fail with a message", func() {
				So(code, ShouldEqual, 1)
				So(stdout.Len(), ShouldEqual, 0)
				So(stderr.String(), ShouldContainSubstring, "unknown token path")
			})
		})

		Convey("When the format is unknown", func() {
			code := run([]string{"-format", "toml"}, &stdout, &stderr)

			Convey("Then it should fail with a message", func() {
				So(code, ShouldEqual, 1)
				So(stderr.String(), ShouldContainSubstring, "unknown format")
			})
		})

		Convey("When a flag is not recognised", func() {
			code := run([]string{"-bogus"}, &stdout, &stderr)

			Convey("Then it should report usage", func() {
				So(code, ShouldEqual, 2)
				So(stderr.String(), ShouldContainSubstring, "-format")
			})
		})
	})
}
