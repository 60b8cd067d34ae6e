package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given no .env file and an empty environment", t, func() {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("ECG_RHYTHM", "")

		s, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		Convey("Load reports the missing file and returns defaults", func() {
			So(err, ShouldNotBeNil)
			So(s.LogLevel, ShouldEqual, "info")
			So(s.LogFormat, ShouldEqual, "text")
			So(s.Rhythm, ShouldEqual, DefaultRhythm)
		})
	})

	Convey("Given a .env file", t, func() {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("ECG_RHYTHM", "")
		// godotenv does not override variables that are already set
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("ECG_RHYTHM")

		path := filepath.Join(t.TempDir(), ".env")
		So(os.WriteFile(path, []byte("LOG_LEVEL=debug\nECG_RHYTHM=av-block\n"), 0o600), ShouldBeNil)

		s, err := Load(path)

		Convey("Its values are used", func() {
			So(err, ShouldBeNil)
			So(s.LogLevel, ShouldEqual, "debug")
			So(s.Rhythm, ShouldEqual, "av-block")
		})
	})
}

func TestGetEnv(t *testing.T) {
	Convey("GetEnv falls back only when the variable is empty", t, func() {
		t.Setenv("ECG_TEST_KEY", "")
		So(GetEnv("ECG_TEST_KEY", "x"), ShouldEqual, "x")
		t.Setenv("ECG_TEST_KEY", "y")
		So(GetEnv("ECG_TEST_KEY", "x"), ShouldEqual, "y")
	})

	Convey("The window fits the canvas and toolbar", t, func() {
		So(WindowHeight, ShouldEqual, CanvasHeight+ToolbarHeight)
		So(ButtonY+ButtonHeight, ShouldBeLessThanOrEqualTo, ToolbarHeight)
	})
}
