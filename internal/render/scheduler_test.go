package render

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScheduler(t *testing.T) {
	Convey("Given a scheduler with one repeating task", t, func() {
		s := NewScheduler()
		fired := 0
		task := s.Every(time.Second, func() { fired++ })

		Convey("Nothing fires before a full period", func() {
			s.Advance(999 * time.Millisecond)
			So(fired, ShouldEqual, 0)
			So(task.Until(), ShouldEqual, time.Millisecond)
		})

		Convey("Small steps accumulate", func() {
			for i := 0; i < 30; i++ {
				s.Advance(100 * time.Millisecond)
			}
			So(fired, ShouldEqual, 3)
			So(s.Now(), ShouldEqual, 3*time.Second)
		})

		Convey("One large step fires every due tick", func() {
			s.Advance(5500 * time.Millisecond)
			So(fired, ShouldEqual, 5)
		})

		Convey("A cancelled task never fires again", func() {
			s.Advance(time.Second)
			task.Cancel()
			task.Cancel()
			s.Advance(10 * time.Second)
			So(fired, ShouldEqual, 1)
			So(s.Active(), ShouldEqual, 0)
		})

		Convey("A task cancelled from its own callback stops mid advance", func() {
			var self *Task
			n := 0
			self = s.Every(time.Second, func() {
				n++
				self.Cancel()
			})
			s.Advance(5 * time.Second)
			So(n, ShouldEqual, 1)
			So(s.Active(), ShouldEqual, 1)
		})
	})

	Convey("A non-positive period is rejected", t, func() {
		So(func() { NewScheduler().Every(0, func() {}) }, ShouldPanic)
	})
}
