package mockdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/fairfound/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractUsername(t *testing.T) {
	Convey("Given profile URLs", t, func() {
		Convey("When the URL has path segments", func() {
			name, ok := ExtractUsername("https://www.upwork.com/freelancers/~01abc")

			Convey("Then the last segment is returned", func() {
				So(ok, ShouldBeTrue)
				So(name, ShouldEqual, "~01abc")
			})
		})

		Convey("When the URL ends with a slash", func() {
			name, ok := ExtractUsername("https://www.fiverr.com/alice/")

			Convey("Then trailing empty segments are skipped", func() {
				So(ok, ShouldBeTrue)
				So(name, ShouldEqual, "alice")
			})
		})

		Convey("When the URL has no path segments", func() {
			for _, raw := range []string{"https://site.com/", "https://site.com", "https://site.com//"} {
				_, ok := ExtractUsername(raw)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("When the URL does not parse", func() {
			_, ok := ExtractUsername("https://bad%%url/x")

			Convey("Then no name is returned", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestComparison(t *testing.T) {
	Convey("Given two profile URLs", t, func() {
		url1 := "https://x.com/bob"        // 17 units
		url2 := "https://site.com/alice12" // 24 units

		c := Comparison(url1, url2)

		Convey("Then names come from the URL paths", func() {
			So(c.Freelancer1.Name, ShouldEqual, "bob")
			So(c.Freelancer1.URL, ShouldEqual, url1)
			So(c.Freelancer2.Name, ShouldEqual, "alice12")
			So(c.Fallback, ShouldBeTrue)
		})

		Convey("Then metrics follow the length formulas", func() {
			So(c.Metrics, ShouldHaveLength, 6)
			labels := make([]string, 0, len(c.Metrics))
			for _, m := range c.Metrics {
				labels = append(labels, m.Label)
			}
			So(labels, ShouldResemble, []string{"Rating", "Jobs Done", "On-Time", "Response", "Rehire Rate", "FairFound Score"})

			So(c.Metrics[0].Value1, ShouldAlmostEqual, 4.7, 1e-9)
			So(c.Metrics[0].Value2, ShouldAlmostEqual, 4.9, 1e-9)
			So(c.Metrics[1].Value1, ShouldEqual, 101)
			So(c.Metrics[1].Value2, ShouldEqual, 122)
			So(c.Metrics[2].Value1, ShouldEqual, 97)
			So(c.Metrics[2].Value2, ShouldEqual, 84)
			So(c.Metrics[2].Suffix, ShouldEqual, "%")
			So(c.Metrics[3].Value1, ShouldEqual, 8)
			So(c.Metrics[3].Value2, ShouldEqual, 5)
			So(c.Metrics[3].Suffix, ShouldEqual, "h")
			So(c.Metrics[4].Value1, ShouldEqual, 77)
			So(c.Metrics[4].Value2, ShouldEqual, 84)
			So(c.Metrics[5].Value1, ShouldEqual, 87)
			So(c.Metrics[5].Value2, ShouldEqual, 94)
			So(c.Metrics[5].Suffix, ShouldEqual, "")
		})

		Convey("Then the higher score wins", func() {
			So(c.Winner, ShouldEqual, "alice12")
		})

		Convey("Then repeated synthesis is identical", func() {
			So(Comparison(url1, url2), ShouldResemble, c)
		})
	})

	Convey("Given two URLs of equal length", t, func() {
		c := Comparison("https://x.com/aaa", "https://x.com/bbb")

		Convey("Then the tie goes to the first freelancer", func() {
			So(c.Metrics[5].Value1, ShouldEqual, c.Metrics[5].Value2)
			So(c.Winner, ShouldEqual, "aaa")
		})
	})

	Convey("Given URLs without path segments", t, func() {
		c := Comparison("https://site.com/", "https://other.com")

		Convey("Then positional default names are used", func() {
			So(c.Freelancer1.Name, ShouldEqual, DefaultName1)
			So(c.Freelancer2.Name, ShouldEqual, DefaultName2)
		})
	})
}

func TestLength(t *testing.T) {
	Convey("Given strings with non-ASCII characters", t, func() {
		So(Length("abc"), ShouldEqual, 3)
		So(Length("é"), ShouldEqual, 1)
		So(Length("😀"), ShouldEqual, 2)
	})
}

func TestFixedData(t *testing.T) {
	Convey("Given the fixed mock data", t, func() {
		Convey("Then both rankings have eight entries ordered by score", func() {
			for _, list := range [][]float64{scores(Marketplace()), scores(FairFound())} {
				So(list, ShouldHaveLength, 8)
				for i := 1; i < len(list); i++ {
					So(list[i], ShouldBeLessThan, list[i-1])
				}
			}
		})

		Convey("Then categories are the seven known specialties", func() {
			So(Categories(), ShouldHaveLength, 7)
			So(Categories(), ShouldContain, "Data Scientist")
		})

		Convey("Then leaderboards are marked as fallback and keep the category", func() {
			lb := Leaderboards("Data Scientist")
			So(lb.Fallback, ShouldBeTrue)
			So(lb.Category, ShouldEqual, "Data Scientist")
			So(lb.Marketplace[0].Name, ShouldEqual, "Sarah Johnson")
			So(lb.FairFound[0].Name, ShouldEqual, "Michael Chen")
		})
	})
}

func TestSynthesizer(t *testing.T) {
	Convey("Given a synthesizer without delay", t, func() {
		s := NewSynthesizer(WithDelay(0))

		Convey("When comparing", func() {
			c, err := s.Compare(context.Background(), "https://x.com/a", "https://x.com/b")

			Convey("Then the synthesized comparison is returned", func() {
				So(err, ShouldBeNil)
				So(c, ShouldResemble, Comparison("https://x.com/a", "https://x.com/b"))
			})
		})
	})

	Convey("Given a synthesizer with the default delay", t, func() {
		s := NewSynthesizer()

		Convey("Then the delay is set", func() {
			So(s.Delay(), ShouldEqual, defaultDelay)
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := s.Compare(ctx, "https://x.com/a", "https://x.com/b")

			Convey("Then synthesis fails", func() {
				So(errors.Is(err, ErrSynthesis), ShouldBeTrue)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given a negative delay option", t, func() {
		s := NewSynthesizer(WithDelay(-time.Second))

		Convey("Then it is ignored", func() {
			So(s.Delay(), ShouldEqual, defaultDelay)
		})
	})
}

func scores(entries []types.Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}
