// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"

	g "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = g.Describe("information model", func() {

	g.DescribeTable("renders qualities",
		func(q Quality, text string, pending bool) {
			Expect(q.String()).To(Equal(text))
			Expect(q.IsPending()).To(Equal(pending))
		},
		g.Entry("pending", Pending, "pending", true),
		g.Entry("pinging", Pinging, "pinging", true),
		g.Entry("failed", Failed, "failed", false),
		g.Entry("dead", Dead, "dead", false),
		g.Entry("alive", Alive, "alive", false),
		g.Entry("Quality(42)", Quality(42), "Quality(42)", false),
	)

	g.It("renders RTTs", func() {
		Expect(RTT{}.String()).To(Equal("-"))
		Expect(SomeRTT(1.23).String()).To(Equal("1.23"))
		Expect(SomeRTT(10).String()).To(Equal("10"))
	})

	g.It("derives quality from an answer", func() {
		Expect(Answer{Alive: true}.Quality()).To(Equal(Alive))
		Expect(Answer{}.Quality()).To(Equal(Dead))
	})

	g.It("updates reports without touching the original", func() {
		r := Report{Address: "1.2.3.4"}
		pinging := r.WithQuality(Pinging)
		Expect(r.Quality).To(Equal(Pending))
		Expect(pinging.Quality).To(Equal(Pinging))

		boom := errors.New("boom")
		failed := pinging.WithErr(boom)
		Expect(failed.Quality).To(Equal(Failed))
		Expect(failed.Err()).To(MatchError(boom))
		Expect(pinging.Err()).To(BeNil())

		answered := failed.WithAnswer(Answer{IP: "1.2.3.4", Alive: true, RTT: SomeRTT(1.23)})
		Expect(answered.Quality).To(Equal(Alive))
		Expect(answered.Err()).To(BeNil())
		Expect(answered.Answer.RTT.Value).To(Equal(1.23))
	})

	g.When("erring", func() {

		g.It("tells configuration errors", func() {
			Expect((&ConfigError{Variable: "FOO"}).Error()).To(
				Equal("the FOO environment variable must be set"))
			Expect((&ConfigError{Variable: "FOO", Reason: "no scheme"}).Error()).To(
				Equal("invalid FOO environment variable: no scheme"))
		})

		g.It("tells ping errors", func() {
			Expect((&PingError{Target: "x", Detail: "The name 'x' cannot be resolved"}).Error()).To(
				Equal("cannot ping x: The name 'x' cannot be resolved"))
			Expect((&PingError{}).Error()).To(Equal("ping failed: unknown error"))

			parseErr := errors.New("bad prefix")
			err := fmt.Errorf("wrapped: %w", &PingError{Target: "y", Err: parseErr})
			var perr *PingError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Error()).To(Equal("cannot ping y: bad prefix"))
			Expect(errors.Is(err, parseErr)).To(BeTrue())

			var cerr *ConfigError
			Expect(errors.As(err, &cerr)).To(BeFalse())
		})

	})

})
