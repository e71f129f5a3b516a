// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"time"

	"github.com/siemens/remoteping/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("rendering", func() {

	It("groups reports by network", func() {
		reports := []types.Report{
			{Address: "example.com", Quality: types.Pinging},
			{Address: "10.0.0.2", Network: "10.0.0.0/30", Quality: types.Dead},
			{Network: "10.0.0.0/30", Quality: types.Alive},
			{Address: "10.0.0.1", Network: "10.0.0.0/30", Quality: types.Alive},
			{Address: "::1", Quality: types.Alive},
			{Address: "1.1.1.1", Quality: types.Alive},
			{Address: "bad", Network: "bad", Quality: types.Failed},
			{Network: "1.2.3.0/24", Quality: types.Pinging},
		}
		groups := groupReports(reports)
		Expect(groups).To(HaveLen(4))
		Expect(groups[0].name).To(BeEmpty())
		Expect(groups[0].network).To(BeNil())
		Expect(groups[0].hosts).To(HaveExactElements(
			HaveField("Address", "1.1.1.1"),
			HaveField("Address", "::1"),
			HaveField("Address", "example.com"),
		))
		Expect(groups[1].name).To(Equal("1.2.3.0/24"))
		Expect(groups[1].hosts).To(BeEmpty())
		Expect(groups[2].name).To(Equal("10.0.0.0/30"))
		Expect(groups[2].network).To(HaveField("Quality", types.Alive))
		Expect(groups[2].hosts).To(HaveExactElements(
			HaveField("Address", "10.0.0.1"),
			HaveField("Address", "10.0.0.2"),
		))
		Expect(groups[3].name).To(Equal("bad"))
		Expect(groups[3].network).NotTo(BeNil())
	})

	It("renders verdicts", func() {
		var buff bytes.Buffer
		r := &renderer{Indentation: 2, w: &buff, spinner: newSpinner()}
		r.Render(nil)
		Expect(buff.String()).To(ContainSubstring("asking the ping server"))

		buff.Reset()
		r.Render([]types.Report{
			types.Report{Address: "example.com"}.WithAnswer(types.Answer{
				IP: "10.20.30.40", Alive: true, RTT: types.SomeRTT(10.5)}),
			types.Report{Address: "9.8.7.6"}.WithAnswer(types.Answer{IP: "9.8.7.6"}),
			types.Report{Address: "not.a.domain"}.WithErr(errors.New("cannot be resolved")),
			{Network: "1.2.3.0/31", Quality: types.Alive},
			types.Report{Address: "1.2.3.1", Network: "1.2.3.0/31"}.WithAnswer(types.Answer{
				IP: "1.2.3.1", Alive: true, RTT: types.SomeRTT(0.5)}),
		})
		out := buff.String()
		Expect(out).To(ContainSubstring("hosts\n"))
		Expect(out).To(MatchRegexp(`example\.com\s+.*✔ 10\.5 \(10\.20\.30\.40\)`))
		Expect(out).To(MatchRegexp(`9\.8\.7\.6\s+.*× -`))
		Expect(out).To(MatchRegexp(`not\.a\.domain\s+.*! cannot be resolved`))
		Expect(out).To(ContainSubstring("1 of 1 hosts alive"))
		Expect(out).To(MatchRegexp(`1\.2\.3\.1\s+.*✔ 0\.5`))
	})

	It("counts failures", func() {
		Expect(failures([]types.Report{
			{Quality: types.Alive},
			{Quality: types.Failed},
			{Quality: types.Dead},
			{Quality: types.Failed},
		})).To(Equal(2))
	})

	It("spins", func() {
		s := newSpinner()
		first := s.Spinner()
		s.Start(10 * time.Millisecond)
		defer s.Stop()
		Eventually(s.Spinner).Should(Not(Equal(first)))
		s.Stop()
	})

})
