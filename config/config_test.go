// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"

	"github.com/siemens/remoteping/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// setenv sets (or unsets, if value is nil) an environment variable for the
// duration of the current spec.
func setenv(name string, value *string) {
	old, wasSet := os.LookupEnv(name)
	DeferCleanup(func() {
		if wasSet {
			Expect(os.Setenv(name, old)).To(Succeed())
			return
		}
		Expect(os.Unsetenv(name)).To(Succeed())
	})
	if value == nil {
		Expect(os.Unsetenv(name)).To(Succeed())
		return
	}
	Expect(os.Setenv(name, *value)).To(Succeed())
}

func ptr(s string) *string { return &s }

var _ = Describe("configuration", func() {

	Context("resolving the server URL", func() {

		It("resolves from the environment", func() {
			setenv(ServerURLEnv, ptr("http://py.test/"))
			Expect(Resolve()).To(Equal(ServerURL("http://py.test")))
		})

		It("re-reads the environment on each call", func() {
			setenv(ServerURLEnv, ptr("http://foo.test"))
			Expect(Resolve()).To(Equal(ServerURL("http://foo.test")))
			setenv(ServerURLEnv, ptr("https://bar.test:8080/api"))
			u := Successful(Resolve())
			Expect(u.String()).To(Equal("https://bar.test:8080/api"))
		})

		DescribeTable("rejects missing or unusable URLs",
			func(value *string, reasoned bool) {
				setenv(ServerURLEnv, value)
				_, err := Resolve()
				var cerr *types.ConfigError
				Expect(err).To(BeAssignableToTypeOf(cerr))
				Expect(err).To(HaveField("Variable", ServerURLEnv))
				if reasoned {
					Expect(err).To(HaveField("Reason", Not(BeEmpty())))
				} else {
					Expect(err).To(HaveField("Reason", BeEmpty()))
				}
			},
			Entry("unset", nil, false),
			Entry("empty", ptr(""), false),
			Entry("blank", ptr("  "), false),
			Entry("without scheme", ptr("py.test"), true),
			Entry("with wrong scheme", ptr("ftp://py.test"), true),
			Entry("without host", ptr("http://"), true),
			Entry("unparseable", ptr("http://py.test:port/"), true),
		)

	})

	Context("loading dotenv files", func() {

		var dir string

		BeforeEach(func() {
			dir = Successful(os.MkdirTemp("", "remoteping-config-*"))
			DeferCleanup(func() { _ = os.RemoveAll(dir) })
		})

		It("ignores a missing default dotenv file", func() {
			wd := Successful(os.Getwd())
			Expect(os.Chdir(dir)).To(Succeed())
			DeferCleanup(func() { Expect(os.Chdir(wd)).To(Succeed()) })
			Expect(LoadDotEnv()).To(Succeed())
		})

		It("loads the default dotenv file", func() {
			setenv(ServerURLEnv, nil)
			Expect(os.WriteFile(filepath.Join(dir, DefaultDotEnv),
				[]byte(ServerURLEnv+"=http://dotenv.test\n"), 0600)).To(Succeed())
			wd := Successful(os.Getwd())
			Expect(os.Chdir(dir)).To(Succeed())
			DeferCleanup(func() { Expect(os.Chdir(wd)).To(Succeed()) })

			Expect(LoadDotEnv()).To(Succeed())
			Expect(Resolve()).To(Equal(ServerURL("http://dotenv.test")))
		})

		It("never overrides the environment", func() {
			setenv(ServerURLEnv, ptr("http://env.test"))
			fname := filepath.Join(dir, "ping.env")
			Expect(os.WriteFile(fname,
				[]byte(ServerURLEnv+"=http://dotenv.test\n"), 0600)).To(Succeed())

			Expect(LoadDotEnv(fname)).To(Succeed())
			Expect(Resolve()).To(Equal(ServerURL("http://env.test")))
		})

		It("fails for missing explicit dotenv files", func() {
			Expect(LoadDotEnv(filepath.Join(dir, "nada.env"))).To(
				MatchError(ContainSubstring("cannot load dotenv files")))
		})

	})

})
