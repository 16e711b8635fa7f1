package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type run struct {
	code   int
	stdout string
	stderr string
}

func invoke(stdin string, args ...string) run {
	var out, errOut bytes.Buffer
	code := execute(args, strings.NewReader(stdin), &out, &errOut)
	return run{code: code, stdout: out.String(), stderr: errOut.String()}
}

var _ = Describe("sparkline", func() {
	Context("reading data", func() {
		It("renders numbers from arguments", func() {
			r := invoke("", "0.5", "1.2", "3.5", "7.3", "8", "12.5,", "13.2,", "15.0,", "14.2,", "11.8,", "6.1,", "1.9")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▁▁▂▄▅▇▇██▆▄▂\n"))
			Expect(r.stderr).To(BeEmpty())
		})

		It("renders numbers from stdin", func() {
			r := invoke("1 5 22 13 5\n")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▁▂█▅▂\n"))
		})

		It("keeps negative numbers as data", func() {
			r := invoke("", "1", "1", "-2", "3", "-5", "8", "-13")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▆▆▅▆▄█▁\n"))
		})

		It("keeps a negative flag value with its flag", func() {
			r := invoke("", "--min", "-7", "0", "7", "14")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▃▆█\n"))
		})

		It("keeps dash-prefixed words after the first value as data", func() {
			r := invoke("", "1", "-x", "3", "--dots")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("⢸\n"))

			r = invoke("", "0", "-ms", "7")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▁█\n"))
		})

		It("still rejects an unknown flag before any data", func() {
			r := invoke("", "-x", "1", "3")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("unknown shorthand flag"))
		})

		It("reads a data file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "data.txt")
			Expect(os.WriteFile(path, []byte("0\n7\n"), 0644)).To(Succeed())

			r := invoke("ignored 99 99 99", "--file", path)
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▁█\n"))
		})

		It("fails on a missing data file", func() {
			r := invoke("", "-f", filepath.Join(GinkgoT().TempDir(), "missing"))
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(HavePrefix("error:"))
		})
	})

	Context("invalid input", func() {
		DescribeTable("reports a single terminal failure",
			func(stdin string) {
				r := invoke(stdin)
				Expect(r.code).To(Equal(1))
				Expect(r.stdout).To(BeEmpty())
				Expect(r.stderr).To(Equal(renderFailure + "\n"))
			},
			Entry("empty", ""),
			Entry("words only", "abc nan inf"),
			Entry("one value", "42"),
		)

		It("honours a higher minimum value count", func() {
			r := invoke("1 2 3", "--min-values", "4")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring(renderFailure))
		})

		It("explains failures when verbose", func() {
			r := invoke("42", "--verbose")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("too few values"))
		})
	})

	Context("modes and ranges", func() {
		It("draws dots", func() {
			r := invoke("1 2 3 4 5", "--dots")
			Expect(r.stdout).To(Equal("⢀⣴⡇\n"))
		})

		It("accepts --mode", func() {
			r := invoke("1 2 3 4 5", "--mode", "dots")
			Expect(r.stdout).To(Equal("⢀⣴⡇\n"))
		})

		It("rejects an unknown mode", func() {
			r := invoke("1 2", "--mode", "pie")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("unknown render mode"))
		})

		It("applies an explicit zero-width range", func() {
			r := invoke("5 5 5", "--min", "0", "--max", "0")
			Expect(r.stdout).To(Equal("▁▁▁\n"))
		})

		It("clamps values outside an explicit range", func() {
			r := invoke("-10 0 5 10 20", "--min", "0", "--max", "10")
			Expect(r.stdout).To(Equal("▁▁▅██\n"))
		})

		It("uses presets", func() {
			r := invoke("0 50 100", "--preset", "percent")
			Expect(r.stdout).To(Equal("▁▅█\n"))

			r = invoke("0 50 100", "--preset", "nope")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("unknown preset"))
		})

		It("lets flags override the config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "cfg.yaml")
			Expect(os.WriteFile(path, []byte("mode: dots\nrange:\n  max: 100\n"), 0644)).To(Succeed())

			r := invoke("0 8", "--config", path)
			Expect(r.stdout).To(Equal("⢸\n"))

			r = invoke("0 50", "--config", path, "--dots=false")
			Expect(r.stdout).To(Equal("▁▅\n"))
		})

		It("warns that dots ignore the range", func() {
			r := invoke("0 8", "--dots", "--max", "100")
			Expect(r.stdout).To(Equal("⢸\n"))
			Expect(r.stderr).To(ContainSubstring("range is ignored"))
		})
	})

	Context("output", func() {
		It("drops glyphs the encoding cannot represent", func() {
			r := invoke("0.5 1.2 3.5 7.3 8 12.5 13.2 15.0 14.2 11.8 6.1 1.9", "--encoding", "ascii")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("\n"))
		})

		It("rejects an unknown encoding", func() {
			r := invoke("1 2", "--encoding", "morse")
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("unknown encoding"))
		})

		It("prints a JSON report", func() {
			r := invoke("1 5 22 13 5", "--json")
			Expect(r.code).To(Equal(0))

			var report map[string]any
			Expect(json.Unmarshal([]byte(r.stdout), &report)).To(Succeed())
			Expect(report).To(HaveKeyWithValue("line", "▁▂█▅▂"))
			Expect(report).To(HaveKeyWithValue("mode", "bars"))
			Expect(report).To(HaveKeyWithValue("min", 1.0))
			Expect(report).To(HaveKeyWithValue("max", 22.0))
			Expect(report).To(HaveKeyWithValue("count", 5.0))
		})

		It("prints the version", func() {
			r := invoke("", "--version")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("dev\n"))
		})

		It("saves a preset as a config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "percent.yaml")
			r := invoke("", "presets", "percent", "--save", path)
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(ContainSubstring("saved preset percent"))

			r = invoke("0 50 100", "--config", path)
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(Equal("▁▅█\n"))
		})

		It("needs a preset name to save", func() {
			r := invoke("", "presets", "--save", filepath.Join(GinkgoT().TempDir(), "x.yaml"))
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("needs a preset name"))

			r = invoke("", "presets", "nope", "--save", filepath.Join(GinkgoT().TempDir(), "x.yaml"))
			Expect(r.code).To(Equal(1))
			Expect(r.stderr).To(ContainSubstring("unknown preset"))
		})

		It("describes a single preset", func() {
			r := invoke("", "presets", "dense")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(ContainSubstring("mode=dots"))
			Expect(r.stdout).NotTo(ContainSubstring("percent"))
		})

		It("lists presets", func() {
			r := invoke("", "presets")
			Expect(r.code).To(Equal(0))
			Expect(r.stdout).To(ContainSubstring("percent"))
			Expect(r.stdout).To(ContainSubstring("range=0..100"))
			Expect(r.stdout).To(ContainSubstring("dense"))
		})
	})
})

var _ = Describe("protectNegatives", func() {
	It("leaves arguments without negative numbers alone", func() {
		args := []string{"--dots", "1", "2"}
		Expect(protectNegatives(newRootCmd(nil), args)).To(Equal(args))
	})

	It("moves data behind a separator", func() {
		got := protectNegatives(newRootCmd(nil), []string{"3", "--encoding", "utf-8", "-4", "--dots", "-.5"})
		Expect(got).To(Equal([]string{"--encoding", "utf-8", "--dots", "--", "3", "-4", "-.5"}))
	})

	It("moves unknown dash words that follow data", func() {
		got := protectNegatives(newRootCmd(nil), []string{"1", "-x", "--dots", "3"})
		Expect(got).To(Equal([]string{"--dots", "--", "1", "-x", "3"}))
	})

	It("leaves subcommand invocations alone", func() {
		args := []string{"presets", "unit", "--save", "-out.yaml"}
		Expect(protectNegatives(newRootCmd(nil), args)).To(Equal(args))
	})

	It("keeps arguments after an existing separator", func() {
		got := protectNegatives(newRootCmd(nil), []string{"-1", "--", "--dots"})
		Expect(got).To(Equal([]string{"--", "-1", "--dots"}))
	})
})
