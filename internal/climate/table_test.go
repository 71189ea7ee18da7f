package climate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const gistempSample = `Land-Ocean: Global Means
Year,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,J-D,D-N,DJF,MAM,JJA,SON
1880,-.17,-.23,-.08,-.15,-.09,-.20,-.17,-.09,-.13,-.22,-.21,-.17,-.16,***,***,-.11,-.15,-.19
1881,-.19,-.13,.04,.06,.07,-.18,.01,-.03,-.15,-.21,-.18,-.07,-.08,-.09,-.17,.06,-.06,-.18
2023,.87,.97,1.20,1.00,.94,1.07,1.19,1.19,1.47,1.33,1.42,1.37,1.17,1.14,1.01,1.05,1.15,1.41
2024,1.24,1.43,1.39,***,***,***,***,***,***,***,***,***,***,***,***,***,***,***
`

var _ = Describe("Load", func() {
	It("skips title lines and trailing summary columns", func() {
		t, err := Load(strings.NewReader(gistempSample), "")
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Months).To(Equal([]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}))
		Expect(t.Len()).To(Equal(4))
		Expect(t.Rows[0].Year).To(Equal("1880"))
		Expect(t.Cell(0, 0).Value).To(BeNumerically("~", -0.17, 1e-12))
		Expect(t.Cell(2, 8).Value).To(BeNumerically("~", 1.47, 1e-12))
	})

	It("marks the missing token instead of failing", func() {
		t, err := Load(strings.NewReader(gistempSample), DefaultMissing)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Cell(3, 2).Missing).To(BeFalse())
		for m := 3; m < MonthsPerYear; m++ {
			Expect(t.Cell(3, m).Missing).To(BeTrue(), "month %d", m)
		}
	})

	It("honours a custom missing token", func() {
		data := strings.ReplaceAll(gistempSample, "***", "NA")
		t, err := Load(strings.NewReader(data), "NA")
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Cell(3, 11).Missing).To(BeTrue())
	})

	It("reports the line and column of a malformed cell", func() {
		data := strings.Replace(gistempSample, "1881,-.19,-.13", "1881,-.19,abc", 1)
		_, err := Load(strings.NewReader(data), "")

		var perr *ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Line).To(Equal(4))
		Expect(perr.Column).To(Equal("Feb"))
		Expect(perr.Value).To(Equal("abc"))
	})

	It("rejects NaN and infinite anomalies", func() {
		for _, bad := range []string{"NaN", "Inf", "-Infinity"} {
			data := strings.Replace(gistempSample, "1881,-.19,-.13", "1881,-.19,"+bad, 1)
			_, err := Load(strings.NewReader(data), "")

			Expect(errors.Is(err, ErrNotFinite)).To(BeTrue(), "value %s", bad)
			var perr *ParseError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Column).To(Equal("Feb"))
			Expect(perr.Value).To(Equal(bad))
		}
	})

	It("accepts a header with a byte order mark", func() {
		t, err := Load(strings.NewReader("\ufeff"+gistempSample[strings.Index(gistempSample, "Year"):]), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(4))
		Expect(t.Months[0]).To(Equal("Jan"))
	})

	It("rejects short rows", func() {
		data := gistempSample + "2025,1.1,1.2\n"
		_, err := Load(strings.NewReader(data), "")
		Expect(errors.Is(err, ErrColumnCount)).To(BeTrue())
	})

	It("requires a Year header", func() {
		_, err := Load(strings.NewReader("a,b,c\n1,2,3\n"), "")
		Expect(err).To(MatchError(ErrNoHeader))
	})

	It("requires at least one data row", func() {
		header := strings.Split(gistempSample, "\n")[1]
		_, err := Load(strings.NewReader(header+"\n"), "")
		Expect(err).To(MatchError(ErrEmptyTable))
	})

	It("opens files from disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "global-temp.csv")
		Expect(os.WriteFile(path, []byte(gistempSample), 0644)).To(Succeed())

		t, err := Open(path, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Len()).To(Equal(4))

		_, err = Open(filepath.Join(GinkgoT().TempDir(), "nope.csv"), "")
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})
