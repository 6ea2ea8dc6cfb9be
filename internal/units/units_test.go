package units_test

import (
	"math/big"

	"soko/internal/units"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	Describe("EnergyToSmallest", func() {
		It("scales whole quantities by 10^8", func() {
			amount, err := units.EnergyToSmallest("1000")
			Expect(err).NotTo(HaveOccurred())
			Expect(amount).To(Equal(big.NewInt(100000000000)))
		})

		It("accepts up to eight decimal places", func() {
			amount, err := units.EnergyToSmallest("0.00000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(amount).To(Equal(big.NewInt(1)))
		})

		It("trims surrounding whitespace", func() {
			amount, err := units.EnergyToSmallest(" 2.5 ")
			Expect(err).NotTo(HaveOccurred())
			Expect(amount).To(Equal(big.NewInt(250000000)))
		})

		DescribeTable("rejects invalid input",
			func(input string) {
				_, err := units.EnergyToSmallest(input)
				Expect(err).To(MatchError(units.ErrInvalidQuantity))
			},
			Entry("empty", ""),
			Entry("not a number", "ten"),
			Entry("zero", "0"),
			Entry("negative", "-5"),
			Entry("too precise", "0.000000001"),
		)
	})

	Describe("CentsToSmallest", func() {
		It("scales cents by 10^4", func() {
			price, err := units.CentsToSmallest("15")
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(big.NewInt(150000)))
		})

		DescribeTable("rejects invalid input",
			func(input string) {
				_, err := units.CentsToSmallest(input)
				Expect(err).To(MatchError(units.ErrInvalidQuantity))
			},
			Entry("fractional cents", "15.5"),
			Entry("zero", "0"),
			Entry("negative", "-1"),
			Entry("garbage", "1e"),
		)
	})

	Describe("formatting", func() {
		It("round trips energy amounts", func() {
			amount, err := units.EnergyToSmallest("1000")
			Expect(err).NotTo(HaveOccurred())
			Expect(units.FormatEnergy(amount)).To(Equal("1000"))
			Expect(units.FormatEnergy(big.NewInt(150000000))).To(Equal("1.5"))
		})

		It("round trips prices", func() {
			price, err := units.CentsToSmallest("15")
			Expect(err).NotTo(HaveOccurred())
			Expect(units.FormatCents(price)).To(Equal("15"))
		})

		It("formats nil as zero", func() {
			Expect(units.FormatEnergy(nil)).To(Equal("0"))
			Expect(units.FormatCents(nil)).To(Equal("0"))
		})
	})
})
