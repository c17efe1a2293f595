package palette_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glitch/internal/palette"
)

func rgb(r, g, b uint8) palette.RGB {
	return palette.RGB{R: r, G: g, B: b}
}

var _ = Describe("Extraction", func() {
	var (
		red   = rgb(200, 30, 30)
		blue  = rgb(20, 120, 200)
		white = rgb(250, 250, 250)
	)

	Describe("Sample", func() {
		It("lifts a uniform near-black image halfway toward white", func() {
			bg, err := palette.Sample(image(4, 4, opaque(rgb(10, 10, 10), 16)))
			Expect(err).NotTo(HaveOccurred())
			for _, c := range bg {
				Expect(c).To(Equal(rgb(133, 133, 133)))
			}
		})

		It("repeats the top bucket when fewer than four are populated", func() {
			px := image(4, 4,
				opaque(red, 8),
				opaque(blue, 4),
				opaque(white, 3),
				fill{c: palette.Black, alpha: 0, n: 1},
			)
			bg, err := palette.Sample(px)
			Expect(err).NotTo(HaveOccurred())
			Expect(bg).To(Equal([4]palette.RGB{red, red, blue, rgb(150, 150, 150)}))
		})

		It("keeps backgrounds ordered after correction", func() {
			px := image(11, 1,
				opaque(palette.Black, 5),
				opaque(rgb(40, 40, 40), 3),
				opaque(rgb(128, 64, 32), 2),
				opaque(palette.White, 1),
			)
			bg, err := palette.Sample(px)
			Expect(err).NotTo(HaveOccurred())
			Expect(bg).To(Equal([4]palette.RGB{
				rgb(128, 128, 128),
				rgb(172, 131, 110),
				rgb(148, 148, 148),
				rgb(153, 153, 153),
			}))
			for i := 1; i < 4; i++ {
				Expect(palette.Luminance(bg[i])).To(BeNumerically(">=", palette.Luminance(bg[i-1])))
			}
		})

		It("re-sorts when correction lifts a dark color past its neighbour", func() {
			dark, mid := rgb(10, 10, 10), rgb(100, 100, 100)
			Expect(palette.Luminance(dark)).To(BeNumerically("<", palette.Luminance(mid)))
			Expect(palette.Correct(mid)).To(Equal(mid))
			Expect(palette.Luminance(palette.Correct(dark))).To(BeNumerically(">", palette.Luminance(mid)))

			px := image(10, 1,
				opaque(dark, 4),
				opaque(mid, 3),
				opaque(rgb(200, 200, 200), 2),
				opaque(rgb(230, 230, 230), 1),
			)
			bg, err := palette.Sample(px)
			Expect(err).NotTo(HaveOccurred())
			Expect(bg).To(Equal([4]palette.RGB{
				mid,
				rgb(133, 133, 133),
				rgb(200, 200, 200),
				rgb(230, 230, 230),
			}))

			p := palette.Derive(bg, "")
			Expect(p.FG(palette.Pipe)).To(Equal(palette.Mix(mid, palette.White, 0.3)))
		})

		It("samples on a stride for wide images", func() {
			px := palette.Pixels{Pix: make([]uint8, 200*10*4), Width: 200, Height: 10}
			for i := 0; i < 200*10; i++ {
				c := rgb(0, 0, 255)
				if (i%200)%2 == 0 {
					c = rgb(255, 0, 0)
				}
				copy(px.Pix[i*4:], []uint8{c.R, c.G, c.B, 255})
			}
			Expect(px.Stride()).To(Equal(2))
			bg, err := palette.Sample(px)
			Expect(err).NotTo(HaveOccurred())
			Expect(bg).To(HaveEach(rgb(255, 0, 0)))
		})

		It("is deterministic", func() {
			px := image(4, 4, opaque(red, 8), opaque(blue, 8))
			a, _ := palette.Sample(px)
			b, _ := palette.Sample(px)
			Expect(a).To(Equal(b))
		})

		DescribeTable("soft failures",
			func(px palette.Pixels, want error) {
				_, err := palette.Sample(px)
				Expect(err).To(MatchError(want))
			},
			Entry("zero width", palette.Pixels{Width: 0, Height: 4}, palette.ErrImageEmpty),
			Entry("short buffer", palette.Pixels{Pix: make([]uint8, 8), Width: 4, Height: 4}, palette.ErrImageEmpty),
			Entry("fully transparent", image(2, 2, fill{c: rgb(5, 5, 5), alpha: 9, n: 4}), palette.ErrNoBuckets),
		)
	})

	Describe("Rank", func() {
		It("keeps the earlier bucket on equal counts", func() {
			buckets := []palette.Bucket{
				{Key: 1, Count: 3},
				{Key: 2, Count: 5},
				{Key: 3, Count: 3},
				{Key: 4, Count: 1},
				{Key: 5, Count: 5},
			}
			picks, filled := palette.Rank(buckets)
			Expect(filled).To(Equal(4))
			keys := []int{picks[0].Key, picks[1].Key, picks[2].Key, picks[3].Key}
			Expect(keys).To(Equal([]int{2, 5, 1, 3}))
		})
	})

	Describe("Derive", func() {
		It("pairs each background with a readable foreground", func() {
			p := palette.Derive([4]palette.RGB{red, red, blue, rgb(150, 150, 150)}, "logo.png")
			Expect(p.Foreground).To(Equal([palette.RoleCount]palette.RGB{
				rgb(225, 131, 131),
				rgb(225, 131, 131),
				rgb(126, 181, 225),
				rgb(197, 197, 197),
				rgb(217, 98, 98),
			}))
			Expect(p.FG(palette.Pipe)).To(Equal(rgb(217, 98, 98)))
			Expect(p.Source).To(Equal("logo.png"))
		})

		It("darkens foregrounds on bright backgrounds", func() {
			Expect(palette.DeriveForeground(palette.White)).To(Equal(rgb(166, 166, 166)))
		})

		It("derives the uniform fixture end to end", func() {
			p, err := palette.FromPixels(image(4, 4, opaque(rgb(10, 10, 10), 16)), "gray.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.RowFG(2)).To(Equal(rgb(188, 188, 188)))
			Expect(p.FG(palette.Pipe)).To(Equal(rgb(170, 170, 170)))
		})
	})
})
