package palette_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glitch/internal/palette"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *palette.Store
		p     palette.Palette
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		store = palette.NewStore(filepath.Join(dir, "glitch", "color.config"))
		p = palette.Derive([4]palette.RGB{rgb(20, 20, 40), rgb(60, 30, 90), rgb(120, 160, 90), rgb(240, 230, 200)}, "/tmp/logo.png")
	})

	It("round-trips all nine colors and the source", func() {
		Expect(store.Save(p)).To(Succeed())
		got, res, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(p))
		Expect(res.Applied).To(Equal(10))
	})

	It("keeps a source with line breaks on one line", func() {
		p.Source = "/tmp/evil\nBG1=#ffffff\r\nFG_DIS=#000000.png"
		Expect(store.Save(p)).To(Succeed())

		data, err := os.ReadFile(store.Path())
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Split(strings.TrimSpace(string(data)), "\n")).To(HaveLen(12))

		got, res, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Applied).To(Equal(10))
		Expect(got.Background).To(Equal(p.Background))
		Expect(got.Foreground).To(Equal(p.Foreground))
		Expect(got.Source).To(Equal("/tmp/evil BG1=#ffffff FG_DIS=#000000.png"))
	})

	It("writes the documented key layout", func() {
		Expect(store.Save(p)).To(Succeed())
		data, err := os.ReadFile(store.Path())
		Expect(err).NotTo(HaveOccurred())
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		Expect(lines).To(HaveLen(12))
		Expect(lines[0]).To(Equal("# color.config"))
		Expect(lines[1]).To(Equal("# Auto-generated from /tmp/logo.png"))
		Expect(lines[2]).To(Equal("BG1=#141428"))
		Expect(lines[10]).To(HavePrefix("FG_PIPE=#"))
		Expect(lines[11]).To(Equal("PRIMARY=/tmp/logo.png"))
	})

	It("leaves no temp files behind", func() {
		Expect(store.Save(p)).To(Succeed())
		Expect(store.Save(p)).To(Succeed())
		entries, err := os.ReadDir(filepath.Dir(store.Path()))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("accepts upper-case hex and ignores junk lines", func() {
		src := strings.Join([]string{
			"# hand edited",
			"BG1=#AABBCC",
			"no equals sign here",
			"COLOR=#123456",
			"FG_MEM=#Ff0010",
			"BG2=blue",
			"PRIMARY=wallpaper",
		}, "\n")
		got, res, err := palette.Decode(strings.NewReader(src))
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Background[0]).To(Equal(rgb(0xaa, 0xbb, 0xcc)))
		Expect(got.FG(palette.Mem)).To(Equal(rgb(0xff, 0x00, 0x10)))
		Expect(got.Background[1]).To(Equal(palette.Default().Background[1]))
		Expect(got.Source).To(Equal("wallpaper"))
		Expect(res).To(Equal(palette.LoadResult{Applied: 3, Skipped: 2, Unknown: 1}))
	})

	It("reports a missing file as a read failure", func() {
		_, _, err := store.Load()
		Expect(errors.Is(err, palette.ErrConfigRead)).To(BeTrue())
	})

	It("reports an unwritable location as a write failure", func() {
		blocker := filepath.Join(dir, "file")
		Expect(os.WriteFile(blocker, []byte("x"), 0644)).To(Succeed())
		bad := palette.NewStore(filepath.Join(blocker, "color.config"))
		Expect(bad.Save(p)).To(MatchError(palette.ErrConfigWrite))
	})
})

var _ = Describe("Resolve", func() {
	var store *palette.Store

	BeforeEach(func() {
		store = palette.NewStore(filepath.Join(GinkgoT().TempDir(), "color.config"))
	})

	It("prefers the image and persists it", func() {
		dec := stubDecoder{px: image(4, 4, opaque(rgb(10, 10, 10), 16))}
		res := palette.Resolve(palette.Options{ImagePath: "gray.png", Decoder: dec, Store: store})
		Expect(res.Tier).To(Equal(palette.TierImage))
		Expect(res.Persisted).To(BeTrue())
		Expect(res.Palette.Background[0]).To(Equal(rgb(133, 133, 133)))

		stored, _, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(res.Palette))
	})

	It("does not write when read-only", func() {
		dec := stubDecoder{px: image(4, 4, opaque(rgb(10, 10, 10), 16))}
		res := palette.Resolve(palette.Options{ImagePath: "gray.png", Decoder: dec, Store: store, ReadOnly: true})
		Expect(res.Persisted).To(BeFalse())
		_, err := os.Stat(store.Path())
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("falls back to the stored palette when decoding fails", func() {
		saved := palette.Derive([4]palette.RGB{rgb(90, 20, 20), rgb(90, 20, 20), rgb(90, 20, 20), rgb(90, 20, 20)}, "old.png")
		Expect(store.Save(saved)).To(Succeed())

		dec := stubDecoder{err: palette.ErrImageDecode}
		res := palette.Resolve(palette.Options{ImagePath: "broken.png", Decoder: dec, Store: store})
		Expect(res.Tier).To(Equal(palette.TierConfig))
		Expect(res.Palette).To(Equal(saved))
		Expect(res.Skipped).To(HaveLen(1))

		var se *palette.SourceError
		Expect(errors.As(res.Skipped[0], &se)).To(BeTrue())
		Expect(se.Tier).To(Equal(palette.TierImage))
		Expect(res.Skipped[0]).To(MatchError(palette.ErrImageDecode))
	})

	It("ends at the defaults when image and config both fail", func() {
		dec := stubDecoder{px: image(2, 2, fill{n: 4})}
		res := palette.Resolve(palette.Options{ImagePath: "clear.png", Decoder: dec, Store: store})
		Expect(res.Tier).To(Equal(palette.TierDefault))
		Expect(res.Skipped).To(HaveLen(2))
		Expect(res.Skipped[0]).To(MatchError(palette.ErrNoBuckets))
		Expect(res.Skipped[1]).To(MatchError(palette.ErrConfigRead))
	})

	It("returns defaults with nothing configured", func() {
		res := palette.Resolve(palette.Options{})
		Expect(res.Tier).To(Equal(palette.TierDefault))
		Expect(res.Palette).To(Equal(palette.Default()))
		Expect(res.Skipped).To(BeEmpty())
	})
})
