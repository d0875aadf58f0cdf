// Package band maps radio frequencies to amateur bands and to the segments
// and notable frequencies of a regional band plan.
package band

// Band is an amateur radio band, named by its wavelength.
type Band string

// All amateur bands known to the resolver, in ascending frequency order.
const (
	Band2190m Band = "2190m"
	Band630m  Band = "630m"
	Band560m  Band = "560m"
	Band160m  Band = "160m"
	Band80m   Band = "80m"
	Band60m   Band = "60m"
	Band40m   Band = "40m"
	Band30m   Band = "30m"
	Band20m   Band = "20m"
	Band17m   Band = "17m"
	Band15m   Band = "15m"
	Band12m   Band = "12m"
	Band10m   Band = "10m"
	Band6m    Band = "6m"
	Band4m    Band = "4m"
	Band2m    Band = "2m"
	Band1m25  Band = "1.25m"
	Band70cm  Band = "70cm"
	Band33cm  Band = "33cm"
	Band23cm  Band = "23cm"
	Band13cm  Band = "13cm"
	Band9cm   Band = "9cm"
	Band6cm   Band = "6cm"
	Band3cm   Band = "3cm"
	Band1cm25 Band = "1.25cm"
	Band6mm   Band = "6mm"
	Band4mm   Band = "4mm"
	Band2mm5  Band = "2.5mm"
	Band2mm   Band = "2mm"
	Band1mm   Band = "1mm"
	BandNone  Band = ""
)

type bandLimits struct {
	band Band
	rng  Range
}

// bandTable lists every band with its closed limits in Hz. The limits are the
// widest allocation across regions so that a band lookup never depends on
// where the station is.
var bandTable = []bandLimits{
	{Band2190m, NewRange(136_000, 137_000)},
	{Band630m, NewRange(472_000, 479_000)},
	{Band560m, NewRange(501_000, 504_000)},
	{Band160m, NewRange(1_800_000, 2_000_000)},
	{Band80m, NewRange(3_500_000, 4_000_000)},
	{Band60m, NewRange(5_102_000, 5_406_500)},
	{Band40m, NewRange(7_000_000, 7_300_000)},
	{Band30m, NewRange(10_100_000, 10_150_000)},
	{Band20m, NewRange(14_000_000, 14_350_000)},
	{Band17m, NewRange(18_068_000, 18_168_000)},
	{Band15m, NewRange(21_000_000, 21_450_000)},
	{Band12m, NewRange(24_890_000, 24_990_000)},
	{Band10m, NewRange(28_000_000, 29_700_000)},
	// IARU Region 1 allocates 50-52 MHz; 54 MHz covers Regions 2 and 3.
	{Band6m, NewRange(50_000_000, 54_000_000)},
	{Band4m, NewRange(70_000_000, 71_000_000)},
	{Band2m, NewRange(144_000_000, 148_000_000)},
	{Band1m25, NewRange(222_000_000, 225_000_000)},
	{Band70cm, NewRange(420_000_000, 450_000_000)},
	{Band33cm, NewRange(902_000_000, 928_000_000)},
	{Band23cm, NewRange(1_240_000_000, 1_300_000_000)},
	{Band13cm, NewRange(2_300_000_000, 2_450_000_000)},
	{Band9cm, NewRange(3_300_000_000, 3_500_000_000)},
	{Band6cm, NewRange(5_650_000_000, 5_925_000_000)},
	{Band3cm, NewRange(10_000_000_000, 10_500_000_000)},
	{Band1cm25, NewRange(24_000_000_000, 24_250_000_000)},
	{Band6mm, NewRange(47_000_000_000, 47_200_000_000)},
	{Band4mm, NewRange(75_500_000_000, 81_000_000_000)},
	{Band2mm5, NewRange(119_980_000_000, 120_020_000_000)},
	{Band2mm, NewRange(142_000_000_000, 149_000_000_000)},
	{Band1mm, NewRange(241_000_000_000, 250_000_000_000)},
}

var bandIndex = func() map[Band]Range {
	m := make(map[Band]Range, len(bandTable))
	for _, b := range bandTable {
		m[b.band] = b.rng
	}
	return m
}()

// All returns every band in ascending frequency order.
func All() []Band {
	out := make([]Band, len(bandTable))
	for i, b := range bandTable {
		out[i] = b.band
	}
	return out
}

// ByName returns the band with the given name, for example "20m".
func ByName(name string) (Band, bool) {
	b := Band(name)
	_, ok := bandIndex[b]
	if !ok {
		return BandNone, false
	}
	return b, true
}

// Range returns the closed frequency limits of the band. The zero Range is
// returned for an unknown band.
func (b Band) Range() Range {
	return bandIndex[b]
}

// Contains reports whether f lies inside the band.
func (b Band) Contains(f Frequency) bool {
	r, ok := bandIndex[b]
	return ok && r.Contains(f)
}

// String implements fmt.Stringer.
func (b Band) String() string {
	return string(b)
}
