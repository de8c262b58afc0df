package analysis

import (
	"github.com/Optimusprime44/Steganography/internal/lsb"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Report summarizes the least-significant-bit plane of a sample stream.
type Report struct {
	Samples  int `json:"samples"`
	Capacity int `json:"capacity"`
	// OnesRatio is the fraction of samples whose LSB is 1.
	OnesRatio float64 `json:"ones_ratio"`
	// ChiSquare compares each pair of values 2k, 2k+1 against their mean.
	ChiSquare        float64 `json:"chi_square"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
	// PValue close to 1 means the pairs are as balanced as a fully embedded
	// LSB plane would make them.
	PValue float64 `json:"p_value"`
	// Marker reports whether an end-of-message marker was found.
	Marker bool `json:"marker"`
	// MessageLen is the number of payload bits before the marker.
	MessageLen int `json:"message_bits"`
}

// Analyze runs the pairs-of-values chi-square test over samples.
// Pairs with no samples are skipped. With fewer than two pairs only the
// counts are filled in.
func Analyze(samples []uint8) Report {
	r := Report{
		Samples:  len(samples),
		Capacity: lsb.Capacity(len(samples)),
	}
	if len(samples) == 0 {
		return r
	}
	if payload, ok := lsb.Extract(samples); ok {
		r.Marker = true
		r.MessageLen = len(payload)
	}

	var hist [256]float64
	bits := make([]float64, len(samples))
	for i, s := range samples {
		hist[s]++
		bits[i] = float64(s & 1)
	}
	r.OnesRatio = stat.Mean(bits, nil)

	var obs, exp []float64
	for k := 0; k < 256; k += 2 {
		mean := (hist[k] + hist[k+1]) / 2
		if mean == 0 {
			continue
		}
		obs = append(obs, hist[k])
		exp = append(exp, mean)
	}
	if len(obs) < 2 {
		return r
	}
	r.ChiSquare = stat.ChiSquare(obs, exp)
	r.DegreesOfFreedom = len(obs) - 1
	r.PValue = 1 - distuv.ChiSquared{K: float64(r.DegreesOfFreedom)}.CDF(r.ChiSquare)
	return r
}
