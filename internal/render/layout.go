package render

// LeadLabels are the twelve short leads in display order.
var LeadLabels = []string{
	"DI", "DII", "DIII", "aVR", "aVL", "aVF",
	"V1", "V2", "V3", "V4", "V5", "V6",
}

// LongStripLabel names the extended rhythm strip painted under the leads.
const LongStripLabel = "DII long"

// Band is the horizontal region of the surface one trace is painted into.
type Band struct {
	Label  string
	Top    float64
	Height float64
}

// Mid returns the vertical centre of the band, the trace's zero line.
func (b Band) Mid() float64 { return b.Top + b.Height/2 }

// Layout splits a surface of the given height into one band per lead plus the long strip.
func Layout(height float64) []Band {
	n := len(LeadLabels) + 1
	h := height / float64(n)
	bands := make([]Band, 0, n)
	for i, l := range LeadLabels {
		bands = append(bands, Band{Label: l, Top: float64(i) * h, Height: h})
	}
	return append(bands, Band{Label: LongStripLabel, Top: float64(n-1) * h, Height: h})
}
