package imagepkg

// Tier selects the encode quality of a concatenation.
type Tier int

const (
	TierPreview Tier = iota
	TierExport
)

const (
	// PreviewMaxHeight is the largest target height still encoded as a preview.
	PreviewMaxHeight = 300

	PreviewQuality = 80
	ExportQuality  = 90
)

// TierFor picks the tier for a target height.
func TierFor(height int) Tier {
	if height <= PreviewMaxHeight {
		return TierPreview
	}
	return TierExport
}

// Quality returns the JPEG quality (1-100) used for the tier.
func (t Tier) Quality() int {
	if t == TierExport {
		return ExportQuality
	}
	return PreviewQuality
}

func (t Tier) String() string {
	switch t {
	case TierPreview:
		return "preview"
	case TierExport:
		return "export"
	default:
		return "unknown"
	}
}
