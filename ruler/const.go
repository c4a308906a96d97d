package ruler

const (
	// PixelsPerMillimeter assumes a 96 DPI reference display.
	PixelsPerMillimeter = 96 / 25.4

	// BorderBandWidth is the thickness of the resizable strip along each edge.
	BorderBandWidth = 5

	// MinSize keeps an interior strip to grab for moving.
	MinSize = 2*BorderBandWidth + 1

	// KeyStep and FineKeyStep are the arrow-key move/resize increments.
	KeyStep     = 10
	FineKeyStep = 1

	// DefaultLabelHeight approximates a 10pt label line.
	DefaultLabelHeight = 16

	// sizeLabelX is where the size label starts on the long axis.
	sizeLabelX = 10

	majorTick = 15
	midTick   = 10
	minorTick = 5
)
