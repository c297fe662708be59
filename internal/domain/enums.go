package domain

type Emphasis string

const (
	EmphasisNone    Emphasis = ""
	EmphasisProtein Emphasis = "protein"
	EmphasisFiber   Emphasis = "fiber"
	EmphasisQuick   Emphasis = "quick"
	EmphasisComfort Emphasis = "comfort"
	EmphasisPantry  Emphasis = "pantry"
)

// ValidEmphases lists the accepted --boost values in display order.
var ValidEmphases = []Emphasis{
	EmphasisProtein,
	EmphasisFiber,
	EmphasisQuick,
	EmphasisComfort,
	EmphasisPantry,
}

type AvailabilitySource string

const (
	SourceStatic   AvailabilitySource = "static"
	SourceCalendar AvailabilitySource = "calendar"
	SourceFallback AvailabilitySource = "fallback"
)
