package game

// Rules decides whether a card may be placed on top of an occupied cell in regular play.
type Rules interface {
	CanCapture(selected, top Card) bool
	Name() string
}

const (
	AnyColorCapture    = "any-color"
	StrictColorCapture = "strict-color"
)

// StandardRules captures any strictly lower card, whatever its color (own cards included).
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) CanCapture(selected, top Card) bool {
	return selected.Rank.Beats(top.Rank)
}

func (sr *StandardRules) Name() string {
	return AnyColorCapture
}

// StrictColorRules only lets a card capture a strictly lower card of the opposing color.
type StrictColorRules struct{}

func NewStrictColorRules() *StrictColorRules {
	return &StrictColorRules{}
}

func (sr *StrictColorRules) CanCapture(selected, top Card) bool {
	return top.Color() != selected.Color() && selected.Rank.Beats(top.Rank)
}

func (sr *StrictColorRules) Name() string {
	return StrictColorCapture
}

// RulesByName resolves a capture mode name; unknown names fall back to the standard rules.
func RulesByName(name string) Rules {
	if name == StrictColorCapture {
		return NewStrictColorRules()
	}
	return NewStandardRules()
}
