package domain

// Pair identifies a quoted exchange rate. Direction matters:
// USD/KES is not the same series as KES/USD.
type Pair struct {
	Base   string
	Target string
}

func (p Pair) String() string {
	return p.Base + "/" + p.Target
}
