package engine

// Kind distinguishes the two dependency relations a Dependency can
// carry. The lattice is existence <= content: content subsumes
// existence for propagation purposes (destroying or modifying the
// target invalidates the source either way), and an existence edge may
// be upgraded to content but never downgraded.
type Kind int

const (
	KindExistence Kind = iota
	KindContent
)

func (k Kind) String() string {
	if k == KindContent {
		return "content"
	}
	return "existence"
}
