package novelgrab

// NoiseTags are element types removed in full, including descendants,
// before any text extraction. <ins> is the inline-ad slot element.
var NoiseTags = []string{"script", "style", "ins", "noscript"}

// Cleaner turns a captured HTML fragment into readable output.
// An empty return value is a valid outcome (nothing survived cleaning),
// not an error; callers treat it as a length-based failure signal.
type Cleaner interface {
	Clean(html string) string
}
