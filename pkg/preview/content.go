package preview

// Section is one titled block of the sample article.
type Section struct {
	Title string
	Body  string
}

// Sections is the sample article shown in the preview.
var Sections = []Section{
	{
		Title: "Designing for Quiet Focus",
		Body:  "Readability is less about aesthetic trends and more about predictability. The best reading interfaces simply stay out of the way, letting eyes settle into a steady cadence so the brain can process meaning at its own pace.",
	},
	{
		Title: "Principles of Comfortable Reading",
		Body:  "Comfort is a moving target. Some readers need generous line spacing; others prefer narrow columns to keep their place. Giving people control over these micro-adjustments is the most reliable shortcut to clarity.",
	},
	{
		Title: "Accessibility as a Default",
		Body:  "Accessibility features should not feel like add-ons. When inclusive options are part of the default experience, everyone benefits, especially people with low vision, dyslexia, or attention differences.",
	},
}

// Tips are the muted paragraphs below the divider.
var Tips = []string{
	"Tip: Try pairing modest paragraph spacing with a slightly wider line height for a calmer rhythm. If you feel your eyes jumping lines, reduce the column width until each line feels manageable.",
	"Your selections are kept in memory for this session only, so you can adjust quickly without losing your spot.",
}
