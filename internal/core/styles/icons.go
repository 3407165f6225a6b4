package styles

var (
	IconGitBranch = "\ue725" // git branch glyph
	IconCheck     = "✔"
	IconCross     = "✘"
	IconWarning   = "!"
	IconInfo      = "•"
	IconClipboard = "📋"
)
