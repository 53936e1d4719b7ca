package theme

// Theme defines all colors used throughout the application with semantic naming.
var (
	// Brand colors
	IceColor  = "#8be9fd" // ice blue for branding and the title preview
	BeanColor = "#c08552" // roasted bean brown for counts and buttons

	// Text colors
	TextPrimary     = "#ffffff" // 255 - white text for focused/active elements
	TextDescription = "#c9c9c9" // 250 - light gray for descriptions and help text
	TextMuted       = "#7a7a7a" // 240 - dark gray for very subtle text

	// Border colors
	BorderActive = "#c9c9c9" // 250
	BorderMuted  = "#7a7a7a" // 240

	// Status/semantic colors
	SuccessStatus = "#50fa7b" // 83 - green for running animation, confirmed orders
	WarningStatus = "#ffb86c" // 214 - orange for paused animation
	ErrorStatus   = "#ff5555" // 196 - red for errors

	// UI colors
	DialogBg       = "#262626" // 235 - confirm modal background
	ButtonBg       = "#585858" // 240 - neutral button background
	SeparatorColor = "#4a4a4a" // 238 - very dark gray for separators
)
