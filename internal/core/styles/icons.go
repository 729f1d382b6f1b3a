package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconChevronDown  = "▾"
	IconChevronUp    = "▴"
	IconImage        = ""     // 
	IconImageMissing = "\U000F082A" // 󰠪
	IconLink         = ""     // 
	IconComment      = ""     // 
	IconEdit         = ""     // 
	IconPresentation = "\U000F0A1D" // 󰨝
	IconCursor       = "›"
)

// Toast icons
var (
	IconNotifyInfo    = "" // 
	IconNotifyWarning = "" // 
	IconNotifyError   = "" // 
)
