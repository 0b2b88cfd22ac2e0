package domain

// OutputFormatID identifies one of the supported output formats.
type OutputFormatID string

const (
	FormatCSV     OutputFormatID = "csv"
	FormatList    OutputFormatID = "list"
	FormatBullets OutputFormatID = "bullets"
)

// KnownOutputFormats is the closed set of format ids that get a
// format-specific section in rendered prompts. Any other id degrades to the
// generic sections only.
var KnownOutputFormats = map[OutputFormatID]bool{
	FormatCSV:     true,
	FormatList:    true,
	FormatBullets: true,
}

// RunState is the lifecycle of a prompt generation run.
type RunState string

const (
	RunStateIdle        RunState = "idle"
	RunStateRefining    RunState = "refining"
	RunStateRendering   RunState = "rendering"
	RunStateEngineering RunState = "engineering"
	RunStateDone        RunState = "done"
	RunStateFailed      RunState = "failed"
)

// Icon is a closed identifier for the frontend icon set. Unknown names
// resolve to IconDefault; the free-text icon dispatch of earlier versions is
// gone on purpose.
type Icon string

const (
	IconDefault       Icon = "file"
	IconReceipt       Icon = "receipt"
	IconBookCopy      Icon = "book-copy"
	IconLandmark      Icon = "landmark"
	IconShoppingCart  Icon = "shopping-cart"
	IconShieldCheck   Icon = "shield-check"
	IconFileBadge     Icon = "file-badge"
	IconClipboardList Icon = "clipboard-list"
	IconShoppingBag   Icon = "shopping-bag"
	IconFileDigit     Icon = "file-digit"
	IconBookOpenCheck Icon = "book-open-check"
	IconFileCheck     Icon = "file-check"
	IconBadgeCheck    Icon = "badge-check"
	IconCalendarClock Icon = "calendar-clock"
	IconFileText      Icon = "file-text"
	IconFileSearch    Icon = "file-search"
	IconFilePlus      Icon = "file-plus"
	IconSpreadsheet   Icon = "file-spreadsheet"
	IconListOrdered   Icon = "list-ordered"
	IconList          Icon = "list"
)

var validIcons = map[Icon]bool{
	IconDefault:       true,
	IconReceipt:       true,
	IconBookCopy:      true,
	IconLandmark:      true,
	IconShoppingCart:  true,
	IconShieldCheck:   true,
	IconFileBadge:     true,
	IconClipboardList: true,
	IconShoppingBag:   true,
	IconFileDigit:     true,
	IconBookOpenCheck: true,
	IconFileCheck:     true,
	IconBadgeCheck:    true,
	IconCalendarClock: true,
	IconFileText:      true,
	IconFileSearch:    true,
	IconFilePlus:      true,
	IconSpreadsheet:   true,
	IconListOrdered:   true,
	IconList:          true,
}

// ResolveIcon maps a raw icon name to a supported Icon, falling back to
// IconDefault for anything unknown.
func ResolveIcon(name string) Icon {
	if validIcons[Icon(name)] {
		return Icon(name)
	}
	return IconDefault
}
