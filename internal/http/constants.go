package httpx

// Page identifiers, used both as CurrentPage for navigation and as the name of
// the page template under pages/.
const (
	PageHome        = "home"
	PageColorMap    = "colormap"
	PageScenes      = "scenes"
	PageSceneDetail = "scene"
	PageRoomDetail  = "room"
	PageFiles       = "files"
	PageMessages    = "messages"
	PageError       = "error"
)

// Template paths used for loading templates in tests and production.
const (
	// Template directory paths.
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
)

// navItem is a top navigation entry.
type navItem struct {
	Page  string
	Label string
	Href  string
}

// navigation is rendered by the layout in this order.
var navigation = []navItem{ //nolint:gochecknoglobals // static read-only navigation
	{PageHome, "ROM", "/"},
	{PageFiles, "Files", "/files"},
	{PageScenes, "Scenes", "/scenes"},
	{PageMessages, "Messages", "/messages"},
	{PageColorMap, "Color map", "/colormap"},
}
