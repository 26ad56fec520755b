// Package facade defines the Browser Facade Port (C2): the narrow,
// replaceable interface the daemon uses to drive a browser. Every
// operation the daemon needs is named here; the one concrete adapter lives
// in internal/bidifacade. Nothing outside this package and its adapter
// knows about WebDriver BiDi, Chrome flags, or any other engine detail.
package facade

import (
	"context"
	"time"
)

// Box is a bounding rectangle in CSS pixels, always reported in ints per
// spec §3 Ref Entry.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LaunchOptions configures a fresh (non-persistent, non-CDP) browser
// launch.
type LaunchOptions struct {
	Headless       bool
	ExecutablePath string
	ExtraArgs      []string // split from a comma-separated launch flag
	ProxyServer    string
	ProxyBypass    string
}

// ContextOptions configures a new browsing context (profile analogue).
type ContextOptions struct {
	UserAgent        string
	ExtraHeaders     map[string]string
	IgnoreTLSErrors  bool
	StorageStatePath string // optional: load from this file
	Viewport         *ViewportSize
	DeviceScaleFactor float64
	IsMobile         bool
	HasTouch         bool
	Locale           string
	TimezoneID       string
}

// ViewportSize is a page viewport in CSS pixels.
type ViewportSize struct {
	Width  int
	Height int
}

// ConsoleMessage is one captured console API call.
type ConsoleMessage struct {
	Type string    `json:"type"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// PageError is one captured uncaught exception.
type PageError struct {
	Message string    `json:"message"`
	Stack   string    `json:"stack,omitempty"`
	Time    time.Time `json:"time"`
}

// RequestSummary is one tracked network response (spec §3 Tracked Requests
// Ring).
type RequestSummary struct {
	URL          string `json:"url"`
	Method       string `json:"method"`
	Status       int    `json:"status"`
	ResourceType string `json:"resourceType"`
}

// DialogInfo describes a native dialog the page raised.
type DialogInfo struct {
	Type    string `json:"type"` // alert, confirm, prompt, beforeunload
	Message string `json:"message"`
}

// RouteRequest is an intercepted network request handed to a route
// handler for a decision.
type RouteRequest struct {
	URL    string
	Method string
	Headers map[string]string
}

// RouteDecision is the outcome a route handler returns.
type RouteDecision struct {
	Action      string // "abort", "fulfill", "continue"
	Status      int
	Body        []byte
	ContentType string
	Headers     map[string]string
}

// Cookie mirrors the browser's cookie shape.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
}

// EventListeners is how the daemon subscribes to facade-level events. Each
// field is optional; nil callbacks are simply not invoked.
type EventListeners struct {
	OnConsole  func(ConsoleMessage)
	OnPageError func(PageError)
	OnResponse func(RequestSummary)
	OnDialog   func(DialogInfo)
	OnDownload func(url, suggestedPath string)
	OnPopup    func(pageID string)
	OnClose    func()
}

// Engine owns zero or more Contexts. It is the top-level handle returned by
// Launch/LaunchPersistent/ConnectCDP.
type Engine interface {
	NewContext(ctx context.Context, opts ContextOptions) (Context, error)
	Close(ctx context.Context) error
}

// Context owns zero or more Pages (a browser-profile analogue: cookies,
// storage, headers, viewport).
type Context interface {
	NewPage(ctx context.Context) (Page, error)
	Pages() []Page
	PageAt(i int) (Page, bool)
	SetListeners(EventListeners)

	Cookies(ctx context.Context) ([]Cookie, error)
	AddCookies(ctx context.Context, cookies []Cookie) error
	ClearCookies(ctx context.Context) error

	StorageState(ctx context.Context) (json []byte, err error)
	SaveStorageState(ctx context.Context, path string) error

	GrantPermissions(ctx context.Context, perms []string) error
	ClearPermissions(ctx context.Context) error
	SetGeolocation(ctx context.Context, lat, lon float64, accuracy float64) error
	SetHTTPCredentials(ctx context.Context, user, pass string) error
	SetOffline(ctx context.Context, offline bool) error
	SetExtraHeaders(ctx context.Context, headers map[string]string) error

	AddInitScript(ctx context.Context, script string) error

	Close(ctx context.Context) error
}

// Locator designates an element by selector/role/text/etc. and is resolved
// lazily on each call, per spec Glossary.
type Locator interface {
	Click(ctx context.Context, opts ClickOptions) error
	DblClick(ctx context.Context, opts ClickOptions) error
	Fill(ctx context.Context, value string) error
	Type(ctx context.Context, text string, delayMS int) error
	Press(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Check(ctx context.Context) error
	Uncheck(ctx context.Context) error
	Hover(ctx context.Context) error
	Focus(ctx context.Context) error
	SelectOption(ctx context.Context, values []string) error
	DragTo(ctx context.Context, target Locator) error
	SetInputFiles(ctx context.Context, paths []string) error
	ScrollIntoView(ctx context.Context) error
	Highlight(ctx context.Context) error

	Text(ctx context.Context) (string, error)
	InnerHTML(ctx context.Context) (string, error)
	InputValue(ctx context.Context) (string, error)
	GetAttribute(ctx context.Context, name string) (string, bool, error)
	IsVisible(ctx context.Context) (bool, error)
	IsEnabled(ctx context.Context) (bool, error)
	IsChecked(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int, error)
	BoundingBox(ctx context.Context) (Box, error)
	Screenshot(ctx context.Context) ([]byte, error)
	Evaluate(ctx context.Context, script string) (interface{}, error)
}

// ClickOptions configures a click/dblclick.
type ClickOptions struct {
	Button    string // left, right, middle
	ClickCount int
	Modifiers []string
	Position  *struct{ X, Y float64 }
	Force     bool
}

// FindOptions parameterizes semantic find (spec §4.4 "Semantic find").
type FindOptions struct {
	Kind        string // role, text, label, placeholder, alt, title, testid, first, last, nth
	Value       string
	Name        string
	Exact       bool
	Nth         int
	WithinFrame string
}

// Page is one navigable viewport inside a Context.
type Page interface {
	ID() string

	Navigate(ctx context.Context, url string) error
	Reload(ctx context.Context) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	URL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
	Content(ctx context.Context) (string, error)

	Viewport(ctx context.Context) (ViewportSize, error)
	SetViewport(ctx context.Context, size ViewportSize, dpr float64, mobile, touch bool) error
	SetDefaultTimeout(d time.Duration)
	EmulateMedia(ctx context.Context, media, colorScheme string) error
	AddScriptTag(ctx context.Context, source string) error
	AddStyleTag(ctx context.Context, source string) error
	EvaluateJS(ctx context.Context, script string, args ...interface{}) (interface{}, error)

	Screenshot(ctx context.Context, fullPage bool, clip *Box) ([]byte, error)
	PDF(ctx context.Context) ([]byte, error)

	Resolve(ctx context.Context, selector string) (Locator, error)
	Find(ctx context.Context, opts FindOptions) (Locator, error)
	FindAll(ctx context.Context, opts FindOptions) ([]Locator, error)

	Keyboard() Keyboard
	Mouse() Mouse
	Touchscreen() Touchscreen

	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	WaitForURL(ctx context.Context, pattern string, timeout time.Duration) error
	WaitForFunction(ctx context.Context, script string, timeout time.Duration) error
	WaitForLoadState(ctx context.Context, state string, timeout time.Duration) error
	WaitForTimeout(ctx context.Context, d time.Duration)

	Route(ctx context.Context, pattern string, handler func(RouteRequest) RouteDecision) error
	Unroute(ctx context.Context, pattern string) error

	SetDialogHandler(ctx context.Context, fn func(DialogInfo) (accept bool, promptText string)) error

	Frames(ctx context.Context) ([]FrameInfo, error)
	Frame(ctx context.Context, nameOrURLSubstring string) (Page, error)

	TraceStart(ctx context.Context) error
	TraceStop(ctx context.Context, path string) error

	Close(ctx context.Context) error
}

// FrameInfo describes one child frame.
type FrameInfo struct {
	Ordinal int
	Name    string
	URL     string
}

// Keyboard is page-level keyboard input.
type Keyboard interface {
	Down(ctx context.Context, key string) error
	Up(ctx context.Context, key string) error
	Press(ctx context.Context, key string) error
	Type(ctx context.Context, text string, delayMS int) error
}

// Mouse is page-level mouse input.
type Mouse interface {
	Move(ctx context.Context, x, y float64) error
	Down(ctx context.Context, button string) error
	Up(ctx context.Context, button string) error
	Wheel(ctx context.Context, dx, dy float64) error
}

// Touchscreen is page-level touch input.
type Touchscreen interface {
	Tap(ctx context.Context, x, y float64) error
}

// Port is the full Browser Facade Port surface (spec §4.2). A daemon holds
// exactly one Port implementation for its lifetime.
type Port interface {
	Launch(ctx context.Context, opts LaunchOptions) (Engine, error)
	LaunchPersistent(ctx context.Context, profileDir string, opts LaunchOptions) (Engine, Context, error)
	ConnectCDP(ctx context.Context, url string) (Engine, error)
}
