package tokens

// Catalog is the complete design token tree.
type Catalog struct {
	Colors       Colors       `json:"colors" yaml:"colors"`
	Typography   Typography   `json:"typography" yaml:"typography"`
	Spacing      Spacing      `json:"spacing" yaml:"spacing"`
	BorderRadius BorderRadius `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth  BorderWidth  `json:"borderWidth" yaml:"borderWidth"`
	Shadows      Shadows      `json:"shadows" yaml:"shadows"`
	ZIndex       ZIndex       `json:"zIndex" yaml:"zIndex"`
	Breakpoints  Breakpoints  `json:"breakpoints" yaml:"breakpoints"`
	Container    Container    `json:"container" yaml:"container"`
	Components   Components   `json:"components" yaml:"components"`
	Transitions  Transitions  `json:"transitions" yaml:"transitions"`
}

// Colors.

type Colors struct {
	Brand     BrandColors    `json:"brand" yaml:"brand"`
	Semantic  SemanticColors `json:"semantic" yaml:"semantic"`
	Gradients Gradients      `json:"gradients" yaml:"gradients"`
}

type BrandColors struct {
	Primary   PrimaryColors   `json:"primary" yaml:"primary"`
	Secondary SecondaryColors `json:"secondary" yaml:"secondary"`
	Neutral   NeutralColors   `json:"neutral" yaml:"neutral"`
}

type PrimaryColors struct {
	Orange    string `json:"orange" yaml:"orange"`
	OrangeAlt string `json:"orangeAlt" yaml:"orangeAlt"`
}

type SecondaryColors struct {
	NavyBlue string `json:"navyBlue" yaml:"navyBlue"`
	DeepBlue string `json:"deepBlue" yaml:"deepBlue"`
}

type NeutralColors struct {
	White string `json:"white" yaml:"white"`
}

type SemanticColors struct {
	Text        TextColors        `json:"text" yaml:"text"`
	Background  BackgroundColors  `json:"background" yaml:"background"`
	Border      BorderColors      `json:"border" yaml:"border"`
	State       StateColors       `json:"state" yaml:"state"`
	Interactive InteractiveColors `json:"interactive" yaml:"interactive"`
}

type TextColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Tertiary  string `json:"tertiary" yaml:"tertiary"`
	Inverse   string `json:"inverse" yaml:"inverse"`
	Link      string `json:"link" yaml:"link"`
	LinkHover string `json:"linkHover" yaml:"linkHover"`
}

type BackgroundColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Tertiary  string `json:"tertiary" yaml:"tertiary"`
	Brand     string `json:"brand" yaml:"brand"`
	BrandDark string `json:"brandDark" yaml:"brandDark"`
}

type BorderColors struct {
	Default string `json:"default" yaml:"default"`
	Hover   string `json:"hover" yaml:"hover"`
	Focus   string `json:"focus" yaml:"focus"`
	Error   string `json:"error" yaml:"error"`
}

type StateColors struct {
	Success      string `json:"success" yaml:"success"`
	SuccessLight string `json:"successLight" yaml:"successLight"`
	Warning      string `json:"warning" yaml:"warning"`
	WarningLight string `json:"warningLight" yaml:"warningLight"`
	Error        string `json:"error" yaml:"error"`
	ErrorLight   string `json:"errorLight" yaml:"errorLight"`
	Info         string `json:"info" yaml:"info"`
	InfoLight    string `json:"infoLight" yaml:"infoLight"`
}

// InteractiveColors share the four-state shape used by button presets.
type InteractiveColors = States

type Gradients struct {
	OrangeToDeepOrange string `json:"orangeToDeepOrange" yaml:"orangeToDeepOrange"`
	BlueToNavy         string `json:"blueToNavy" yaml:"blueToNavy"`
	OrangeToBlue       string `json:"orangeToBlue" yaml:"orangeToBlue"`
}

// Typography.

type Typography struct {
	FontFamily    FontFamily    `json:"fontFamily" yaml:"fontFamily"`
	FontWeight    FontWeight    `json:"fontWeight" yaml:"fontWeight"`
	FontSize      FontSize      `json:"fontSize" yaml:"fontSize"`
	LineHeight    LineHeight    `json:"lineHeight" yaml:"lineHeight"`
	LetterSpacing LetterSpacing `json:"letterSpacing" yaml:"letterSpacing"`
	TextStyles    TextStyles    `json:"textStyles" yaml:"textStyles"`
}

type FontFamily struct {
	Primary   string `json:"primary" yaml:"primary"`
	Monospace string `json:"monospace" yaml:"monospace"`
}

// FontWeight values are unitless CSS weights.
type FontWeight struct {
	Light    int `json:"light" yaml:"light"`
	Regular  int `json:"regular" yaml:"regular"`
	Medium   int `json:"medium" yaml:"medium"`
	Semibold int `json:"semibold" yaml:"semibold"`
	Bold     int `json:"bold" yaml:"bold"`
}

type FontSize struct {
	XS   string `json:"xs" yaml:"xs"`
	SM   string `json:"sm" yaml:"sm"`
	Base string `json:"base" yaml:"base"`
	LG   string `json:"lg" yaml:"lg"`
	XL   string `json:"xl" yaml:"xl"`
	XL2  string `json:"2xl" yaml:"2xl"`
	XL3  string `json:"3xl" yaml:"3xl"`
	XL4  string `json:"4xl" yaml:"4xl"`
	XL5  string `json:"5xl" yaml:"5xl"`
	XL6  string `json:"6xl" yaml:"6xl"`
	XL7  string `json:"7xl" yaml:"7xl"`
}

// LineHeight values are unitless multipliers.
type LineHeight struct {
	Tight   float64 `json:"tight" yaml:"tight"`
	Snug    float64 `json:"snug" yaml:"snug"`
	Normal  float64 `json:"normal" yaml:"normal"`
	Relaxed float64 `json:"relaxed" yaml:"relaxed"`
	Loose   float64 `json:"loose" yaml:"loose"`
}

type LetterSpacing struct {
	Tighter string `json:"tighter" yaml:"tighter"`
	Tight   string `json:"tight" yaml:"tight"`
	Normal  string `json:"normal" yaml:"normal"`
	Wide    string `json:"wide" yaml:"wide"`
	Wider   string `json:"wider" yaml:"wider"`
	Widest  string `json:"widest" yaml:"widest"`
}

type TextStyle struct {
	FontSize      string  `json:"fontSize" yaml:"fontSize"`
	LineHeight    float64 `json:"lineHeight" yaml:"lineHeight"`
	FontWeight    int     `json:"fontWeight" yaml:"fontWeight"`
	LetterSpacing string  `json:"letterSpacing" yaml:"letterSpacing"`
}

type TextStyles struct {
	H1        TextStyle `json:"h1" yaml:"h1"`
	H2        TextStyle `json:"h2" yaml:"h2"`
	H3        TextStyle `json:"h3" yaml:"h3"`
	H4        TextStyle `json:"h4" yaml:"h4"`
	H5        TextStyle `json:"h5" yaml:"h5"`
	H6        TextStyle `json:"h6" yaml:"h6"`
	Body      TextStyle `json:"body" yaml:"body"`
	BodyLarge TextStyle `json:"bodyLarge" yaml:"bodyLarge"`
	BodySmall TextStyle `json:"bodySmall" yaml:"bodySmall"`
	Button    TextStyle `json:"button" yaml:"button"`
	Label     TextStyle `json:"label" yaml:"label"`
}

// Scales.

// Spacing is keyed by multiples of a 4px step.
type Spacing struct {
	Space0  string `json:"0" yaml:"0"`
	Space1  string `json:"1" yaml:"1"`
	Space2  string `json:"2" yaml:"2"`
	Space3  string `json:"3" yaml:"3"`
	Space4  string `json:"4" yaml:"4"`
	Space5  string `json:"5" yaml:"5"`
	Space6  string `json:"6" yaml:"6"`
	Space8  string `json:"8" yaml:"8"`
	Space10 string `json:"10" yaml:"10"`
	Space12 string `json:"12" yaml:"12"`
	Space16 string `json:"16" yaml:"16"`
	Space20 string `json:"20" yaml:"20"`
	Space24 string `json:"24" yaml:"24"`
	Space32 string `json:"32" yaml:"32"`
}

type BorderRadius struct {
	None string `json:"none" yaml:"none"`
	SM   string `json:"sm" yaml:"sm"`
	Base string `json:"base" yaml:"base"`
	MD   string `json:"md" yaml:"md"`
	LG   string `json:"lg" yaml:"lg"`
	XL   string `json:"xl" yaml:"xl"`
	XL2  string `json:"2xl" yaml:"2xl"`
	Full string `json:"full" yaml:"full"`
}

type BorderWidth struct {
	None   string `json:"none" yaml:"none"`
	Thin   string `json:"thin" yaml:"thin"`
	Medium string `json:"medium" yaml:"medium"`
	Thick  string `json:"thick" yaml:"thick"`
}

type Shadows struct {
	None        string `json:"none" yaml:"none"`
	XS          string `json:"xs" yaml:"xs"`
	SM          string `json:"sm" yaml:"sm"`
	Base        string `json:"base" yaml:"base"`
	MD          string `json:"md" yaml:"md"`
	LG          string `json:"lg" yaml:"lg"`
	XL          string `json:"xl" yaml:"xl"`
	Inner       string `json:"inner" yaml:"inner"`
	Orange      string `json:"orange" yaml:"orange"`
	OrangeLarge string `json:"orangeLarge" yaml:"orangeLarge"`
}

// ZIndex orders stacking layers from page content up to notifications.
type ZIndex struct {
	Base          int `json:"base" yaml:"base"`
	Dropdown      int `json:"dropdown" yaml:"dropdown"`
	Sticky        int `json:"sticky" yaml:"sticky"`
	Fixed         int `json:"fixed" yaml:"fixed"`
	ModalBackdrop int `json:"modalBackdrop" yaml:"modalBackdrop"`
	Modal         int `json:"modal" yaml:"modal"`
	Popover       int `json:"popover" yaml:"popover"`
	Tooltip       int `json:"tooltip" yaml:"tooltip"`
	Notification  int `json:"notification" yaml:"notification"`
}

type Breakpoints struct {
	XS  string `json:"xs" yaml:"xs"`
	SM  string `json:"sm" yaml:"sm"`
	MD  string `json:"md" yaml:"md"`
	LG  string `json:"lg" yaml:"lg"`
	XL  string `json:"xl" yaml:"xl"`
	XL2 string `json:"2xl" yaml:"2xl"`
}

type Container struct {
	XS   string `json:"xs" yaml:"xs"`
	SM   string `json:"sm" yaml:"sm"`
	MD   string `json:"md" yaml:"md"`
	LG   string `json:"lg" yaml:"lg"`
	XL   string `json:"xl" yaml:"xl"`
	XL2  string `json:"2xl" yaml:"2xl"`
	Full string `json:"full" yaml:"full"`
}

type Transitions struct {
	Fast   string `json:"fast" yaml:"fast"`
	Base   string `json:"base" yaml:"base"`
	Slow   string `json:"slow" yaml:"slow"`
	Slower string `json:"slower" yaml:"slower"`
}

// Components.

type Components struct {
	Button Buttons        `json:"button" yaml:"button"`
	Input  InputComponent `json:"input" yaml:"input"`
	Card   CardComponent  `json:"card" yaml:"card"`
	Badge  BadgeComponent `json:"badge" yaml:"badge"`
	Alert  AlertComponent `json:"alert" yaml:"alert"`
}

type Buttons struct {
	Primary   ButtonVariant `json:"primary" yaml:"primary"`
	Secondary ButtonVariant `json:"secondary" yaml:"secondary"`
}

// States holds per-interaction-state values. Hover and Active are absent for
// presets that only style the default and disabled states.
type States struct {
	Default  string `json:"default" yaml:"default"`
	Hover    string `json:"hover,omitempty" yaml:"hover,omitempty"`
	Active   string `json:"active,omitempty" yaml:"active,omitempty"`
	Disabled string `json:"disabled" yaml:"disabled"`
}

type Sizes struct {
	Small  string `json:"small" yaml:"small"`
	Medium string `json:"medium" yaml:"medium"`
	Large  string `json:"large" yaml:"large"`
}

type HoverShadow struct {
	Default string `json:"default" yaml:"default"`
	Hover   string `json:"hover" yaml:"hover"`
}

// ButtonVariant is a button preset. Border, BorderWidth and Shadow are only
// set by the variants that use them.
type ButtonVariant struct {
	Background   States      `json:"background" yaml:"background"`
	Text         States      `json:"text" yaml:"text"`
	Border       States      `json:"border,omitzero" yaml:"border,omitempty"`
	Shadow       HoverShadow `json:"shadow,omitzero" yaml:"shadow,omitempty"`
	Padding      Sizes       `json:"padding,omitzero" yaml:"padding,omitempty"`
	BorderRadius string      `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth  string      `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	FontWeight   int         `json:"fontWeight" yaml:"fontWeight"`
}

type InputStates struct {
	Default  string `json:"default" yaml:"default"`
	Hover    string `json:"hover,omitempty" yaml:"hover,omitempty"`
	Focus    string `json:"focus" yaml:"focus"`
	Disabled string `json:"disabled" yaml:"disabled"`
	Error    string `json:"error" yaml:"error"`
}

type FocusShadow struct {
	Focus string `json:"focus" yaml:"focus"`
}

type InputComponent struct {
	Background   InputStates `json:"background" yaml:"background"`
	Border       InputStates `json:"border" yaml:"border"`
	BorderRadius string      `json:"borderRadius" yaml:"borderRadius"`
	Padding      Sizes       `json:"padding" yaml:"padding"`
	Height       Sizes       `json:"height" yaml:"height"`
	Shadow       FocusShadow `json:"shadow" yaml:"shadow"`
}

type CardComponent struct {
	Background   string      `json:"background" yaml:"background"`
	Border       string      `json:"border" yaml:"border"`
	BorderRadius string      `json:"borderRadius" yaml:"borderRadius"`
	Padding      Sizes       `json:"padding" yaml:"padding"`
	Shadow       HoverShadow `json:"shadow" yaml:"shadow"`
}

type BadgeVariant struct {
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
}

type BadgeComponent struct {
	Primary      BadgeVariant `json:"primary" yaml:"primary"`
	Success      BadgeVariant `json:"success" yaml:"success"`
	Warning      BadgeVariant `json:"warning" yaml:"warning"`
	Error        BadgeVariant `json:"error" yaml:"error"`
	BorderRadius string       `json:"borderRadius" yaml:"borderRadius"`
	Padding      Sizes        `json:"padding" yaml:"padding"`
	FontSize     Sizes        `json:"fontSize" yaml:"fontSize"`
	FontWeight   int          `json:"fontWeight" yaml:"fontWeight"`
}

type AlertVariant struct {
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
	Border     string `json:"border" yaml:"border"`
}

type AlertComponent struct {
	Success      AlertVariant `json:"success" yaml:"success"`
	Warning      AlertVariant `json:"warning" yaml:"warning"`
	Error        AlertVariant `json:"error" yaml:"error"`
	Info         AlertVariant `json:"info" yaml:"info"`
	BorderRadius string       `json:"borderRadius" yaml:"borderRadius"`
	Padding      string       `json:"padding" yaml:"padding"`
	FontSize     string       `json:"fontSize" yaml:"fontSize"`
}
