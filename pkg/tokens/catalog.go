// Package tokens exposes the design token catalog: brand colors, typography,
// spacing and layout scales, and component presets. Every accessor returns a
// value copy, so callers can never mutate the shared catalog.
package tokens

const (
	colorOrange      = "#FF6200"
	colorOrangeHover = "#CC4E00"
	colorOrangeDeep  = "#993A00"
	colorNavy        = "#000066"
	colorWhite       = "#FFFFFF"
	colorGray50      = "#F5F5F5"
	colorGray100     = "#E8E8E8"
	colorGray200     = "#D1D1D1"
	colorGray300     = "#B3B3B3"
	colorSuccess     = "#00A03E"
	colorWarning     = "#F59E00"
	colorError       = "#D0021B"
	colorInfo        = "#0066CC"

	shadowOrange = "0 4px 14px 0 rgba(255, 98, 0, 0.39)"
	shadowSM     = "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)"
	shadowMD     = "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)"
)

var catalog = Catalog{
	Colors: Colors{
		Brand: BrandColors{
			Primary:   PrimaryColors{Orange: colorOrange, OrangeAlt: "#FF6600"},
			Secondary: SecondaryColors{NavyBlue: colorNavy, DeepBlue: "#091C5A"},
			Neutral:   NeutralColors{White: colorWhite},
		},
		Semantic: SemanticColors{
			Text: TextColors{
				Primary:   "#1A1A1A",
				Secondary: "#4D4D4D",
				Tertiary:  "#767676",
				Inverse:   colorWhite,
				Link:      colorOrange,
				LinkHover: colorOrangeHover,
			},
			Background: BackgroundColors{
				Primary:   colorWhite,
				Secondary: colorGray50,
				Tertiary:  colorGray100,
				Brand:     colorOrange,
				BrandDark: colorNavy,
			},
			Border: BorderColors{
				Default: colorGray200,
				Hover:   colorGray300,
				Focus:   colorOrange,
				Error:   colorError,
			},
			State: StateColors{
				Success:      colorSuccess,
				SuccessLight: "#E6F7ED",
				Warning:      colorWarning,
				WarningLight: "#FFF4E6",
				Error:        colorError,
				ErrorLight:   "#FDEAED",
				Info:         colorInfo,
				InfoLight:    "#E6F2FF",
			},
			Interactive: InteractiveColors{
				Default:  colorOrange,
				Hover:    colorOrangeHover,
				Active:   colorOrangeDeep,
				Disabled: colorGray300,
			},
		},
		Gradients: Gradients{
			OrangeToDeepOrange: "linear-gradient(135deg, #FF6200 0%, #CC4E00 100%)",
			BlueToNavy:         "linear-gradient(135deg, #091C5A 0%, #000066 100%)",
			OrangeToBlue:       "linear-gradient(135deg, #FF6200 0%, #000066 100%)",
		},
	},
	Typography: Typography{
		FontFamily: FontFamily{
			Primary:   "'ING Me', -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen', 'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue', sans-serif",
			Monospace: "'Consolas', 'Monaco', 'Courier New', monospace",
		},
		FontWeight: FontWeight{Light: 300, Regular: 400, Medium: 500, Semibold: 600, Bold: 700},
		FontSize: FontSize{
			XS:   "0.75rem",
			SM:   "0.875rem",
			Base: "1rem",
			LG:   "1.125rem",
			XL:   "1.25rem",
			XL2:  "1.5rem",
			XL3:  "1.875rem",
			XL4:  "2.25rem",
			XL5:  "3rem",
			XL6:  "3.75rem",
			XL7:  "4.5rem",
		},
		LineHeight: LineHeight{Tight: 1.25, Snug: 1.375, Normal: 1.5, Relaxed: 1.625, Loose: 2},
		LetterSpacing: LetterSpacing{
			Tighter: "-0.05em",
			Tight:   "-0.025em",
			Normal:  "0",
			Wide:    "0.025em",
			Wider:   "0.05em",
			Widest:  "0.1em",
		},
		TextStyles: TextStyles{
			H1:        TextStyle{FontSize: "3.75rem", LineHeight: 1.25, FontWeight: 700, LetterSpacing: "-0.025em"},
			H2:        TextStyle{FontSize: "3rem", LineHeight: 1.25, FontWeight: 700, LetterSpacing: "-0.025em"},
			H3:        TextStyle{FontSize: "2.25rem", LineHeight: 1.375, FontWeight: 600, LetterSpacing: "-0.025em"},
			H4:        TextStyle{FontSize: "1.875rem", LineHeight: 1.375, FontWeight: 600, LetterSpacing: "0"},
			H5:        TextStyle{FontSize: "1.5rem", LineHeight: 1.5, FontWeight: 600, LetterSpacing: "0"},
			H6:        TextStyle{FontSize: "1.25rem", LineHeight: 1.5, FontWeight: 600, LetterSpacing: "0"},
			Body:      TextStyle{FontSize: "1rem", LineHeight: 1.5, FontWeight: 400, LetterSpacing: "0"},
			BodyLarge: TextStyle{FontSize: "1.125rem", LineHeight: 1.625, FontWeight: 400, LetterSpacing: "0"},
			BodySmall: TextStyle{FontSize: "0.875rem", LineHeight: 1.5, FontWeight: 400, LetterSpacing: "0"},
			Button:    TextStyle{FontSize: "1rem", LineHeight: 1.25, FontWeight: 600, LetterSpacing: "0"},
			Label:     TextStyle{FontSize: "0.875rem", LineHeight: 1.25, FontWeight: 500, LetterSpacing: "0"},
		},
	},
	Spacing: Spacing{
		Space0:  "0",
		Space1:  "0.25rem",
		Space2:  "0.5rem",
		Space3:  "0.75rem",
		Space4:  "1rem",
		Space5:  "1.25rem",
		Space6:  "1.5rem",
		Space8:  "2rem",
		Space10: "2.5rem",
		Space12: "3rem",
		Space16: "4rem",
		Space20: "5rem",
		Space24: "6rem",
		Space32: "8rem",
	},
	BorderRadius: BorderRadius{
		None: "0",
		SM:   "0.125rem",
		Base: "0.25rem",
		MD:   "0.375rem",
		LG:   "0.5rem",
		XL:   "0.75rem",
		XL2:  "1rem",
		Full: "9999px",
	},
	BorderWidth: BorderWidth{None: "0", Thin: "1px", Medium: "2px", Thick: "4px"},
	Shadows: Shadows{
		None:        "none",
		XS:          "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
		SM:          shadowSM,
		Base:        "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
		MD:          shadowMD,
		LG:          "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		XL:          "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
		Inner:       "inset 0 2px 4px 0 rgba(0, 0, 0, 0.06)",
		Orange:      shadowOrange,
		OrangeLarge: "0 10px 40px 0 rgba(255, 98, 0, 0.3)",
	},
	ZIndex: ZIndex{
		Base:          0,
		Dropdown:      1000,
		Sticky:        1020,
		Fixed:         1030,
		ModalBackdrop: 1040,
		Modal:         1050,
		Popover:       1060,
		Tooltip:       1070,
		Notification:  1080,
	},
	Breakpoints: Breakpoints{XS: "0px", SM: "640px", MD: "768px", LG: "1024px", XL: "1280px", XL2: "1536px"},
	Container: Container{
		XS:   "480px",
		SM:   "640px",
		MD:   "768px",
		LG:   "1024px",
		XL:   "1280px",
		XL2:  "1536px",
		Full: "100%",
	},
	Components: Components{
		Button: Buttons{
			Primary: ButtonVariant{
				Background:   States{Default: colorOrange, Hover: colorOrangeHover, Active: colorOrangeDeep, Disabled: "#FFD4B3"},
				Text:         States{Default: colorWhite, Disabled: colorWhite},
				Shadow:       HoverShadow{Default: shadowOrange, Hover: "0 6px 20px 0 rgba(255, 98, 0, 0.50)"},
				Padding:      Sizes{Small: "0.5rem 1rem", Medium: "0.75rem 1.5rem", Large: "1rem 2rem"},
				BorderRadius: "0.25rem",
				FontWeight:   600,
			},
			Secondary: ButtonVariant{
				Background:   States{Default: colorWhite, Hover: colorGray50, Active: colorGray100, Disabled: colorGray50},
				Text:         States{Default: colorOrange, Hover: colorOrangeHover, Active: colorOrangeDeep, Disabled: colorGray300},
				Border:       States{Default: colorOrange, Hover: colorOrangeHover, Active: colorOrangeDeep, Disabled: colorGray200},
				BorderWidth:  "2px",
				BorderRadius: "0.25rem",
				FontWeight:   600,
			},
		},
		Input: InputComponent{
			Background: InputStates{Default: colorWhite, Focus: colorWhite, Disabled: colorGray50, Error: "#FDEAED"},
			Border: InputStates{
				Default:  colorGray200,
				Hover:    colorGray300,
				Focus:    colorOrange,
				Disabled: colorGray100,
				Error:    colorError,
			},
			BorderRadius: "0.25rem",
			Padding:      Sizes{Small: "0.5rem 0.75rem", Medium: "0.75rem 1rem", Large: "1rem 1.25rem"},
			Height:       Sizes{Small: "2rem", Medium: "2.5rem", Large: "3rem"},
			Shadow:       FocusShadow{Focus: "0 0 0 3px rgba(255, 98, 0, 0.1)"},
		},
		Card: CardComponent{
			Background:   colorWhite,
			Border:       colorGray100,
			BorderRadius: "0.5rem",
			Padding:      Sizes{Small: "1rem", Medium: "1.5rem", Large: "2rem"},
			Shadow:       HoverShadow{Default: shadowSM, Hover: shadowMD},
		},
		Badge: BadgeComponent{
			Primary:      BadgeVariant{Background: colorOrange, Text: colorWhite},
			Success:      BadgeVariant{Background: colorSuccess, Text: colorWhite},
			Warning:      BadgeVariant{Background: colorWarning, Text: colorWhite},
			Error:        BadgeVariant{Background: colorError, Text: colorWhite},
			BorderRadius: "9999px",
			Padding:      Sizes{Small: "0.125rem 0.5rem", Medium: "0.25rem 0.75rem", Large: "0.375rem 1rem"},
			FontSize:     Sizes{Small: "0.75rem", Medium: "0.875rem", Large: "1rem"},
			FontWeight:   600,
		},
		Alert: AlertComponent{
			Success:      AlertVariant{Background: "#E6F7ED", Text: "#00582A", Border: colorSuccess},
			Warning:      AlertVariant{Background: "#FFF4E6", Text: "#7A4F00", Border: colorWarning},
			Error:        AlertVariant{Background: "#FDEAED", Text: "#68010E", Border: colorError},
			Info:         AlertVariant{Background: "#E6F2FF", Text: "#003366", Border: colorInfo},
			BorderRadius: "0.25rem",
			Padding:      "1rem",
			FontSize:     "0.875rem",
		},
	},
	Transitions: Transitions{
		Fast:   "0.1s ease-in-out",
		Base:   "0.2s ease-in-out",
		Slow:   "0.3s ease-in-out",
		Slower: "0.5s ease-in-out",
	},
}

// Default returns the composite catalog.
func Default() Catalog { return catalog }

// Category accessors. Each returns a copy of one section of Default().
func GetColors() Colors             { return catalog.Colors }
func GetTypography() Typography     { return catalog.Typography }
func GetSpacing() Spacing           { return catalog.Spacing }
func GetBorderRadius() BorderRadius { return catalog.BorderRadius }
func GetBorderWidth() BorderWidth   { return catalog.BorderWidth }
func GetShadows() Shadows           { return catalog.Shadows }
func GetZIndex() ZIndex             { return catalog.ZIndex }
func GetBreakpoints() Breakpoints   { return catalog.Breakpoints }
func GetContainer() Container       { return catalog.Container }
func GetComponents() Components     { return catalog.Components }
func GetTransitions() Transitions   { return catalog.Transitions }
