package typography

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Mode — вариант состояния типографики.
type Mode string

const (
	ModePreset Mode = "preset"
	ModeCustom Mode = "custom"
)

// DefaultPreset применяется для новых сайтов и неизвестных ключей.
const DefaultPreset = "modern"

// ErrUnknownPreset возвращается при выборе отсутствующего пресета.
var ErrUnknownPreset = errors.New("typography: неизвестный пресет")

// Values — полный набор параметров шрифтов.
type Values struct {
	FontLatin     string `json:"fontLatin"`
	FontArabic    string `json:"fontArabic"`
	BaseFontSize  int    `json:"baseFontSize"`
	HeadingWeight int    `json:"headingWeight"`
	BodyWeight    int    `json:"bodyWeight"`
}

// Preset — именованный неизменяемый набор Values.
type Preset struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Values Values `json:"values"`
}

// Presets в порядке отображения в админке.
var Presets = []Preset{
	{Key: "modern", Label: "Modern", Values: Values{"inter", "ibm", 16, 600, 400}},
	{Key: "creative", Label: "Creative", Values: Values{"poppins", "changa", 17, 700, 400}},
	{Key: "luxury", Label: "Luxury", Values: Values{"playfair", "almarai", 18, 600, 400}},
	{Key: "minimal", Label: "Minimal", Values: Values{"dmsans", "rubik", 16, 500, 400}},
	{Key: "editorial", Label: "Editorial", Values: Values{"libre", "noto-naskh", 18, 600, 400}},
	{Key: "tech", Label: "Tech", Values: Values{"space-grotesk", "ibm", 16, 600, 400}},
	{Key: "branding", Label: "Branding", Values: Values{"montserrat", "cairo", 16, 600, 400}},
	{Key: "elegant", Label: "Elegant", Values: Values{"cormorant", "noto-naskh", 18, 600, 400}},
	{Key: "bold", Label: "Bold", Values: Values{"manrope", "changa", 17, 700, 400}},
	{Key: "corporate", Label: "Corporate", Values: Values{"roboto", "noto-kufi", 16, 500, 400}},
}

// LookupPreset ищет пресет по ключу.
func LookupPreset(key string) (Preset, bool) {
	for _, p := range Presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

func defaultValues() Values {
	p, _ := LookupPreset(DefaultPreset)
	return p.Values
}

// State — явное двухвариантное состояние: пресет или свои значения.
// Custom хранит последние собственные значения и в режиме пресета,
// чтобы возврат к custom их восстановил.
type State struct {
	Mode   Mode
	Preset string
	Custom Values
}

// Default возвращает состояние нового сайта.
func Default() State {
	return State{Mode: ModePreset, Preset: DefaultPreset, Custom: defaultValues()}
}

// ApplyPreset — разовая перезапись всех значений пресетом.
func ApplyPreset(s State, key string) (State, error) {
	if _, ok := LookupPreset(key); !ok {
		return s, fmt.Errorf("%w: %s", ErrUnknownPreset, key)
	}
	return State{Mode: ModePreset, Preset: key, Custom: s.Custom}, nil
}

// SwitchToCustom возвращает последние собственные значения.
// Если их никогда не было, стартуем со значений текущего пресета.
func SwitchToCustom(s State) State {
	custom := s.Custom
	if custom == (Values{}) {
		custom = s.Effective()
	}
	return State{Mode: ModeCustom, Custom: normalize(custom)}
}

// EditCustom задаёт собственные значения и переводит состояние в custom.
func EditCustom(_ State, v Values) State {
	return State{Mode: ModeCustom, Custom: normalize(v)}
}

// Effective возвращает действующие значения для текущего варианта.
func (s State) Effective() Values {
	if s.Mode == ModePreset {
		if p, ok := LookupPreset(s.Preset); ok {
			return p.Values
		}
		return defaultValues()
	}
	return normalize(s.Custom)
}

func normalize(v Values) Values {
	def := defaultValues()
	if _, ok := findFont(LatinFonts, v.FontLatin); !ok {
		v.FontLatin = def.FontLatin
	}
	if _, ok := findFont(ArabicFonts, v.FontArabic); !ok {
		v.FontArabic = def.FontArabic
	}
	if v.BaseFontSize < 12 || v.BaseFontSize > 24 {
		v.BaseFontSize = def.BaseFontSize
	}
	if !validWeight(v.HeadingWeight) {
		v.HeadingWeight = def.HeadingWeight
	}
	if !validWeight(v.BodyWeight) {
		v.BodyWeight = def.BodyWeight
	}
	return v
}

func validWeight(w int) bool {
	return w >= 100 && w <= 900 && w%100 == 0
}

// CSSVariables — пользовательские свойства, которые клиент ставит на :root.
type CSSVariables map[string]string

// Resolve переводит состояние в CSS переменные.
func Resolve(s State) CSSVariables {
	v := s.Effective()
	return CSSVariables{
		"--font-latin":          fmt.Sprintf("'%s', sans-serif", LatinFamily(v.FontLatin)),
		"--font-arabic":         fmt.Sprintf("'%s', sans-serif", ArabicFamily(v.FontArabic)),
		"--font-size-base":      strconv.Itoa(v.BaseFontSize) + "px",
		"--font-weight-body":    strconv.Itoa(v.BodyWeight),
		"--font-weight-heading": strconv.Itoa(v.HeadingWeight),
	}
}

type stateJSON struct {
	Mode   Mode    `json:"mode"`
	Preset string  `json:"preset,omitempty"`
	Custom *Values `json:"custom,omitempty"`
}

// плоская форма, в которой настройки сохранялись раньше
type legacyJSON struct {
	Preset string `json:"preset"`
	Values
}

func (s State) MarshalJSON() ([]byte, error) {
	custom := s.Custom
	out := stateJSON{Mode: s.Mode, Custom: &custom}
	if s.Mode == ModePreset {
		out.Preset = s.Preset
	}
	return json.Marshal(out)
}

// UnmarshalJSON понимает новую форму {mode, preset, custom} и старую плоскую.
func (s *State) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("typography: %w", err)
	}

	if _, ok := fields["mode"]; ok {
		var in stateJSON
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("typography: %w", err)
		}
		st := State{Mode: in.Mode, Preset: in.Preset}
		if in.Custom != nil {
			st.Custom = *in.Custom
		}
		if st.Mode != ModePreset && st.Mode != ModeCustom {
			st.Mode = ModePreset
		}
		if st.Mode == ModePreset && st.Preset == "" {
			st.Preset = DefaultPreset
		}
		*s = st
		return nil
	}

	var legacy legacyJSON
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("typography: %w", err)
	}
	if _, ok := LookupPreset(legacy.Preset); ok {
		*s = State{Mode: ModePreset, Preset: legacy.Preset, Custom: legacy.Values}
		return nil
	}
	*s = State{Mode: ModeCustom, Custom: legacy.Values}
	return nil
}
