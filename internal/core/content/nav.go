package content

// State is one navigation destination; exactly one is active per page
type State string

// Navigation states
const (
	Instructions      State = "instructions"
	RunPrediction     State = "predict"
	TechnicalOverview State = "technical"
	MoralIssues       State = "moral"
	SourceApp         State = "source-app"
	SourceModel       State = "source-model"
	About             State = "about"
)

// NavItem is a rendered navigation entry
type NavItem struct {
	State  State
	Path   string
	Label  string
	Active bool
}

type navEntry struct {
	state State
	path  string
	label map[string]string
}

var navigation = []navEntry{
	{Instructions, "/instructions", map[string]string{"en": "Show Instructions", "es": "Mostrar instrucciones"}},
	{RunPrediction, "/predict", map[string]string{"en": "Run Prediction", "es": "Ejecutar predicción"}},
	{TechnicalOverview, "/technical", map[string]string{"en": "Technical Overview", "es": "Descripción técnica"}},
	{MoralIssues, "/moral", map[string]string{"en": "Moral Issues", "es": "Cuestiones morales"}},
	{SourceApp, "/source/app", map[string]string{"en": "App Source Code", "es": "Código de la aplicación"}},
	{SourceModel, "/source/model", map[string]string{"en": "Model Source Code", "es": "Código del modelo"}},
	{About, "/about", map[string]string{"en": "About", "es": "Acerca de"}},
}

// DefaultState is shown when no destination is chosen
const DefaultState = Instructions

// Nav lists every destination in display order with active marked
func Nav(active State, lang string) []NavItem {
	out := make([]NavItem, len(navigation))
	for i, e := range navigation {
		out[i] = NavItem{State: e.state, Path: e.path, Label: pick(e.label, lang), Active: e.state == active}
	}
	return out
}

// PathOf returns the route for s
func PathOf(s State) string {
	for _, e := range navigation {
		if e.state == s {
			return e.path
		}
	}
	return ""
}

// LabelOf returns the navigation label for s in lang
func LabelOf(s State, lang string) string {
	for _, e := range navigation {
		if e.state == s {
			return pick(e.label, lang)
		}
	}
	return ""
}

func pick(m map[string]string, lang string) string {
	if v, ok := m[lang]; ok {
		return v
	}
	return m["en"]
}
