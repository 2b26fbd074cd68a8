package content

// ui holds the short interface strings the templates need
var ui = map[string]map[string]string{
	"title":        {"en": "Supreme Court Decision Direction", "es": "Dirección de las decisiones de la Corte Suprema"},
	"navigation":   {"en": "Navigation", "es": "Navegación"},
	"predict":      {"en": "Predict", "es": "Predecir"},
	"load_error":   {"en": "The prediction model is not available", "es": "El modelo de predicción no está disponible"},
	"source_error": {"en": "Could not load the source file", "es": "No se pudo cargar el archivo fuente"},
	"fetched_at":   {"en": "Fetched", "es": "Obtenido"},
	"language":     {"en": "Language", "es": "Idioma"},
	"not_integer":  {"en": "%s must be a whole number", "es": "%s debe ser un número entero"},
}

// Strings returns every interface string for lang, falling back to English per key
func Strings(lang string) map[string]string {
	out := make(map[string]string, len(ui))
	for k, m := range ui {
		out[k] = pick(m, lang)
	}
	return out
}

// Topic is one expandable panel on the moral issues page
type Topic struct {
	Block string
	Title map[string]string
}

var topics = []Topic{
	{Block: "moral_bias", Title: map[string]string{"en": "Bias in historical data", "es": "Sesgo en los datos históricos"}},
	{Block: "moral_transparency", Title: map[string]string{"en": "Transparency", "es": "Transparencia"}},
	{Block: "moral_use", Title: map[string]string{"en": "Use in real cases", "es": "Uso en casos reales"}},
}
