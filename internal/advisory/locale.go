package advisory

// Lang selects the rendering language for advisories.
type Lang string

const (
	LangBangla  Lang = "bn"
	LangEnglish Lang = "en"
)

// Localized display names for the crop and storage-type codes the dashboard
// uses. These are configuration data, not logic; config may extend or
// override them. Unknown codes fall back to the raw code untranslated.
func DefaultCropNames() map[string]string {
	return map[string]string{
		"paddy":  "ধান",
		"rice":   "চাল",
		"wheat":  "গম",
		"maize":  "ভুট্টা",
		"potato": "আলু",
		"onion":  "পেঁয়াজ",
		"jute":   "পাট",
		"lentil": "মসুর ডাল",
	}
}

func DefaultStorageNames() map[string]string {
	return map[string]string{
		"warehouse":    "গুদাম",
		"jute_sack":    "পাটের বস্তা",
		"silo":         "সাইলো",
		"clay_bin":     "মাটির গোলা",
		"open_air":     "খোলা জায়গা",
		"cold_storage": "ঠান্ডা গুদাম",
	}
}

// lookup resolves a code against a name table, falling back to the raw code.
func lookup(table map[string]string, code string) string {
	if name, ok := table[code]; ok {
		return name
	}
	return code
}
