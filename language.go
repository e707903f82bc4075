package legalease

// scriptRanges is the detection priority: the first script with at least one
// codepoint in the text wins, so a Devanagari character outranks Arabic even
// when both appear. The order is part of the contract.
var scriptRanges = []struct {
	code   string
	lo, hi rune
}{
	{"hi", 0x0900, 0x097F}, // Devanagari
	{"ar", 0x0600, 0x06FF}, // Arabic
	{"zh", 0x4E00, 0x9FFF}, // CJK unified ideographs
	{"ta", 0x0B80, 0x0BFF}, // Tamil
	{"te", 0x0C00, 0x0C7F}, // Telugu
	{"bn", 0x0980, 0x09FF}, // Bengali
}

// DetectLanguage classifies text into a language code by script inspection.
// Pure and total: ASCII-only or unrecognized text yields "en".
func DetectLanguage(text string) string {
	for _, sr := range scriptRanges {
		for _, r := range text {
			if r >= sr.lo && r <= sr.hi {
				return sr.code
			}
		}
	}
	return "en"
}

// languageCatalog maps codes to prompt-friendly display names, in the stable
// order exposed by AvailableLanguages.
var languageCatalog = []Language{
	{"en", "English"},
	{"hi", "Hindi/हिंदी"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"zh", "Chinese"},
	{"ar", "Arabic"},
	{"bn", "Bengali/বাংলা"},
	{"ta", "Tamil/தமிழ்"},
	{"te", "Telugu/తెలుగు"},
	{"mr", "Marathi/मराठी"},
	{"gu", "Gujarati/ગુજરાતી"},
	{"kn", "Kannada/ಕನ್ನಡ"},
	{"ml", "Malayalam/മലയാളം"},
	{"pa", "Punjabi/ਪੰਜਾਬੀ"},
	{"ur", "Urdu/اردو"},
}

// AvailableLanguages returns the supported language catalog in stable order.
func AvailableLanguages() []Language {
	out := make([]Language, len(languageCatalog))
	copy(out, languageCatalog)
	return out
}

// languageName resolves a code to its display name; unknown codes pass
// through verbatim so prompts stay readable.
func languageName(code string) string {
	for _, l := range languageCatalog {
		if l.Code == code {
			return l.DisplayName
		}
	}
	return code
}
