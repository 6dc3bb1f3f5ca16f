package constants

import "strings"

// Language is a language label the pipeline can attach to a result.
type Language struct {
	Name string
	Code string
}

// Unknown is used for undetermined or unsupported languages.
var Unknown = Language{Name: "Unknown", Code: "unknown"}

// supported maps ISO 639-3 detector output to the labels we store.
var supported = map[string]Language{
	"eng": {Name: "English", Code: "en"},
	"tam": {Name: "Tamil", Code: "ta"},
	"hin": {Name: "Hindi", Code: "hi"},
}

// Undetermined is the detector code for "no decision".
const Undetermined = "und"

// LanguageFor resolves an ISO 639-3 code against the allow-list.
func LanguageFor(iso6393 string) (Language, bool) {
	lang, ok := supported[strings.ToLower(strings.TrimSpace(iso6393))]
	if !ok {
		return Unknown, false
	}
	return lang, true
}
