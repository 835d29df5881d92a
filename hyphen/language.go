package hyphen

import (
	"strings"

	xlanguage "golang.org/x/text/language"
)

// Language is a canonical hyphenation language identifier.
type Language string

// The set of languages a caller may request, per the supported alias table
// below. Not every one of these has a bundled pattern set (see patterns.go);
// those without one fall back to EnglishUS at hyphenation time.
const (
	EnglishUS      Language = "en-US"
	EnglishGB      Language = "en-GB"
	German1996     Language = "de-1996"
	German1901     Language = "de-1901"
	GermanSwiss    Language = "de-CH"
	French         Language = "fr"
	Spanish        Language = "es"
	Italian        Language = "it"
	Portuguese     Language = "pt"
	Dutch          Language = "nl"
	Polish         Language = "pl"
	Russian        Language = "ru"
	Swedish        Language = "sv"
	Danish         Language = "da"
	Finnish        Language = "fi"
	Czech          Language = "cs"
	Hungarian      Language = "hu"
	Turkish        Language = "tr"
	GreekMonotonic Language = "el-monoton"
	Ukrainian      Language = "uk"
	Croatian       Language = "hr"
	Romanian       Language = "ro"
	Slovak         Language = "sk"
	Slovenian      Language = "sl"
	Bulgarian      Language = "bg"
	Catalan        Language = "ca"
	Estonian       Language = "et"
	Latvian        Language = "lv"
	Lithuanian     Language = "lt"
	Indonesian     Language = "id"
	Latin          Language = "la"
)

// aliases maps lower-cased BCP-47-style codes and human-readable names to
// their canonical Language. Kept as a flat table, mirroring the mapping a
// hyphenation caller would reach for, rather than deriving it purely from
// BCP-47 parsing: several entries ("german", "english-us", "greek") aren't
// valid BCP-47 tags at all.
var aliases = map[string]Language{
	"de": German1996, "de-de": German1996, "german": German1996,
	"de-1901": German1901, "german-1901": German1901,
	"de-ch": GermanSwiss, "german-swiss": GermanSwiss,

	"en": EnglishUS, "en-us": EnglishUS, "english": EnglishUS, "english-us": EnglishUS,
	"en-gb": EnglishGB, "english-gb": EnglishGB, "english-uk": EnglishGB,

	"fr": French, "fr-fr": French, "french": French,
	"es": Spanish, "es-es": Spanish, "spanish": Spanish,
	"it": Italian, "it-it": Italian, "italian": Italian,
	"pt": Portuguese, "pt-pt": Portuguese, "pt-br": Portuguese, "portuguese": Portuguese,
	"nl": Dutch, "nl-nl": Dutch, "dutch": Dutch,
	"pl": Polish, "pl-pl": Polish, "polish": Polish,
	"ru": Russian, "ru-ru": Russian, "russian": Russian,
	"sv": Swedish, "sv-se": Swedish, "swedish": Swedish,
	"da": Danish, "da-dk": Danish, "danish": Danish,
	"fi": Finnish, "fi-fi": Finnish, "finnish": Finnish,
	"cs": Czech, "cs-cz": Czech, "czech": Czech,
	"hu": Hungarian, "hu-hu": Hungarian, "hungarian": Hungarian,
	"tr": Turkish, "tr-tr": Turkish, "turkish": Turkish,
	"el": GreekMonotonic, "el-gr": GreekMonotonic, "greek": GreekMonotonic,
	"uk": Ukrainian, "uk-ua": Ukrainian, "ukrainian": Ukrainian,
	"hr": Croatian, "hr-hr": Croatian, "croatian": Croatian,
	"ro": Romanian, "ro-ro": Romanian, "romanian": Romanian,
	"sk": Slovak, "sk-sk": Slovak, "slovak": Slovak,
	"sl": Slovenian, "sl-si": Slovenian, "slovenian": Slovenian,
	"bg": Bulgarian, "bg-bg": Bulgarian, "bulgarian": Bulgarian,
	"ca": Catalan, "ca-es": Catalan, "catalan": Catalan,
	"et": Estonian, "et-ee": Estonian, "estonian": Estonian,
	"lv": Latvian, "lv-lv": Latvian, "latvian": Latvian,
	"lt": Lithuanian, "lt-lt": Lithuanian, "lithuanian": Lithuanian,
	"id": Indonesian, "id-id": Indonesian, "indonesian": Indonesian,
	"la": Latin, "latin": Latin,
}

// resolveLanguage maps a BCP-47-style code or human-readable name
// (case-insensitive) to a canonical Language. It checks the alias table
// first, then falls back to golang.org/x/text/language to canonicalize
// tags that merely differ by region or script subtag from an alias, e.g.
// "de-AT" resolving through its base language "de". An empty code resolves
// to EnglishUS: the zero value of Language behaves as English, matching
// New's unset-language default.
func resolveLanguage(code string) (Language, bool) {
	key := strings.ToLower(strings.TrimSpace(code))
	if key == "" {
		return EnglishUS, true
	}
	if lang, ok := aliases[key]; ok {
		return lang, true
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == xlanguage.No {
		return "", false
	}
	if lang, ok := aliases[strings.ToLower(base.String())]; ok {
		return lang, true
	}
	return "", false
}
