package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

var defaultDetectLanguages = []lingua.Language{lingua.English, lingua.Russian}

func initLanguageDetector() {
	languages := lo.FilterMap(viper.GetStringSlice("languages"), func(code string, _ int) (lingua.Language, bool) {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToLower(code))
		if iso == lingua.UnknownIsoCode639_1 {
			log.Warn().Str("code", code).Msg("Unknown language code in settings, skipped...")
			return lingua.Unknown, false
		}
		return lingua.GetLanguageFromIsoCode639_1(iso), true
	})
	languages = lo.Uniq(languages)
	if len(languages) < 2 {
		languages = defaultDetectLanguages
	}

	languageDetector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()
	log.Info().Int("languages", len(languages)).Msg("Language detector is ready.")
}

// DetectLanguage returns the lower case ISO 639-1 code of content, or "unknown".
func DetectLanguage(content string) string {
	languageDetectorOnce.Do(initLanguageDetector)

	if lang, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return "unknown"
}
