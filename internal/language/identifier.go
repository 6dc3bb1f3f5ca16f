// Package language labels extracted text with one of the supported
// languages.
package language

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/common"
)

const (
	// MinLength is the shortest input the detector is asked about.
	MinLength = 3

	DetectedConfidence     = 0.8
	UndeterminedConfidence = 0.3
)

// Result is the language label attached to a document.
type Result struct {
	Name       string
	Code       string
	Confidence float64
}

var unknown = Result{Name: constants.Unknown.Name, Code: constants.Unknown.Code}

// Detector returns an ISO 639-3 code, or constants.Undetermined.
type Detector interface {
	Detect(text string) (string, error)
}

// WhatlangDetector detects with whatlanggo's trigram model.
type WhatlangDetector struct{}

func (WhatlangDetector) Detect(text string) (string, error) {
	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return constants.Undetermined, nil
	}
	code := info.Lang.Iso6393()
	if code == "" {
		return constants.Undetermined, nil
	}
	return code, nil
}

// Identifier never fails: detector errors degrade to Unknown.
type Identifier struct {
	detector Detector
	logger   *slog.Logger
}

func NewIdentifier(detector Detector, logger *slog.Logger) *Identifier {
	if detector == nil {
		detector = WhatlangDetector{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Identifier{detector: detector, logger: logger}
}

// Identify labels text. Blank text is Unknown with confidence 0. A detector
// that commits to any language yields 0.8 even when that language is not
// one we label, in which case the label is Unknown.
func (i *Identifier) Identify(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return unknown
	}
	if utf8.RuneCountInString(trimmed) < MinLength {
		return Result{Name: unknown.Name, Code: unknown.Code, Confidence: UndeterminedConfidence}
	}

	code, err := i.detect(trimmed)
	if err != nil {
		i.logger.Warn("language.identify.failed", "error", common.NewAppError(common.CodeLanguageIdentification, "detector failed", err))
		return unknown
	}
	if code == constants.Undetermined || code == "" {
		return Result{Name: unknown.Name, Code: unknown.Code, Confidence: UndeterminedConfidence}
	}

	lang, _ := constants.LanguageFor(code)
	return Result{Name: lang.Name, Code: lang.Code, Confidence: DetectedConfidence}
}

func (i *Identifier) detect(text string) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("detector panic: %v", r)
		}
	}()
	return i.detector.Detect(text)
}
