package language

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDetector struct {
	code  string
	err   error
	panic bool
	calls int
}

func (f *fakeDetector) Detect(string) (string, error) {
	f.calls++
	if f.panic {
		panic("trigram table corrupt")
	}
	return f.code, f.err
}

func TestIdentifyBlank(t *testing.T) {
	d := &fakeDetector{code: "eng"}
	id := NewIdentifier(d, nil)

	for _, in := range []string{"", "   ", "\n\t"} {
		got := id.Identify(in)
		assert.Equal(t, Result{Name: "Unknown", Code: "unknown", Confidence: 0}, got)
	}
	assert.Zero(t, d.calls)
}

func TestIdentifyMapping(t *testing.T) {
	tests := []struct {
		code string
		want Result
	}{
		{"eng", Result{"English", "en", 0.8}},
		{"tam", Result{"Tamil", "ta", 0.8}},
		{"hin", Result{"Hindi", "hi", 0.8}},
		{"fra", Result{"Unknown", "unknown", 0.8}},
		{"und", Result{"Unknown", "unknown", 0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := NewIdentifier(&fakeDetector{code: tt.code}, nil).Identify("some longer text")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentifyShortText(t *testing.T) {
	d := &fakeDetector{code: "eng"}
	got := NewIdentifier(d, nil).Identify(" hi ")
	assert.Equal(t, Result{"Unknown", "unknown", 0.3}, got)
	assert.Zero(t, d.calls)
}

func TestIdentifyRecoversDetectorFailures(t *testing.T) {
	got := NewIdentifier(&fakeDetector{err: errors.New("boom")}, nil).Identify("hello there")
	assert.Equal(t, Result{"Unknown", "unknown", 0}, got)

	got = NewIdentifier(&fakeDetector{panic: true}, nil).Identify("hello there")
	assert.Equal(t, Result{"Unknown", "unknown", 0}, got)
}

func TestWhatlangDetector(t *testing.T) {
	id := NewIdentifier(nil, nil)

	got := id.Identify("The quick brown fox jumps over the lazy dog while the farmer watches from the porch.")
	assert.Equal(t, "en", got.Code)

	got = id.Identify("யாதும் ஊரே யாவரும் கேளிர் தீதும் நன்றும் பிறர்தர வாரா")
	assert.Equal(t, "ta", got.Code)

	got = id.Identify("भारत एक विशाल देश है और यहाँ अनेक भाषाएँ बोली जाती हैं")
	assert.Equal(t, "hi", got.Code)
}
