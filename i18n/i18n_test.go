package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLang(t *testing.T) {
	assert.Equal(t, "pt", detectLang([]string{"pt-BR", "en-US"}))
	assert.Equal(t, "ru", detectLang([]string{"ru"}))
	assert.Equal(t, "en", detectLang([]string{"de-DE", "es-ES"}))
	assert.Equal(t, "en", detectLang(nil))
}

func TestTranslate(t *testing.T) {
	prev := GetLang()
	t.Cleanup(func() { SetLang(prev) })

	SetLang("es")
	assert.Equal(t, "Pausar", T("Pause"))
	assert.Equal(t, "Not translated", T("Not translated"))

	SetLang("en")
	assert.Equal(t, "Timer Finished!", T("Timer Finished!"))
}
