package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Save": {
		"pt": "Salvar",
		"es": "Guardar",
		"ru": "Сохранить",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"Timer Finished!": {
		"pt": "Tempo esgotado!",
		"es": "¡Tiempo terminado!",
		"ru": "Время вышло!",
	},
	"Your countdown has ended.": {
		"pt": "Sua contagem regressiva terminou.",
		"es": "Tu cuenta regresiva ha terminado.",
		"ru": "Обратный отсчёт завершён.",
	},
	"Invalid Time": {
		"pt": "Tempo inválido",
		"es": "Tiempo no válido",
		"ru": "Неверное время",
	},
	"Please enter a valid time greater than 0.": {
		"pt": "Insira um tempo válido maior que 0.",
		"es": "Introduce un tiempo válido mayor que 0.",
		"ru": "Введите время больше 0.",
	},
	"Tap the time to edit it": {
		"pt": "Toque no tempo para editar",
		"es": "Toca el tiempo para editarlo",
		"ru": "Нажмите на время, чтобы изменить",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("COUNTDOWN_LANG")); forcedLang != "" {
		log.Printf("COUNTDOWN_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	log.Println("COUNTDOWN_LANG is not set, detecting from system locale.")
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	lang = detectLang(userLocales)
	log.Printf("Language set to: %s", lang)
}

func detectLang(userLocales []string) string {
	if len(userLocales) == 0 {
		return "en"
	}
	userLocale := userLocales[0]
	for _, supported := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocale, supported) {
			return supported
		}
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language.
func SetLang(l string) {
	lang = l
}
