package middleware

import (
	"github.com/gin-gonic/gin"

	"homeledger/internal/i18n"
)

const (
	langKey       = "lang"
	translatorKey = "translator"
)

// Locale picks the response language from ?lang= or Accept-Language.
func Locale(t *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := t.Match(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Set(translatorKey, t)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

// LangFrom returns the language chosen by Locale, or "" when none ran.
func LangFrom(c *gin.Context) string {
	return c.GetString(langKey)
}

func translate(c *gin.Context, code, fallback string) string {
	v, ok := c.Get(translatorKey)
	if !ok {
		return fallback
	}
	t, ok := v.(*i18n.Translator)
	if !ok {
		return fallback
	}
	return t.Translate(LangFrom(c), code, fallback)
}
