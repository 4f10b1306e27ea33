package locale

import "golang.org/x/text/language"

// builtin holds the conventional short-date patterns of common locales.
var builtin = map[string]string{
	"en-US": "M/d/yy",
	"en-GB": "dd/MM/yy",
	"en-CA": "dd/MM/yy",
	"en-AU": "d/MM/yy",
	"en-IN": "d/M/yy",
	"en-NZ": "d/MM/yy",
	"de-DE": "dd.MM.yy",
	"de-AT": "dd.MM.yy",
	"de-CH": "dd.MM.yy",
	"fr-FR": "dd/MM/yy",
	"fr-CA": "yy-MM-dd",
	"it-IT": "dd/MM/yy",
	"es-ES": "d/MM/yy",
	"es-MX": "d/MM/yy",
	"pt-BR": "dd/MM/yy",
	"pt-PT": "dd-MM-yyyy",
	"nl-NL": "d-M-yy",
	"sv-SE": "yyyy-MM-dd",
	"da-DK": "dd-MM-yy",
	"nb-NO": "dd.MM.yy",
	"fi-FI": "d.M.yyyy",
	"pl-PL": "dd.MM.yy",
	"cs-CZ": "d.M.yy",
	"hu-HU": "yyyy.MM.dd.",
	"ru-RU": "dd.MM.yy",
	"tr-TR": "dd.MM.yyyy",
	"el-GR": "d/M/yyyy",
	"ja-JP": "yy/MM/dd",
	"zh-CN": "yy-M-d",
	"zh-TW": "yyyy/M/d",
	"ko-KR": "yy. M. d",
}

func init() {
	for tag, p := range builtin {
		Register(language.MustParse(tag), p)
	}
}
